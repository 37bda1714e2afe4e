package dedup

import (
	"fmt"
	"strconv"
	"strings"
)

// LengthSpec is a Python-slice-shaped (start, stop, step) triple, each
// component optional, applied to a read's sequence to decide which
// bases participate in its deduplication key. It ports
// length_string_to_slices from the original tool's slice-expression
// syntax ("5", "5:8", "::16", "None:None:16").
type LengthSpec struct {
	Start, Stop, Step *int
}

// ParseLengthSpec parses a comma-separated list of slice expressions,
// one per input file, into LengthSpecs. Each expression is up to three
// colon-separated components; an empty component or the literal
// "None" means unset. It fails with ErrInvalidInput on a malformed
// component, too many colon-separated parts, or a zero step.
func ParseLengthSpec(s string) ([]LengthSpec, error) {
	parts := strings.Split(s, ",")
	specs := make([]LengthSpec, len(parts))
	for i, part := range parts {
		spec, err := parseOneSpec(part)
		if err != nil {
			return nil, err
		}
		specs[i] = spec
	}
	return specs, nil
}

// parseOneSpec mirrors Python's slice(*values) constructor dispatch: a
// single bare value (no colons) sets only stop ("5" means "first 5
// bases", not "from index 5 onward"); two values set start and stop;
// three set start, stop, and step.
func parseOneSpec(part string) (LengthSpec, error) {
	fields := strings.Split(part, ":")
	if len(fields) > 3 {
		return LengthSpec{}, fmt.Errorf("dedup: %q has more than 3 slice components: %w", part, ErrInvalidInput)
	}
	raw := make([]*int, len(fields))
	for i, f := range fields {
		if f == "" || f == "None" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return LengthSpec{}, fmt.Errorf("dedup: %q is not a valid slice component: %w", f, ErrInvalidInput)
		}
		raw[i] = &n
	}

	var spec LengthSpec
	switch len(raw) {
	case 1:
		spec.Stop = raw[0]
	case 2:
		spec.Start, spec.Stop = raw[0], raw[1]
	case 3:
		spec.Start, spec.Stop, spec.Step = raw[0], raw[1], raw[2]
	}
	if spec.Step != nil && *spec.Step == 0 {
		return LengthSpec{}, fmt.Errorf("dedup: slice step cannot be zero: %w", ErrInvalidInput)
	}
	return spec, nil
}

// Apply slices seq the way Python's seq[start:stop:step] would,
// following CPython's slice.indices() index-normalization rules:
// negative endpoints count from the end, and an absent endpoint
// defaults to the start or end of seq depending on the sign of step.
func (l LengthSpec) Apply(seq []byte) []byte {
	length := len(seq)
	step := 1
	if l.Step != nil {
		step = *l.Step
	}

	var lower, upper int
	if step < 0 {
		lower, upper = -1, length-1
	} else {
		lower, upper = 0, length
	}

	start := lower
	if step < 0 {
		start = upper
	}
	if l.Start != nil {
		start = normalizeIndex(*l.Start, length, lower, upper)
	}

	stop := upper
	if step < 0 {
		stop = lower
	}
	if l.Stop != nil {
		stop = normalizeIndex(*l.Stop, length, lower, upper)
	}

	var out []byte
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, seq[i])
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, seq[i])
		}
	}
	return out
}

func normalizeIndex(idx, length, lower, upper int) int {
	if idx < 0 {
		idx += length
		if idx < lower {
			idx = lower
		}
		return idx
	}
	if idx > upper {
		idx = upper
	}
	return idx
}
