package dedup

// KeyFunc collapses one tuple of per-file sequences (e.g. R1, R2, and
// an optional UMI read) into a single deduplication key.
type KeyFunc func(seqs [][]byte) []byte

// NewKeyFunc builds a KeyFunc from per-file length specifications. A
// nil or empty specs checks each file's full sequence; otherwise
// specs[i] (or the last spec, if fewer specs than files are given)
// selects the slice of seqs[i] that participates in the key.
func NewKeyFunc(specs []LengthSpec) KeyFunc {
	if len(specs) == 0 {
		return func(seqs [][]byte) []byte {
			var out []byte
			for _, s := range seqs {
				out = append(out, s...)
			}
			return out
		}
	}
	return func(seqs [][]byte) []byte {
		var out []byte
		for i, s := range seqs {
			spec := specs[len(specs)-1]
			if i < len(specs) {
				spec = specs[i]
			}
			out = append(out, spec.Apply(s)...)
		}
		return out
	}
}
