// Package quality implements the average-Phred-error-rate kernel used
// to filter clusters by read quality.
package quality

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned when a Phred byte falls outside
// [offset, 126] or has the high bit set (is not ASCII).
var ErrInvalidInput = errors.New("quality: invalid input")

// defaultOffset is the Sanger Phred+33 encoding, the default offset.
const defaultOffset = 33

// errorRateTable33 precomputes 10^(-(b-33)/10) for every byte, the
// table the default-offset fast path indexes into directly.
var errorRateTable33 [256]float64

func init() {
	for b := 0; b < 256; b++ {
		errorRateTable33[b] = errorRate(byte(b), defaultOffset)
	}
}

func errorRate(b, offset byte) float64 {
	return math.Pow(10, -(float64(b)-float64(offset))/10.0)
}

// AverageErrorRate returns the arithmetic mean of 10^(-(b-offset)/10)
// over every byte b of phred. It fails with ErrInvalidInput if any
// byte lies outside [offset, 126] or has its high bit set (is not
// ASCII).
func AverageErrorRate(phred []byte, offset byte) (float64, error) {
	if len(phred) == 0 {
		return 0, fmt.Errorf("quality: empty phred string: %w", ErrInvalidInput)
	}
	var sum float64
	for _, b := range phred {
		if b&0x80 != 0 || b < offset || b > 126 {
			return 0, fmt.Errorf("quality: byte %d out of range [%d,126]: %w", b, offset, ErrInvalidInput)
		}
		if offset == defaultOffset {
			sum += errorRateTable33[b]
			continue
		}
		sum += errorRate(b, offset)
	}
	return sum / float64(len(phred)), nil
}
