package distance

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHammingWithin(t *testing.T) {
	cases := []struct {
		a, b string
		k    int
		want bool
	}{
		{"GATTACA", "GATTACA", 0, true},
		{"GATTACA", "GATTACC", 0, false},
		{"GATTACA", "GATTACC", 1, true},
		{"AAAA", "AAGC", 1, false},
		{"AAAA", "AAGC", 2, true},
		{"AAA", "AAAA", 5, false}, // unequal length never matches
	}
	for _, c := range cases {
		got := HammingWithin([]byte(c.a), []byte(c.b), c.k)
		require.Equalf(t, c.want, got, "HammingWithin(%q,%q,%d)", c.a, c.b, c.k)
	}
}

func TestHammingWithin_NegativeK(t *testing.T) {
	require.False(t, HammingWithin([]byte("A"), []byte("A"), -1))
}
