package dedup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewKeyFunc_NoSpecsConcatenatesWholeSequences(t *testing.T) {
	kf := NewKeyFunc(nil)
	key := kf([][]byte{[]byte("ACGT"), []byte("TTTT")})
	require.Equal(t, []byte("ACGTTTTT"), key)
}

func TestNewKeyFunc_RestrictsPerFile(t *testing.T) {
	specs, err := ParseLengthSpec("4,2")
	require.NoError(t, err)
	kf := NewKeyFunc(specs)

	key := kf([][]byte{[]byte("ACGTACGT"), []byte("TTTTGGGG")})
	require.Equal(t, []byte("ACGTTT"), key)
}
