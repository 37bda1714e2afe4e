package dedup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLengthSpec(t *testing.T) {
	specs, err := ParseLengthSpec("5,5:8,::16")
	require.NoError(t, err)
	require.Len(t, specs, 3)

	require.Nil(t, specs[0].Start)
	require.NotNil(t, specs[0].Stop)
	require.Equal(t, 5, *specs[0].Stop)

	require.Equal(t, 5, *specs[1].Start)
	require.Equal(t, 8, *specs[1].Stop)

	require.Nil(t, specs[2].Start)
	require.Nil(t, specs[2].Stop)
	require.Equal(t, 16, *specs[2].Step)
}

func TestParseLengthSpec_RejectsZeroStep(t *testing.T) {
	_, err := ParseLengthSpec("::0")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseLengthSpec_RejectsTooManyComponents(t *testing.T) {
	_, err := ParseLengthSpec("1:2:3:4")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestLengthSpec_Apply(t *testing.T) {
	seq := []byte("ACGTACGTACGT") // 12 bases

	five, _ := ParseLengthSpec("5")
	require.Equal(t, seq[:5], five[0].Apply(seq))

	sliced, _ := ParseLengthSpec("5:8")
	require.Equal(t, seq[5:8], sliced[0].Apply(seq))

	strideSixteen, _ := ParseLengthSpec("::16")
	require.Equal(t, seq[:1], strideSixteen[0].Apply(seq))

	everyOther, _ := ParseLengthSpec("::2")
	require.Equal(t, []byte("AGAGAG"), everyOther[0].Apply(seq))
}
