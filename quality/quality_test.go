package quality

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAverageErrorRate_S7(t *testing.T) {
	got, err := AverageErrorRate([]byte{10, 30}, 0)
	require.NoError(t, err)
	require.InDelta(t, 0.0505, got, 1e-12)

	got2, err := AverageErrorRate([]byte{43, 63}, defaultOffset)
	require.NoError(t, err)
	require.InDelta(t, 0.0505, got2, 1e-12)
}

func TestAverageErrorRate_RejectsOutOfRange(t *testing.T) {
	_, err := AverageErrorRate([]byte{127}, defaultOffset)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = AverageErrorRate([]byte{10}, 33) // below offset
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = AverageErrorRate([]byte{0x80}, 0) // high bit set
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestAverageErrorRate_EmptyInput(t *testing.T) {
	_, err := AverageErrorRate(nil, defaultOffset)
	require.ErrorIs(t, err, ErrInvalidInput)
}
