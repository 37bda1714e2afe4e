package trie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRawStats_EmptyTrie(t *testing.T) {
	tr := newACGT(t)
	stats := tr.RawStats()
	require.Len(t, stats, 1)
	require.Equal(t, make([]int, 5), stats[0])
}

func TestRawStats_DepthAndShape(t *testing.T) {
	tr := newACGT(t)
	tr.Insert([]byte("AC"))
	tr.Insert([]byte("AG"))
	tr.Insert([]byte("A"))

	stats := tr.RawStats()
	// Depth 0: root has a 'A' child only -> occupancy 1.
	require.Equal(t, 1, stats[0][1])
	// Depth 1 (the branch reached via 'A'): holds a terminal ("A")
	// plus two children ('C' and 'G') -> occupancy 2.
	require.Equal(t, 1, stats[1][0])
	require.Equal(t, 1, stats[1][2])
}

func TestMemorySize_GrowsWithContent(t *testing.T) {
	tr := newACGT(t)
	empty := tr.MemorySize()
	tr.Insert([]byte("ACGTACGTACGT"))
	require.Greater(t, tr.MemorySize(), empty)
}
