package dedup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	trie "github.com/mhaller/fastqdedup"
)

func TestStatsReport_ContainsLayerAndMemoryLines(t *testing.T) {
	tr, err := trie.New([]byte("ACGT"))
	require.NoError(t, err)
	tr.Insert([]byte("ACGT"))
	tr.Insert([]byte("ACGA"))

	report := StatsReport(tr)
	require.Contains(t, report, "layer")
	require.Contains(t, report, "Node memory usage")
	require.Contains(t, report, "Suffix memory usage")
	require.Contains(t, report, "Total memory usage")
	require.True(t, strings.Contains(report, "total"))
}
