package dedup

import (
	"fmt"
	"strings"

	trie "github.com/mhaller/fastqdedup"
)

// StatsReport renders a trie_stats-equivalent, human-readable
// observability report: a per-depth layer table of terminal and
// branch-by-child-count populations, plus a memory-usage breakdown
// (node memory vs. suffix memory vs. total), matching the original
// tool's reporting shape.
func StatsReport(t *trie.Trie) string {
	var b strings.Builder
	rawStats := t.RawStats()
	layerSize := len(t.Alphabet()) + 1
	allTotals := make([]int, layerSize+1)

	b.WriteString("layer     terminal  ")
	for i := 1; i < layerSize; i++ {
		fmt.Fprintf(&b, "%10d", i)
	}
	b.WriteString("     total\n")

	for depth, layer := range rawStats {
		total := 0
		for j := 0; j < layerSize; j++ {
			total += layer[j]
			allTotals[j] += layer[j]
		}
		allTotals[layerSize] += total

		fmt.Fprintf(&b, "%10d", depth)
		for j := 0; j < layerSize; j++ {
			fmt.Fprintf(&b, "%10d", layer[j])
		}
		fmt.Fprintf(&b, "%10d\n", total)
	}

	b.WriteString("     total")
	for j := 0; j <= layerSize; j++ {
		fmt.Fprintf(&b, "%10d", allTotals[j])
	}
	b.WriteString("\n")

	nodeMemoryUsage := 0
	for i := 0; i < layerSize; i++ {
		nodeMemoryUsage += (8 + 8*i) * allTotals[i]
	}
	totalMemoryUsage := int(t.MemorySize())
	suffixMemoryUsage := totalMemoryUsage - nodeMemoryUsage
	const gib = 1 << 30
	fmt.Fprintf(&b, "Node memory usage: %.2f GiB\n", float64(nodeMemoryUsage)/gib)
	fmt.Fprintf(&b, "Suffix memory usage: %.2f GiB\n", float64(suffixMemoryUsage)/gib)
	fmt.Fprintf(&b, "Total memory usage: %.2f GiB\n", float64(totalMemoryUsage)/gib)
	return b.String()
}
