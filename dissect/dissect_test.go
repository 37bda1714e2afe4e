package dissect

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	trie "github.com/mhaller/fastqdedup"
)

func entries(pairs ...struct {
	c uint32
	s string
}) []trie.Entry {
	out := make([]trie.Entry, len(pairs))
	for i, p := range pairs {
		out[i] = trie.Entry{Count: p.c, String: []byte(p.s)}
	}
	return out
}

func strs(entries []trie.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = string(e.String)
	}
	sort.Strings(out)
	return out
}

func pair(c uint32, s string) struct {
	c uint32
	s string
} {
	return struct {
		c uint32
		s string
	}{c, s}
}

func TestDirectional_S5(t *testing.T) {
	cluster := entries(
		pair(100, "GGGGGG"),
		pair(1, "GGGTGG"),
		pair(1, "GGGTTG"),
		pair(1, "GGCTTG"),
		pair(1, "GACTTG"),
		pair(2, "AACTTG"),
	)
	original := make([]trie.Entry, len(cluster))
	copy(original, cluster)

	got := Directional(cluster, 1)
	require.Equal(t, []string{"AACTTG", "GGGGGG"}, strs(got))
	require.Equal(t, original, cluster, "policy must not mutate the caller's slice")
}

func TestDissectionComparison_S6(t *testing.T) {
	cluster := entries(
		pair(3, "AAAGT"),
		pair(10, "AAAAT"),
		pair(50, "AACAA"),
		pair(60, "AAAAA"),
		pair(10, "CAAAA"),
		pair(30, "CTAAA"),
	)

	require.Equal(t, []string{"AAAAA"}, strs(HighestCount(cluster)))
	require.Equal(t, []string{"AAAAA", "AAAGT", "CTAAA"}, strs(Adjacency(cluster, 1)))
	require.Equal(t, []string{"AAAAA", "AACAA", "CTAAA"}, strs(Directional(cluster, 1)))
}
