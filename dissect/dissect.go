// Package dissect implements the three representative-selection
// policies used to collapse a cluster of near-identical, count-bearing
// strings down to the representative(s) retained in the deduplicated
// output.
package dissect

import (
	"bytes"

	"golang.org/x/exp/slices"

	trie "github.com/mhaller/fastqdedup"
	"github.com/mhaller/fastqdedup/distance"
)

// priority orders entries by descending count, ties broken by
// descending byte-lexicographic order of the string (largest string
// wins a tie) — the "greatest count, ties: lexicographic max" rule
// shared by all three policies.
func priority(a, b trie.Entry) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return bytes.Compare(a.String, b.String) > 0
}

// sortedCopy returns cluster sorted by priority, highest first,
// without mutating the caller's slice.
func sortedCopy(cluster []trie.Entry) []trie.Entry {
	out := make([]trie.Entry, len(cluster))
	copy(out, cluster)
	slices.SortFunc(out, func(a, b trie.Entry) int {
		switch {
		case priority(a, b):
			return -1
		case priority(b, a):
			return 1
		}
		return 0
	})
	return out
}

// HighestCount returns the single entry with the greatest count, ties
// broken by the largest string under byte-lexicographic order. O(n).
func HighestCount(cluster []trie.Entry) []trie.Entry {
	if len(cluster) == 0 {
		return nil
	}
	best := cluster[0]
	for _, e := range cluster[1:] {
		if priority(e, best) {
			best = e
		}
	}
	return []trie.Entry{best}
}

// Adjacency repeatedly emits the remaining entry with the greatest
// count (ties: lexicographic max) and removes every remaining entry
// within Hamming distance d of it, until the pool is empty.
func Adjacency(cluster []trie.Entry, d int) []trie.Entry {
	pool := sortedCopy(cluster)
	removed := make([]bool, len(pool))
	var reps []trie.Entry
	for i, emitted := range pool {
		if removed[i] {
			continue
		}
		reps = append(reps, emitted)
		removed[i] = true
		for j := i + 1; j < len(pool); j++ {
			if !removed[j] && distance.HammingWithin(pool[j].String, emitted.String, d) {
				removed[j] = true
			}
		}
	}
	return reps
}

// template is one member of a directional chain: its count may license
// absorbing further, lower-count reads.
type template struct {
	count  uint32
	string []byte
}

// Directional models the PCR-error-generation process: an origin seeds
// a template chain, and an item (c, s) is absorbed into the chain when
// some template (C_t, t) already in the chain satisfies
// hamming(s, t) <= d and 2*c - 1 <= C_t. Absorbed items join the chain
// themselves, licensing further, deeper absorptions. A pass that
// absorbs nothing closes the chain; the origin is emitted and the
// process repeats over the remaining pool.
func Directional(cluster []trie.Entry, d int) []trie.Entry {
	pool := sortedCopy(cluster)
	removed := make([]bool, len(pool))
	var reps []trie.Entry

	for i, origin := range pool {
		if removed[i] {
			continue
		}
		reps = append(reps, origin)
		removed[i] = true

		chain := []template{{count: origin.Count, string: origin.String}}
		for {
			absorbedAny := false
			for j, e := range pool {
				if removed[j] {
					continue
				}
				if absorbs(chain, e, d) {
					chain = append(chain, template{count: e.Count, string: e.String})
					removed[j] = true
					absorbedAny = true
				}
			}
			if !absorbedAny {
				break
			}
		}
	}
	return reps
}

func absorbs(chain []template, e trie.Entry, d int) bool {
	for _, t := range chain {
		if distance.HammingWithin(e.String, t.string, d) && 2*uint64(e.Count)-1 <= uint64(t.count) {
			return true
		}
	}
	return false
}
