package trie

import "github.com/mhaller/fastqdedup/distance"

// Entry is one (count, string) pair returned from PopCluster: the number
// of ingestions that produced string, and the string itself.
type Entry struct {
	Count  uint32
	String []byte
}

// PopCluster finds a connected component in the graph of currently
// stored, distinct sequences (edges connect pairs within maxDistance
// under the chosen metric), atomically removes its members from the
// trie, and returns them. It fails with ErrEmpty when the trie holds no
// sequences, and with ErrInvalidInput when maxDistance is negative. The
// order of results within a cluster is unspecified.
//
// Cluster extraction exploits trie locality instead of a naive
// all-pairs comparison: two sequences within a small distance of each
// other share a long common prefix along one walk, with at most
// maxDistance off-path excursions, so a bounded trie walk from each
// cluster member finds its neighbours in time proportional to the
// trie's depth rather than to the number of stored sequences.
func (t *Trie) PopCluster(maxDistance int, useEdit bool) ([]Entry, error) {
	if maxDistance < 0 {
		return nil, ErrInvalidInput
	}
	if t.numSeqs == 0 {
		return nil, ErrEmpty
	}

	seed := t.extractFirst(t.root, nil)
	cluster := []Entry{seed}
	queue := [][]byte{seed.String}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, e := range t.extractNeighbors(s, maxDistance, useEdit) {
			cluster = append(cluster, e)
			queue = append(queue, e.String)
		}
	}
	return cluster, nil
}

// extractFirst descends into the first occupied slot repeatedly
// (terminal before children, first non-nil child by index otherwise)
// until it reaches a leaf, detaches that leaf, and returns the
// reconstructed string and its count. It is used only to seed a cluster
// and assumes the trie is non-empty.
func (t *Trie) extractFirst(n *node, prefix []byte) Entry {
	if n.terminal != nil {
		leaf := n.terminal
		n.terminal = nil
		n.count -= leaf.count
		t.numSeqs -= uint64(leaf.count)
		return Entry{Count: leaf.count, String: cloneBytes(prefix)}
	}
	symbols := t.alphabet.bytes()
	for idx, child := range n.children {
		if child == nil {
			continue
		}
		sym := symbols[idx]
		if child.isBranch {
			e := t.extractFirst(child, append(append([]byte{}, prefix...), sym))
			n.count -= e.Count
			if child.occupiedSlots() == 0 {
				n.children[idx] = nil
			}
			return e
		}
		full := append(append([]byte{}, prefix...), sym)
		full = append(full, child.suffix...)
		n.children[idx] = nil
		n.count -= child.count
		t.numSeqs -= uint64(child.count)
		return Entry{Count: child.count, String: full}
	}
	panic("trie: extractFirst found nothing in a non-empty trie")
}

// extractNeighbors removes every currently-stored sequence within
// maxDistance of seq and returns them.
func (t *Trie) extractNeighbors(seq []byte, maxDistance int, useEdit bool) []Entry {
	var results []Entry
	var removed uint64
	if useEdit {
		removed = t.extractEditDFS(t.root, seq, 0, maxDistance, nil, &results)
	} else {
		removed = t.extractHammingDFS(t.root, seq, 0, maxDistance, nil, &results)
	}
	t.numSeqs -= removed
	return results
}

func (t *Trie) extractHammingDFS(n *node, seq []byte, i int, budget int, prefix []byte, results *[]Entry) uint64 {
	if i == len(seq) {
		if n.terminal == nil {
			return 0
		}
		leaf := n.terminal
		n.terminal = nil
		n.count -= leaf.count
		*results = append(*results, Entry{Count: leaf.count, String: cloneBytes(prefix)})
		return uint64(leaf.count)
	}

	knownIdx, known := t.alphabet.lookupIndex(seq[i])
	symbols := t.alphabet.bytes()
	var removed uint64
	for idx := 0; idx < len(n.children); idx++ {
		if n.children[idx] == nil {
			continue
		}
		cost := 1
		if known && idx == knownIdx {
			cost = 0
		}
		if cost > budget {
			continue
		}
		childPrefix := append(append([]byte{}, prefix...), symbols[idx])
		removed += t.extractHammingStep(n, idx, seq, i+1, budget-cost, childPrefix, results)
	}
	return removed
}

// extractHammingStep removes every match reachable through n.children[idx]
// and reports the total count removed, decrementing n's own count and
// pruning the slot if the child subtree became fully empty.
func (t *Trie) extractHammingStep(n *node, idx int, seq []byte, i int, budget int, prefix []byte, results *[]Entry) uint64 {
	child := n.children[idx]
	if child == nil {
		return 0
	}
	if child.isBranch {
		sub := t.extractHammingDFS(child, seq, i, budget, prefix, results)
		if sub > 0 {
			// child's own count was already decremented where the
			// removal actually happened (its terminal check or a
			// deeper Step call); only n's count is ours to adjust.
			n.count -= uint32(sub)
			if child.occupiedSlots() == 0 {
				n.children[idx] = nil
			}
		}
		return sub
	}
	remaining := seq[i:]
	if len(remaining) != len(child.suffix) {
		return 0
	}
	if !distance.HammingWithin(remaining, child.suffix, budget) {
		return 0
	}
	n.children[idx] = nil
	n.count -= child.count
	*results = append(*results, Entry{Count: child.count, String: append(append([]byte{}, prefix...), child.suffix...)})
	return uint64(child.count)
}

func (t *Trie) extractEditDFS(n *node, seq []byte, i int, budget int, prefix []byte, results *[]Entry) uint64 {
	if budget < 0 {
		return 0
	}
	var removed uint64
	if i == len(seq) && n.terminal != nil {
		leaf := n.terminal
		n.terminal = nil
		n.count -= leaf.count
		removed += uint64(leaf.count)
		*results = append(*results, Entry{Count: leaf.count, String: cloneBytes(prefix)})
	}
	// Deletion: drop seq[i] without moving in the trie.
	if i < len(seq) && budget > 0 {
		removed += t.extractEditDFS(n, seq, i+1, budget-1, prefix, results)
	}

	var knownIdx int
	var known bool
	if i < len(seq) {
		knownIdx, known = t.alphabet.lookupIndex(seq[i])
	}
	symbols := t.alphabet.bytes()
	for idx := 0; idx < len(n.children); idx++ {
		if n.children[idx] == nil {
			continue
		}
		childPrefix := append(append([]byte{}, prefix...), symbols[idx])
		// Match / substitution: consume one symbol on both sides.
		if i < len(seq) {
			cost := 1
			if known && idx == knownIdx {
				cost = 0
			}
			if cost <= budget {
				removed += t.extractEditStep(n, idx, seq, i+1, budget-cost, childPrefix, results)
			}
		}
		// Insertion: consume a trie-side symbol without advancing in seq.
		if budget > 0 {
			removed += t.extractEditStep(n, idx, seq, i, budget-1, childPrefix, results)
		}
	}
	return removed
}

// extractEditStep mirrors extractHammingStep for the edit-distance walk.
// It re-reads n.children[idx] on entry so that a slot already consumed
// earlier in the same search (e.g. via the match branch before the
// insertion branch is tried) is simply skipped.
func (t *Trie) extractEditStep(n *node, idx int, seq []byte, i int, budget int, prefix []byte, results *[]Entry) uint64 {
	if budget < 0 {
		return 0
	}
	child := n.children[idx]
	if child == nil {
		return 0
	}
	if child.isBranch {
		sub := t.extractEditDFS(child, seq, i, budget, prefix, results)
		if sub > 0 {
			// child's own count was already decremented where the
			// removal actually happened (its terminal check or a
			// deeper Step call); only n's count is ours to adjust.
			n.count -= uint32(sub)
			if child.occupiedSlots() == 0 {
				n.children[idx] = nil
			}
		}
		return sub
	}
	if !distance.EditWithin(seq[i:], child.suffix, budget) {
		return 0
	}
	n.children[idx] = nil
	n.count -= child.count
	*results = append(*results, Entry{Count: child.count, String: append(append([]byte{}, prefix...), child.suffix...)})
	return uint64(child.count)
}
