// Package trie implements the compressed, adaptive, count-bearing radix
// tree at the core of the deduplication engine: it ingests short strings
// over a small, possibly-growing alphabet, answers bounded-distance
// membership queries, and destructively extracts connected clusters of
// near-identical strings.
package trie

import "github.com/mhaller/fastqdedup/distance"

const maxCount = ^uint32(0)

// satAdd adds delta to count, saturating at the maximum uint32 value
// instead of overflowing.
func satAdd(count, delta uint32) uint32 {
	sum := uint64(count) + uint64(delta)
	if sum > uint64(maxCount) {
		return maxCount
	}
	return uint32(sum)
}

// Trie is a count-bearing, suffix-compressed radix tree over a small,
// lazily-growing alphabet. It is built once by repeated Insert calls and
// then drained by repeated PopCluster calls; it is not safe for
// concurrent use.
type Trie struct {
	alphabet *alphabet
	root     *node
	numSeqs  uint64
}

// New returns an empty Trie. When seedAlphabet is non-empty its bytes become
// the trie's initial symbol set, in order; it fails with ErrInvalidInput
// if seedAlphabet contains a duplicate byte. A nil or empty seedAlphabet grows
// lazily from the first inserted sequence.
func New(seedAlphabet []byte) (*Trie, error) {
	a, err := newAlphabet(seedAlphabet)
	if err != nil {
		return nil, err
	}
	return &Trie{alphabet: a, root: newBranch(0)}, nil
}

// NumberOfSequences returns the number of sequences currently held by the
// trie: inserted minus those removed by PopCluster.
func (t *Trie) NumberOfSequences() uint64 {
	return t.numSeqs
}

// Alphabet returns the trie's symbols in index order. The caller must not
// mutate the returned slice.
func (t *Trie) Alphabet() []byte {
	return t.alphabet.bytes()
}

// Insert adds one occurrence of seq to the trie, growing
// NumberOfSequences by one. It panics if seq contains more distinct
// symbols than the alphabet can hold (256); this can only happen with an
// alphabet that was never bounded by the caller and is exercised far
// beyond realistic UMI/read inputs.
func (t *Trie) Insert(seq []byte) {
	n := t.root
	n.count = satAdd(n.count, 1)
	i := 0
	for {
		if i == len(seq) {
			if n.terminal == nil {
				n.terminal = newLeaf(nil, 1)
			} else {
				n.terminal.count = satAdd(n.terminal.count, 1)
			}
			t.numSeqs++
			return
		}

		k, err := t.alphabet.indexOf(seq[i])
		if err != nil {
			panic("trie: alphabet exceeded 256 symbols")
		}

		child := n.childAt(k)
		switch {
		case child == nil:
			n.setChildAt(k, newLeaf(cloneBytes(seq[i+1:]), 1))
			t.numSeqs++
			return

		case !child.isBranch:
			if bytesEqual(child.suffix, seq[i+1:]) {
				child.count = satAdd(child.count, 1)
				t.numSeqs++
				return
			}
			branch := newBranch(satAdd(child.count, 1))
			n.setChildAt(k, branch)
			if len(child.suffix) == 0 {
				branch.terminal = newLeaf(nil, child.count)
			} else {
				sk, err := t.alphabet.indexOf(child.suffix[0])
				if err != nil {
					panic("trie: alphabet exceeded 256 symbols")
				}
				branch.setChildAt(sk, newLeaf(cloneBytes(child.suffix[1:]), child.count))
			}
			n = branch
			i++

		default:
			child.count = satAdd(child.count, 1)
			n = child
			i++
		}
	}
}

// Contains reports whether some ingested string s satisfies
// distance(seq, s) <= maxDistance under the chosen metric. It panics if
// maxDistance is negative; that is a caller error, validated at the
// boundary rather than surfaced as a bool.
func (t *Trie) Contains(seq []byte, maxDistance int, useEdit bool) bool {
	if maxDistance < 0 {
		panic("trie: max distance must be >= 0")
	}
	if useEdit {
		return t.editDFS(t.root, seq, 0, maxDistance)
	}
	return t.hammingDFS(t.root, seq, 0, maxDistance)
}

func (t *Trie) hammingDFS(n *node, seq []byte, i int, budget int) bool {
	if i == len(seq) {
		return n.terminal != nil
	}
	knownIdx, known := t.alphabet.lookupIndex(seq[i])
	for idx, child := range n.children {
		if child == nil {
			continue
		}
		cost := 1
		if known && idx == knownIdx {
			cost = 0
		}
		if cost > budget {
			continue
		}
		if child.isBranch {
			if t.hammingDFS(child, seq, i+1, budget-cost) {
				return true
			}
			continue
		}
		remaining := seq[i+1:]
		if len(remaining) != len(child.suffix) {
			continue
		}
		if distance.HammingWithin(remaining, child.suffix, budget-cost) {
			return true
		}
	}
	return false
}

func (t *Trie) editDFS(n *node, seq []byte, i int, budget int) bool {
	if budget < 0 {
		return false
	}
	if i == len(seq) && n.terminal != nil {
		return true
	}
	// Deletion: drop seq[i] without moving in the trie.
	if i < len(seq) && budget > 0 && t.editDFS(n, seq, i+1, budget-1) {
		return true
	}
	var knownIdx int
	var known bool
	if i < len(seq) {
		knownIdx, known = t.alphabet.lookupIndex(seq[i])
	}
	for idx, child := range n.children {
		if child == nil {
			continue
		}
		// Match / substitution: consume one symbol on both sides.
		if i < len(seq) {
			cost := 1
			if known && idx == knownIdx {
				cost = 0
			}
			if cost <= budget && t.editStep(child, seq, i+1, budget-cost) {
				return true
			}
		}
		// Insertion: consume a trie-side symbol without advancing in seq.
		if budget > 0 && t.editStep(child, seq, i, budget-1) {
			return true
		}
	}
	return false
}

func (t *Trie) editStep(n *node, seq []byte, i int, budget int) bool {
	if budget < 0 {
		return false
	}
	if n.isBranch {
		return t.editDFS(n, seq, i, budget)
	}
	return distance.EditWithin(seq[i:], n.suffix, budget)
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
