package trie

import "unsafe"

// RawStats returns, for each depth level (root is depth 0), a histogram
// slice of length len(Alphabet())+1: index 0 counts branch nodes at
// that depth holding a terminal leaf, and index k (1 <= k <=
// len(Alphabet())) counts branch nodes at that depth with exactly k
// occupied child slots. A node contributes to both columns when it has
// both a terminal and children, mirroring the two independent memory
// costs those features carry.
func (t *Trie) RawStats() [][]int {
	width := t.alphabet.size() + 1
	var layers [][]int

	var walk func(n *node, depth int)
	walk = func(n *node, depth int) {
		for len(layers) <= depth {
			layers = append(layers, make([]int, width))
		}
		if n.terminal != nil {
			layers[depth][0]++
		}
		occ := 0
		for _, c := range n.children {
			if c == nil {
				continue
			}
			occ++
			if c.isBranch {
				walk(c, depth+1)
			}
		}
		if occ >= 1 {
			layers[depth][occ]++
		}
	}
	walk(t.root, 0)
	return layers
}

// MemorySize estimates, in bytes, the Go heap memory held by the
// trie's nodes, child-array backing stores, and leaf suffixes. It is a
// structural estimate (unsafe.Sizeof plus slice capacities), not an
// instrumented allocator measurement.
func (t *Trie) MemorySize() uintptr {
	nodeSize := unsafe.Sizeof(node{})
	ptrSize := unsafe.Sizeof((*node)(nil))

	var total uintptr
	var walk func(n *node)
	walk = func(n *node) {
		total += nodeSize
		if !n.isBranch {
			total += uintptr(cap(n.suffix))
			return
		}
		total += uintptr(cap(n.children)) * ptrSize
		if n.terminal != nil {
			walk(n.terminal)
		}
		for _, c := range n.children {
			if c != nil {
				walk(c)
			}
		}
	}
	walk(t.root)
	return total
}
