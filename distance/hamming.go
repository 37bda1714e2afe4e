// Package distance implements the two bounded string-distance
// predicates used throughout the trie and dissection packages: exact
// Hamming distance and banded Levenshtein edit distance. Both are
// pure, total functions over arbitrary byte strings.
package distance

// HammingWithin reports whether a and b have the same length and
// differ in at most k positions. Strings of unequal length are never
// within any Hamming distance of each other. The running mismatch
// count is checked after every position so the scan can stop as soon
// as it exceeds k.
func HammingWithin(a, b []byte, k int) bool {
	if len(a) != len(b) {
		return false
	}
	if k < 0 {
		return false
	}
	mismatches := 0
	for i := range a {
		if a[i] != b[i] {
			mismatches++
			if mismatches > k {
				return false
			}
		}
	}
	return true
}
