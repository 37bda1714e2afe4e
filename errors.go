package trie

import "errors"

// ErrInvalidInput is returned when a caller passes a nonsensical argument:
// a negative distance, a duplicate symbol in a caller-supplied alphabet, or
// an alphabet that would grow past the 256-symbol ceiling.
var ErrInvalidInput = errors.New("trie: invalid input")

// ErrEmpty is returned by PopCluster when the trie holds zero sequences.
// Callers treat it as a loop terminator, not a failure.
var ErrEmpty = errors.New("trie: empty")
