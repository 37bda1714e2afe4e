// Package dedup wires the trie, dissect, distance, and fastqio
// packages into the multi-file, mate-paired deduplication pipeline:
// it turns FASTQ record tuples into keys, drains clusters from a trie,
// keeps one representative per cluster, and filters the original files
// down to the surviving reads.
package dedup

import "errors"

// ErrInvalidInput is returned for mismatched input/output file counts,
// mismatched check-length counts, or a malformed length specification.
var ErrInvalidInput = errors.New("dedup: invalid input")
