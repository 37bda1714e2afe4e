package dedup

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	trie "github.com/mhaller/fastqdedup"
	"github.com/mhaller/fastqdedup/dissect"
	"github.com/mhaller/fastqdedup/fastqio"
)

// defaultAlphabet matches the core tool's own default: IUPAC bases
// plus N, grown lazily for anything unexpected rather than rejected.
var defaultAlphabet = []byte("ACGTN")

// DeduplicateFiles ports the original tool's deduplicate_cluster: it
// reads N mate-paired FASTQ files, builds one key per read tuple
// (optionally restricted to a prefix of each file's sequence via
// checkLengths), clusters keys in a trie, keeps the highest-count
// representative of every cluster, and writes the surviving reads —
// one output file per input file, in input order — as gzip-compressed
// FASTQ.
func DeduplicateFiles(inputFiles, outputFiles []string, checkLengths string, maxDistance int, useEdit bool, logger zerolog.Logger) error {
	if len(inputFiles) != len(outputFiles) {
		return fmt.Errorf("dedup: %d output files for %d input files: %w", len(outputFiles), len(inputFiles), ErrInvalidInput)
	}

	var specs []LengthSpec
	if checkLengths != "" {
		parsed, err := ParseLengthSpec(checkLengths)
		if err != nil {
			return err
		}
		if len(parsed) != len(inputFiles) {
			return fmt.Errorf("dedup: %d check-lengths for %d input files: %w", len(parsed), len(inputFiles), ErrInvalidInput)
		}
		specs = parsed
	}
	keyFunc := NewKeyFunc(specs)

	inputs, err := fastqio.OpenInputs(inputFiles)
	if err != nil {
		return err
	}
	defer closeAllReaders(inputs)

	readers := make([]io.Reader, len(inputs))
	for i, c := range inputs {
		readers[i] = c
	}
	reader := fastqio.NewReader(readers)

	tr, err := trie.New(defaultAlphabet)
	if err != nil {
		return err
	}

	var tuples [][]fastqio.Record
	for {
		recs, err := reader.ReadTuple()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		tr.Insert(keyFunc(sequencesOf(recs)))
		tuples = append(tuples, recs)
	}
	logger.Info().Int("reads", len(tuples)).Msg("ingested")
	logger.Debug().Msg(StatsReport(tr))

	survivors := make(map[string]struct{}, tr.NumberOfSequences())
	clusterCount := 0
	for tr.NumberOfSequences() > 0 {
		cluster, err := tr.PopCluster(maxDistance, useEdit)
		if err != nil {
			return err
		}
		rep := dissect.HighestCount(cluster)[0]
		survivors[string(rep.String)] = struct{}{}
		clusterCount++
	}
	logger.Info().Int("clusters", clusterCount).Msg("dissected")

	outputs, err := fastqio.CreateOutputs(outputFiles)
	if err != nil {
		return err
	}
	writers := make([]io.Writer, len(outputs))
	for i, c := range outputs {
		writers[i] = c
	}
	writer := fastqio.NewWriter(writers)
	defer closeAllWriters(outputs)
	defer writer.Close()

	written := 0
	for _, recs := range tuples {
		key := string(keyFunc(sequencesOf(recs)))
		if _, ok := survivors[key]; !ok {
			continue
		}
		delete(survivors, key) // keep exactly one occurrence of each surviving key
		if err := writer.WriteTuple(recs); err != nil {
			return err
		}
		written++
	}
	logger.Info().Int("written", written).Msg("deduplicated")
	return nil
}

func sequencesOf(records []fastqio.Record) [][]byte {
	seqs := make([][]byte, len(records))
	for i, r := range records {
		seqs[i] = r.Sequence
	}
	return seqs
}

func closeAllReaders(closers []io.ReadCloser) {
	for _, c := range closers {
		c.Close()
	}
}

func closeAllWriters(closers []io.WriteCloser) {
	for _, c := range closers {
		c.Close()
	}
}
