// Command umidedup is the narrower predecessor of fastqdedup: it
// ingests one or more FASTQ files into the trie and prints an
// observability report, without ever emitting deduplicated output.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	trie "github.com/mhaller/fastqdedup"
	"github.com/mhaller/fastqdedup/dedup"
	"github.com/mhaller/fastqdedup/fastqio"
)

var defaultAlphabet = []byte("ACGTN")

func main() {
	checkLengths := flag.String("check-lengths", "", "comma-separated per-file slice expression restricting which bases are counted, e.g. '16,8'")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()

	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: umidedup [-check-lengths SPEC] FASTQ [FASTQ...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(paths, *checkLengths, logger); err != nil {
		logger.Error().Err(err).Msg("umidedup failed")
		os.Exit(1)
	}
}

func run(paths []string, checkLengths string, logger zerolog.Logger) error {
	var specs []dedup.LengthSpec
	if checkLengths != "" {
		parsed, err := dedup.ParseLengthSpec(checkLengths)
		if err != nil {
			return err
		}
		specs = parsed
	}
	keyFunc := dedup.NewKeyFunc(specs)

	readers, err := fastqio.OpenInputs(paths)
	if err != nil {
		return err
	}
	defer func() {
		for _, r := range readers {
			r.Close()
		}
	}()

	tr, err := trie.New(defaultAlphabet)
	if err != nil {
		return err
	}

	streams := make([]io.Reader, len(readers))
	for i, r := range readers {
		streams[i] = r
	}
	reader := fastqio.NewReader(streams)

	count := 0
	for {
		tuple, err := reader.ReadTuple()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		seqs := make([][]byte, len(tuple))
		for i, rec := range tuple {
			seqs[i] = rec.Sequence
		}
		tr.Insert(keyFunc(seqs))
		count++
	}

	logger.Info().Int("records", count).Msg("ingested")
	fmt.Fprintln(os.Stderr, dedup.StatsReport(tr))
	return nil
}
