// Command fastqdedup deduplicates one or more mate-paired FASTQ files
// by clustering reads within a bounded string distance and keeping one
// representative per cluster.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/mhaller/fastqdedup/dedup"
)

const (
	defaultPrefix      = "fastqdedup_R"
	defaultMaxDistance = 1
)

// outputFlags collects repeated -output flags in order.
type outputFlags []string

func (o *outputFlags) String() string   { return fmt.Sprint([]string(*o)) }
func (o *outputFlags) Set(v string) error {
	*o = append(*o, v)
	return nil
}

func main() {
	checkLengths := flag.String("check-lengths", "", "comma-separated per-file slice expression restricting which bases are checked for duplication, e.g. '16,8'")
	prefix := flag.String("prefix", defaultPrefix, "prefix for generated output filenames when -output is not given")
	maxDistance := flag.Int("max-distance", defaultMaxDistance, "the distance at which inputs are considered duplicates")
	useEdit := flag.Bool("edit-distance", false, "use banded edit distance instead of Hamming distance")
	verbose := flag.Bool("verbose", false, "log a trie-stats observability report to stderr")
	var outputs outputFlags
	flag.Var(&outputs, "output", "output file; repeat once per input file (default: <prefix>N.fastq.gz)")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	if *verbose {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.WarnLevel)
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "usage: fastqdedup [flags] FASTQ [FASTQ...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	outputFiles := []string(outputs)
	if len(outputFiles) == 0 {
		outputFiles = make([]string, len(inputs))
		for i := range inputs {
			outputFiles[i] = fmt.Sprintf("%s%d.fastq.gz", *prefix, i+1)
		}
	}

	err := dedup.DeduplicateFiles(inputs, outputFiles, *checkLengths, *maxDistance, *useEdit, logger)
	if err != nil {
		logger.Error().Err(err).Msg("fastqdedup failed")
		os.Exit(1)
	}
}
