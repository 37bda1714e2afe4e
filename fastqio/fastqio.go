// Package fastqio provides the paired-record FASTQ reader and writer
// that the dedup pipeline treats as a thin, swappable collaborator: it
// wraps biogo's FASTQ codec, synchronizes mates across N input
// streams, and gzip-compresses output.
package fastqio

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fastq"
	"github.com/biogo/biogo/seq/linear"
)

// ErrMalformedInput is returned when input streams desynchronize:
// unequal record counts, or mate names that disagree past the
// conventional "/1", "/2" suffix.
var ErrMalformedInput = errors.New("fastqio: malformed input")

// Record is one FASTQ entry, decoupled from biogo's seq.Sequence so
// callers outside this package never need to import biogo.
type Record struct {
	Name      string
	Sequence  []byte
	Qualities []byte // Phred+33 bytes, one per base
}

// Reader reads mate-synchronized tuples of records from one or more
// underlying FASTQ streams.
type Reader struct {
	readers []*fastq.Reader
}

// NewReader wraps one biogo FASTQ reader per stream.
func NewReader(streams []io.Reader) *Reader {
	readers := make([]*fastq.Reader, len(streams))
	for i, s := range streams {
		template := linear.NewQSeq("", nil, alphabet.DNA, alphabet.Sanger)
		readers[i] = fastq.NewReader(s, template)
	}
	return &Reader{readers: readers}
}

// ReadTuple reads one record from every underlying stream. It returns
// io.EOF once every stream is exhausted at the same record, and fails
// with ErrMalformedInput if any stream ends before the others or a
// later stream's record is not a mate of the first.
func (r *Reader) ReadTuple() ([]Record, error) {
	out := make([]Record, len(r.readers))
	for i, rd := range r.readers {
		s, err := rd.Read()
		if err == io.EOF {
			if i == 0 {
				for j, other := range r.readers[1:] {
					if _, err := other.Read(); err != io.EOF {
						return nil, fmt.Errorf("fastqio: stream %d has records left after stream 0 ended: %w", j+1, ErrMalformedInput)
					}
				}
				return nil, io.EOF
			}
			return nil, fmt.Errorf("fastqio: stream %d ended before stream 0: %w", i, ErrMalformedInput)
		}
		if err != nil {
			return nil, fmt.Errorf("fastqio: %v: %w", err, ErrMalformedInput)
		}
		qseq, ok := s.(*linear.QSeq)
		if !ok {
			return nil, fmt.Errorf("fastqio: unexpected record type %T: %w", s, ErrMalformedInput)
		}
		out[i] = recordFromQSeq(qseq)
	}
	if err := checkMates(out); err != nil {
		return nil, err
	}
	return out, nil
}

func recordFromQSeq(qseq *linear.QSeq) Record {
	seq := make([]byte, len(qseq.Seq))
	qual := make([]byte, len(qseq.Seq))
	for i, ql := range qseq.Seq {
		seq[i] = byte(ql.L)
		qual[i] = byte(ql.Q) + 33
	}
	return Record{Name: qseq.Name(), Sequence: seq, Qualities: qual}
}

func checkMates(records []Record) error {
	if len(records) < 2 {
		return nil
	}
	base := mateBase(records[0].Name)
	for _, r := range records[1:] {
		if mateBase(r.Name) != base {
			return fmt.Errorf("fastqio: %q is not a mate of %q: %w", r.Name, records[0].Name, ErrMalformedInput)
		}
	}
	return nil
}

// mateBase strips a conventional paired-end suffix ("/1", "/2", or a
// trailing " 1"/" 2" as written by newer Illumina headers) so that
// mate names compare equal.
func mateBase(name string) string {
	if i := strings.LastIndexByte(name, '/'); i == len(name)-2 {
		return name[:i]
	}
	if i := strings.LastIndexByte(name, ' '); i == len(name)-2 {
		return name[:i]
	}
	return name
}

// Writer writes record tuples to one gzip-compressed output stream
// per input stream, preserving call order.
type Writer struct {
	gzips   []*gzip.Writer
	writers []*fastq.Writer
}

// NewWriter wraps one gzip writer (level 1, the fast end of the
// compression trade-off) and one biogo FASTQ writer per stream.
func NewWriter(streams []io.Writer) *Writer {
	gzips := make([]*gzip.Writer, len(streams))
	writers := make([]*fastq.Writer, len(streams))
	for i, s := range streams {
		gz, _ := gzip.NewWriterLevel(s, gzip.BestSpeed)
		gzips[i] = gz
		writers[i] = fastq.NewWriter(gz)
	}
	return &Writer{gzips: gzips, writers: writers}
}

// WriteTuple writes one record to each underlying stream, in order.
func (w *Writer) WriteTuple(records []Record) error {
	for i, r := range records {
		letters := make([]alphabet.QLetter, len(r.Sequence))
		for j, base := range r.Sequence {
			var q alphabet.Qphred
			if j < len(r.Qualities) {
				q = alphabet.Qphred(int(r.Qualities[j]) - 33)
			}
			letters[j] = alphabet.QLetter{L: alphabet.Letter(base), Q: q}
		}
		qseq := linear.NewQSeq(r.Name, letters, alphabet.DNA, alphabet.Sanger)
		if _, err := w.writers[i].Write(qseq); err != nil {
			return fmt.Errorf("fastqio: write: %w", err)
		}
	}
	return nil
}

// Close flushes and closes every underlying gzip stream.
func (w *Writer) Close() error {
	var firstErr error
	for _, gz := range w.gzips {
		if err := gz.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// OpenInputs opens one file per path, transparently gzip-decompressing
// paths ending in ".gz".
func OpenInputs(paths []string) ([]io.ReadCloser, error) {
	closers := make([]io.ReadCloser, 0, len(paths))
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			closeAll(closers)
			return nil, fmt.Errorf("fastqio: open %s: %w", p, err)
		}
		if strings.HasSuffix(p, ".gz") {
			gz, err := gzip.NewReader(bufio.NewReader(f))
			if err != nil {
				f.Close()
				closeAll(closers)
				return nil, fmt.Errorf("fastqio: gzip %s: %w", p, err)
			}
			closers = append(closers, gzipReadCloser{gz, f})
			continue
		}
		closers = append(closers, f)
	}
	return closers, nil
}

// gzipReadCloser closes both the gzip stream and the underlying file.
type gzipReadCloser struct {
	*gzip.Reader
	file *os.File
}

func (g gzipReadCloser) Close() error {
	err := g.Reader.Close()
	if cerr := g.file.Close(); err == nil {
		err = cerr
	}
	return err
}

func closeAll(closers []io.ReadCloser) {
	for _, c := range closers {
		c.Close()
	}
}

// CreateOutputs creates one file per path. Compression is applied by
// Writer, not here, so paths need not carry a ".gz" suffix to receive
// gzip-compressed content.
func CreateOutputs(paths []string) ([]io.WriteCloser, error) {
	closers := make([]io.WriteCloser, 0, len(paths))
	for _, p := range paths {
		f, err := os.Create(p)
		if err != nil {
			for _, c := range closers {
				c.Close()
			}
			return nil, fmt.Errorf("fastqio: create %s: %w", p, err)
		}
		closers = append(closers, f)
	}
	return closers, nil
}
