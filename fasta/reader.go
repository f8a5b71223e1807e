package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// ErrNoHeader indicates sequence data before the first '>' header.
	ErrNoHeader = errors.New("fasta: sequence data before first header")

	// ErrEmptyRecord indicates a header followed by no sequence.
	ErrEmptyRecord = errors.New("fasta: record has no sequence")
)

// Record is one FASTA entry.
type Record struct {
	ID  string
	Seq []byte
}

// Reader yields records one at a time.
type Reader struct {
	r      *bufio.Reader
	line   int
	header string // pending header of the next record
	hasHdr bool
	done   bool
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Next returns the next record, or io.EOF after the last one.
func (fr *Reader) Next() (Record, error) {
	if fr.done && !fr.hasHdr {
		return Record{}, io.EOF
	}

	var seq []byte
	for !fr.done {
		line, err := fr.r.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return Record{}, err
		}
		if err == io.EOF {
			fr.done = true
		}
		if len(line) == 0 && fr.done {
			break
		}
		fr.line++
		line = bytes.TrimRight(line, "\r\n")
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		if line[0] == '>' {
			if fr.hasHdr {
				rec, err := fr.emit(seq)
				fr.header = string(line[1:])
				return rec, err
			}
			fr.header, fr.hasHdr = string(line[1:]), true
			continue
		}

		if !fr.hasHdr {
			return Record{}, fmt.Errorf("%w (line %d)", ErrNoHeader, fr.line)
		}
		// whitespace inside a sequence line is layout, not a symbol
		for _, chunk := range bytes.Fields(line) {
			seq = append(seq, bytes.ToUpper(chunk)...)
		}
	}

	if !fr.hasHdr {
		return Record{}, io.EOF
	}
	fr.hasHdr = false

	return fr.emit(seq)
}

// emit builds a record from the pending header and seq.
func (fr *Reader) emit(seq []byte) (Record, error) {
	id := ""
	if fields := strings.Fields(fr.header); len(fields) > 0 {
		id = fields[0]
	}
	if len(seq) == 0 {
		return Record{}, fmt.Errorf("%w: %q (line %d)", ErrEmptyRecord, id, fr.line)
	}

	return Record{ID: id, Seq: seq}, nil
}

// ReadAll reads every remaining record.
func (fr *Reader) ReadAll() ([]Record, error) {
	var out []Record
	for {
		rec, err := fr.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
}

// Open opens path for reading. "-" is stdin; a ".gz" suffix is gunzipped.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return struct {
			io.Reader
			io.Closer
		}{Reader: gr, Closer: fh}, nil
	}

	return fh, nil
}

// ReadFile opens path and reads every record in it.
func ReadFile(path string) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return NewReader(rc).ReadAll()
}
