package fdr

import (
	"fmt"

	"github.com/tracekit/fdr/cursor"
	"github.com/tracekit/fdr/errs"
	"github.com/tracekit/fdr/record"
)

// minVersion and maxVersion bound the format versions this library decodes.
const (
	minVersion = 1
	maxVersion = 5
)

// LogReader iterates over the records of one trace log buffer.
//
// The reader owns its cursor for the lifetime of the session and is not
// safe for concurrent use. Decode separate buffers with separate readers,
// possibly in parallel; no state is shared between readers.
type LogReader struct {
	header FileHeader
	cur    *cursor.Cursor
	prod   *record.Producer
	err    error
	count  int
}

// NewLogReader parses the file header from data and returns a reader
// positioned at the first record.
func NewLogReader(data []byte) (*LogReader, error) {
	cur := cursor.New(data)

	h, err := ParseFileHeader(cur)
	if err != nil {
		return nil, err
	}
	if h.Version < minVersion || h.Version > maxVersion {
		return nil, fmt.Errorf("%w: format version %d", errs.ErrUnsupportedVersion, h.Version)
	}

	return &LogReader{
		header: h,
		cur:    cur,
		prod:   record.NewProducer(h.Version, cur),
	}, nil
}

// Header returns the parsed file header.
func (r *LogReader) Header() FileHeader {
	return r.header
}

// More reports whether records may still be read. It returns false after
// the first error and at clean end-of-stream.
func (r *LogReader) More() bool {
	return r.err == nil && r.cur.Remaining() > 0
}

// Read returns the next record from the log. The first error is sticky:
// once Read fails, every future call returns the same error. A decoding
// error terminates the session; the reader performs no resynchronization.
func (r *LogReader) Read() (record.Record, error) {
	if r.err != nil {
		return nil, r.err
	}

	rec, err := r.prod.Produce()
	if err != nil {
		r.err = err

		return nil, err
	}
	r.count++

	return rec, nil
}

// Err returns the first error encountered by Read, or nil.
func (r *LogReader) Err() error {
	return r.err
}

// Count returns the number of records successfully read so far.
func (r *LogReader) Count() int {
	return r.count
}

// Records drains the remaining records into a slice. On error it returns
// the records read so far together with the error.
func (r *LogReader) Records() ([]record.Record, error) {
	var recs []record.Record
	for r.More() {
		rec, err := r.Read()
		if err != nil {
			return recs, err
		}
		recs = append(recs, rec)
	}

	return recs, nil
}
