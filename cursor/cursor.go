// Package cursor provides a bounded sequential reader over an immutable
// byte buffer.
//
// A Cursor is the shared read position of one decoding session: it advances
// only forward and only on fully successful reads. A read that would run
// past the end of the buffer returns errs.ErrTruncatedInput and leaves the
// offset unchanged, so callers can detect truncation as a distinct
// condition rather than inferring it from a sentinel value.
//
// A Cursor is not safe for concurrent use. Use one cursor per buffer and
// decode buffers independently.
package cursor

import (
	"fmt"

	"github.com/tracekit/fdr/endian"
	"github.com/tracekit/fdr/errs"
)

// Cursor is a sequential reader over an immutable byte buffer with an
// explicit, monotonic offset.
type Cursor struct {
	data   []byte
	off    int
	engine endian.EndianEngine
}

// New creates a cursor over data using the little-endian engine, the byte
// order of FDR trace logs.
//
// The cursor does not copy data; the caller must not mutate the buffer for
// the lifetime of the decoding session.
func New(data []byte) *Cursor {
	return NewWithEngine(data, endian.GetLittleEndianEngine())
}

// NewWithEngine creates a cursor over data using the given endian engine.
func NewWithEngine(data []byte, engine endian.EndianEngine) *Cursor {
	return &Cursor{data: data, engine: engine}
}

// Offset returns the current read offset in bytes from the start of the
// buffer.
func (c *Cursor) Offset() int {
	return c.off
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.off
}

// Engine returns the endian engine the cursor decodes with.
func (c *Cursor) Engine() endian.EndianEngine {
	return c.engine
}

// Uint8 reads one byte and advances the offset by 1.
func (c *Cursor) Uint8() (uint8, error) {
	if err := c.require(1); err != nil {
		return 0, err
	}
	v := c.data[c.off]
	c.off++

	return v, nil
}

// Uint16 reads a fixed-width 16-bit unsigned integer and advances the
// offset by 2.
func (c *Cursor) Uint16() (uint16, error) {
	if err := c.require(2); err != nil {
		return 0, err
	}
	v := c.engine.Uint16(c.data[c.off:])
	c.off += 2

	return v, nil
}

// Uint32 reads a fixed-width 32-bit unsigned integer and advances the
// offset by 4.
func (c *Cursor) Uint32() (uint32, error) {
	if err := c.require(4); err != nil {
		return 0, err
	}
	v := c.engine.Uint32(c.data[c.off:])
	c.off += 4

	return v, nil
}

// Uint64 reads a fixed-width 64-bit unsigned integer and advances the
// offset by 8.
func (c *Cursor) Uint64() (uint64, error) {
	if err := c.require(8); err != nil {
		return 0, err
	}
	v := c.engine.Uint64(c.data[c.off:])
	c.off += 8

	return v, nil
}

// Int32 reads a fixed-width 32-bit signed integer and advances the offset
// by 4.
func (c *Cursor) Int32() (int32, error) {
	v, err := c.Uint32()

	return int32(v), err
}

// Bytes reads n bytes into a freshly allocated slice and advances the
// offset by n. The returned slice does not alias the underlying buffer.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative byte count %d", errs.ErrInternalInvariant, n)
	}
	if err := c.require(n); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	copy(buf, c.data[c.off:])
	c.off += n

	return buf, nil
}

// Skip advances the offset by n bytes without reading them.
func (c *Cursor) Skip(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative skip count %d", errs.ErrInternalInvariant, n)
	}
	if err := c.require(n); err != nil {
		return err
	}
	c.off += n

	return nil
}

// require fails without mutating state when fewer than n bytes remain.
func (c *Cursor) require(n int) error {
	if c.Remaining() < n {
		return fmt.Errorf("%w: need %d bytes at offset %d, %d remaining",
			errs.ErrTruncatedInput, n, c.off, c.Remaining())
	}

	return nil
}
