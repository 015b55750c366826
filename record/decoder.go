package record

import (
	"fmt"

	"github.com/tracekit/fdr/cursor"
	"github.com/tracekit/fdr/errs"
	"github.com/tracekit/fdr/format"
)

// Decoder populates empty records from their declared wire layouts.
//
// One Decoder serves one decoding session: it holds the session's cursor
// and format version. Each variant's decode routine consumes exactly that
// variant's layout, so a successful decode leaves the cursor at the start
// of the next record. On any field failure the record must be discarded;
// it is never observable as valid.
type Decoder struct {
	version format.Version
	cur     *cursor.Cursor
}

// NewDecoder creates a field decoder for one decoding session.
func NewDecoder(version format.Version, cur *cursor.Cursor) *Decoder {
	return &Decoder{version: version, cur: cur}
}

// Decode consumes rec's byte layout from the cursor into rec. The tag byte
// has already been consumed by the producer and is needed again only for
// function records, whose packed word includes it.
func (d *Decoder) Decode(rec Record, tag byte) error {
	switch r := rec.(type) {
	case *NewBuffer:
		return d.decodeNewBuffer(r)
	case *EndOfBuffer:
		return d.cur.Skip(MetadataBodySize)
	case *NewCPUID:
		return d.decodeNewCPUID(r)
	case *TSCWrap:
		return d.decodeTSCWrap(r)
	case *Wallclock:
		return d.decodeWallclock(r)
	case *CustomEvent:
		return d.decodeCustomEvent(r)
	case *CustomEventV5:
		return d.decodeCustomEventV5(r)
	case *CallArgument:
		return d.decodeCallArgument(r)
	case *BufferExtents:
		return d.decodeBufferExtents(r)
	case *TypedEvent:
		return d.decodeTypedEvent(r)
	case *PID:
		return d.decodePID(r)
	case *Function:
		return d.decodeFunction(r, tag)
	}

	return fmt.Errorf("%w: no field decoder for %T", errs.ErrInternalInvariant, rec)
}

func (d *Decoder) decodeNewBuffer(r *NewBuffer) error {
	start := d.cur.Offset()

	id, err := d.cur.Int32()
	if err != nil {
		return fmt.Errorf("failed reading new buffer id: %w", err)
	}
	r.BufferID = id

	return d.pad(start)
}

func (d *Decoder) decodeNewCPUID(r *NewCPUID) error {
	start := d.cur.Offset()

	cpu, err := d.cur.Uint16()
	if err != nil {
		return fmt.Errorf("failed reading cpu id: %w", err)
	}
	tsc, err := d.cur.Uint64()
	if err != nil {
		return fmt.Errorf("failed reading cpu tsc: %w", err)
	}
	r.CPU, r.TSC = cpu, tsc

	return d.pad(start)
}

func (d *Decoder) decodeTSCWrap(r *TSCWrap) error {
	start := d.cur.Offset()

	tsc, err := d.cur.Uint64()
	if err != nil {
		return fmt.Errorf("failed reading tsc wrap base: %w", err)
	}
	r.BaseTSC = tsc

	return d.pad(start)
}

func (d *Decoder) decodeWallclock(r *Wallclock) error {
	start := d.cur.Offset()

	secs, err := d.cur.Uint64()
	if err != nil {
		return fmt.Errorf("failed reading wallclock seconds: %w", err)
	}
	nanos, err := d.cur.Uint32()
	if err != nil {
		return fmt.Errorf("failed reading wallclock nanos: %w", err)
	}
	r.Seconds, r.Nanos = secs, nanos

	return d.pad(start)
}

func (d *Decoder) decodeCustomEvent(r *CustomEvent) error {
	start := d.cur.Offset()

	size, err := d.readEventSize()
	if err != nil {
		return fmt.Errorf("custom event: %w", err)
	}
	tsc, err := d.cur.Uint64()
	if err != nil {
		return fmt.Errorf("failed reading custom event tsc: %w", err)
	}
	r.Size, r.TSC = size, tsc

	// The CPU id joined the record in version 4; the body padding keeps the
	// layout width identical either way.
	if d.version.HasCustomEventCPU() {
		cpu, err := d.cur.Uint16()
		if err != nil {
			return fmt.Errorf("failed reading custom event cpu id: %w", err)
		}
		r.CPU = cpu
	}

	if err := d.pad(start); err != nil {
		return err
	}

	data, err := d.cur.Bytes(int(size))
	if err != nil {
		return fmt.Errorf("failed reading %d bytes of custom event data: %w", size, err)
	}
	r.Data = data

	return nil
}

func (d *Decoder) decodeCustomEventV5(r *CustomEventV5) error {
	start := d.cur.Offset()

	size, err := d.readEventSize()
	if err != nil {
		return fmt.Errorf("custom event: %w", err)
	}
	delta, err := d.cur.Int32()
	if err != nil {
		return fmt.Errorf("failed reading custom event tsc delta: %w", err)
	}
	r.Size, r.Delta = size, delta

	if err := d.pad(start); err != nil {
		return err
	}

	data, err := d.cur.Bytes(int(size))
	if err != nil {
		return fmt.Errorf("failed reading %d bytes of custom event data: %w", size, err)
	}
	r.Data = data

	return nil
}

func (d *Decoder) decodeCallArgument(r *CallArgument) error {
	start := d.cur.Offset()

	arg, err := d.cur.Uint64()
	if err != nil {
		return fmt.Errorf("failed reading call argument: %w", err)
	}
	r.Arg = arg

	return d.pad(start)
}

func (d *Decoder) decodeBufferExtents(r *BufferExtents) error {
	start := d.cur.Offset()

	size, err := d.cur.Uint64()
	if err != nil {
		return fmt.Errorf("failed reading buffer extents: %w", err)
	}
	r.Size = size

	return d.pad(start)
}

func (d *Decoder) decodeTypedEvent(r *TypedEvent) error {
	start := d.cur.Offset()

	size, err := d.readEventSize()
	if err != nil {
		return fmt.Errorf("typed event: %w", err)
	}
	delta, err := d.cur.Int32()
	if err != nil {
		return fmt.Errorf("failed reading typed event tsc delta: %w", err)
	}
	eventType, err := d.cur.Uint16()
	if err != nil {
		return fmt.Errorf("failed reading typed event type: %w", err)
	}
	r.Size, r.Delta, r.EventType = size, delta, eventType

	if err := d.pad(start); err != nil {
		return err
	}

	data, err := d.cur.Bytes(int(size))
	if err != nil {
		return fmt.Errorf("failed reading %d bytes of typed event data: %w", size, err)
	}
	r.Data = data

	return nil
}

func (d *Decoder) decodePID(r *PID) error {
	start := d.cur.Offset()

	pid, err := d.cur.Int32()
	if err != nil {
		return fmt.Errorf("failed reading pid: %w", err)
	}
	r.PID = pid

	return d.pad(start)
}

// decodeFunction decodes the 8-byte function record. The packed first word
// includes the tag byte the producer already consumed, so the word is
// reassembled from the tag plus the next three bytes instead of rewinding
// the cursor.
func (d *Decoder) decodeFunction(r *Function, tag byte) error {
	if tag&0x01 != 0 {
		return fmt.Errorf("%w: function decoder received a metadata tag byte 0x%02x",
			errs.ErrInternalInvariant, tag)
	}

	rest, err := d.cur.Bytes(3)
	if err != nil {
		return fmt.Errorf("failed reading function record word: %w", err)
	}
	word := d.cur.Engine().Uint32([]byte{tag, rest[0], rest[1], rest[2]})

	// Bit 0 is the record discriminator, bits 1-3 the function type, bits
	// 4-31 the function id.
	typ := format.FunctionType(word >> 1 & 0x07)
	if typ > format.FunctionEnterArg {
		return fmt.Errorf("%w: unknown function record type %d at offset %d",
			errs.ErrMalformedField, typ, d.cur.Offset()-4)
	}
	r.Type = typ
	r.FuncID = int32(word >> 4)

	delta, err := d.cur.Uint32()
	if err != nil {
		return fmt.Errorf("failed reading function record tsc delta: %w", err)
	}
	r.Delta = delta

	return nil
}

// readEventSize reads and validates the payload size field shared by the
// custom and typed event layouts.
func (d *Decoder) readEventSize() (int32, error) {
	off := d.cur.Offset()

	size, err := d.cur.Int32()
	if err != nil {
		return 0, fmt.Errorf("failed reading event size: %w", err)
	}
	if size <= 0 {
		return 0, fmt.Errorf("%w: invalid event size %d at offset %d", errs.ErrMalformedField, size, off)
	}

	return size, nil
}

// pad skips the remainder of the 15-byte metadata body after the fields
// read since start.
func (d *Decoder) pad(start int) error {
	consumed := d.cur.Offset() - start
	if consumed > MetadataBodySize {
		return fmt.Errorf("%w: metadata record fields consumed %d bytes, body is %d",
			errs.ErrInternalInvariant, consumed, MetadataBodySize)
	}

	return d.cur.Skip(MetadataBodySize - consumed)
}
