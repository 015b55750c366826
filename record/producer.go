package record

import (
	"errors"
	"fmt"

	"github.com/tracekit/fdr/cursor"
	"github.com/tracekit/fdr/format"
)

// Producer decodes one record per call from a cursor positioned at a
// record boundary.
//
// A Producer owns one decoding session: the cursor's offset is the only
// mutable state, and it is advanced only through the producer's own calls.
// The caller invokes Produce repeatedly until the buffer is exhausted or
// the first error; a Producer performs no retry, skip or resynchronization.
type Producer struct {
	cur *cursor.Cursor
	dec *Decoder
}

// NewProducer creates a producer decoding records of the given format
// version from cur.
func NewProducer(version format.Version, cur *cursor.Cursor) *Producer {
	return &Producer{cur: cur, dec: NewDecoder(version, cur)}
}

// Produce decodes exactly one record.
//
// The tag byte's bit 0 selects the record family: 1 routes through the
// metadata kind resolver, 0 allocates a function record directly. The
// resolved record is then populated by the field decoder. On success the
// record is returned with ownership transferred to the caller and the
// cursor rests on the next record boundary; on failure no record is
// returned and the cursor position is unspecified beyond the tag byte.
func (p *Producer) Produce() (Record, error) {
	tagOff := p.cur.Offset()

	tag, err := p.cur.Uint8()
	if err != nil {
		return nil, fmt.Errorf("failed reading record tag byte at offset %d: %w", tagOff, err)
	}

	var rec Record
	if tag&0x01 != 0 {
		kind := tag >> 1
		rec, err = Resolve(p.dec.version, kind)
		if err != nil {
			// Keep the resolver's cause and add the dispatch context.
			return nil, errors.Join(err,
				fmt.Errorf("encountered an unsupported metadata record kind %d at offset %d", kind, tagOff))
		}
	} else {
		rec = &Function{}
	}

	if err := p.dec.Decode(rec, tag); err != nil {
		return nil, err
	}

	return rec, nil
}
