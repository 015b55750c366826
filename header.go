package fdr

import (
	"fmt"

	"github.com/tracekit/fdr/cursor"
	"github.com/tracekit/fdr/errs"
	"github.com/tracekit/fdr/format"
)

// HeaderSize is the fixed size of the trace file header in bytes.
const HeaderSize = 32

// Header bitfield masks.
const (
	constantTSCMask = 0x01 // bit 0: the TSC runs at a constant rate
	nonstopTSCMask  = 0x02 // bit 1: the TSC does not stop in deep sleep states
)

// FileHeader is the parsed 32-byte header at the start of an FDR trace
// log. It is immutable for the whole decoding session; only Version
// influences record decoding.
type FileHeader struct {
	// Version is the format version governing record shapes and kinds.
	Version format.Version
	// Type discriminates the log flavor the writer produced.
	Type uint16
	// ConstantTSC reports whether the writer's TSC ran at a constant rate.
	ConstantTSC bool
	// NonstopTSC reports whether the writer's TSC kept counting in sleep states.
	NonstopTSC bool
	// CycleFrequency is the TSC frequency in cycles per second.
	CycleFrequency uint64
	// FreeFormData is opaque writer-defined data.
	FreeFormData [16]byte
}

// ParseFileHeader reads the file header from the cursor, leaving the
// cursor at the first record boundary.
//
// Returns:
//   - FileHeader: Parsed header
//   - error: errs.ErrInvalidHeaderSize wrapped truncation errors
func ParseFileHeader(cur *cursor.Cursor) (FileHeader, error) {
	if cur.Remaining() < HeaderSize {
		return FileHeader{}, fmt.Errorf("%w: need %d bytes, have %d",
			errs.ErrInvalidHeaderSize, HeaderSize, cur.Remaining())
	}

	var h FileHeader

	version, err := cur.Uint16()
	if err != nil {
		return FileHeader{}, fmt.Errorf("failed reading header version: %w", err)
	}
	h.Version = format.Version(version)

	h.Type, err = cur.Uint16()
	if err != nil {
		return FileHeader{}, fmt.Errorf("failed reading header type: %w", err)
	}

	bitfield, err := cur.Uint32()
	if err != nil {
		return FileHeader{}, fmt.Errorf("failed reading header bitfield: %w", err)
	}
	h.ConstantTSC = bitfield&constantTSCMask != 0
	h.NonstopTSC = bitfield&nonstopTSCMask != 0

	h.CycleFrequency, err = cur.Uint64()
	if err != nil {
		return FileHeader{}, fmt.Errorf("failed reading header cycle frequency: %w", err)
	}

	freeForm, err := cur.Bytes(len(h.FreeFormData))
	if err != nil {
		return FileHeader{}, fmt.Errorf("failed reading header free form data: %w", err)
	}
	copy(h.FreeFormData[:], freeForm)

	return h, nil
}
