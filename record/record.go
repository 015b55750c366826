package record

import "github.com/tracekit/fdr/format"

const (
	// MetadataBodySize is the fixed body size of every metadata record,
	// excluding the tag byte. Decoders read their declared fields and then
	// skip padding up to this boundary.
	MetadataBodySize = 15

	// FunctionRecordSize is the total size of a function record including
	// the tag byte.
	FunctionRecordSize = 8
)

// Record is one decoded trace log record. The concrete types in this
// package form the closed set of variants; a Record is immutable once
// successfully decoded.
type Record interface {
	// Kind identifies the record variant.
	Kind() format.RecordKind
}

// NewBuffer marks the start of a per-thread trace buffer. BufferID is the
// id of the writing thread.
type NewBuffer struct {
	BufferID int32
}

// EndOfBuffer marks the end of a trace buffer. It appears only in format
// versions below 2; later versions bound buffers with BufferExtents
// instead.
type EndOfBuffer struct{}

// NewCPUID records a migration to a new CPU together with a full TSC
// reading on that CPU.
type NewCPUID struct {
	CPU uint16
	TSC uint64
}

// TSCWrap records that the timestamp counter wrapped and provides the new
// base value.
type TSCWrap struct {
	BaseTSC uint64
}

// Wallclock anchors the TSC timeline to a wall clock reading.
type Wallclock struct {
	Seconds uint64
	Nanos   uint32
}

// CustomEvent is the legacy shape of a custom event marker, used below
// format version 5. CPU is populated only at version 4 and above.
type CustomEvent struct {
	Size int32
	TSC  uint64
	CPU  uint16
	Data []byte
}

// CustomEventV5 is the version 5 shape of a custom event marker. Delta is
// the TSC delta against the preceding record instead of a full reading.
type CustomEventV5 struct {
	Size  int32
	Delta int32
	Data  []byte
}

// CallArgument carries one argument value for the preceding function entry
// record.
type CallArgument struct {
	Arg uint64
}

// BufferExtents declares how many bytes of the current buffer hold valid
// records.
type BufferExtents struct {
	Size uint64
}

// TypedEvent is a typed event marker, available from format version 5.
type TypedEvent struct {
	Size      int32
	Delta     int32
	EventType uint16
	Data      []byte
}

// PID records the process id of the writing process.
type PID struct {
	PID int32
}

// Function describes one traced function-call event.
type Function struct {
	Type   format.FunctionType
	FuncID int32
	Delta  uint32
}

func (*NewBuffer) Kind() format.RecordKind     { return format.KindNewBuffer }
func (*EndOfBuffer) Kind() format.RecordKind   { return format.KindEndOfBuffer }
func (*NewCPUID) Kind() format.RecordKind      { return format.KindNewCPUID }
func (*TSCWrap) Kind() format.RecordKind       { return format.KindTSCWrap }
func (*Wallclock) Kind() format.RecordKind     { return format.KindWallclock }
func (*CustomEvent) Kind() format.RecordKind   { return format.KindCustomEvent }
func (*CustomEventV5) Kind() format.RecordKind { return format.KindCustomEvent }
func (*CallArgument) Kind() format.RecordKind  { return format.KindCallArgument }
func (*BufferExtents) Kind() format.RecordKind { return format.KindBufferExtents }
func (*TypedEvent) Kind() format.RecordKind    { return format.KindTypedEvent }
func (*PID) Kind() format.RecordKind           { return format.KindPID }
func (*Function) Kind() format.RecordKind      { return format.KindFunction }
