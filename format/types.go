// Package format defines the enumerations and version gates of the FDR
// trace log format.
//
// The constants here mirror the on-wire values written by the runtime
// instrumentation and must stay in sync with it. Version-dependent shape
// decisions are exposed as methods on Version so the version-to-shape
// mapping lives in one auditable place.
package format

type (
	// Version is the format version from the trace file header. It governs
	// which record kinds and shapes are legal in the log.
	Version uint16

	// RecordKind identifies a record variant. Values below MetadataKindEnd
	// match the 7-bit metadata kind codes on the wire; KindFunction is not a
	// wire code because function records are discriminated by the tag byte's
	// low bit instead.
	RecordKind uint8

	// FunctionType is the 3-bit type field of a function record.
	FunctionType uint8

	// CompressionType identifies the compression applied to an archived
	// trace file.
	CompressionType uint8
)

// Metadata record kind codes. Keep these in sync with the values written by
// the FDR mode runtime.
const (
	KindNewBuffer     RecordKind = iota // start of a per-thread buffer
	KindEndOfBuffer                     // end of a buffer, versions < 2 only
	KindNewCPUID                        // CPU migration with a fresh TSC base
	KindTSCWrap                         // TSC wrapped, new base value
	KindWallclock                       // wall clock reference point
	KindCustomEvent                     // free-form event payload
	KindCallArgument                    // argument to the preceding function entry
	KindBufferExtents                   // valid byte count of the current buffer
	KindTypedEvent                      // typed event payload, versions >= 5
	KindPID                             // process id of the writer

	// MetadataKindEnd marks the upper bound of the valid metadata kind code
	// range. Codes at or beyond it are invalid in every version.
	MetadataKindEnd

	// KindFunction identifies a function-call record.
	KindFunction
)

// Function record type values, stored in bits 1-3 of the packed word.
const (
	FunctionEnter    FunctionType = iota // function entry
	FunctionExit                         // function return
	FunctionTailExit                     // return via tail call
	FunctionEnterArg                     // function entry that logs an argument
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// HasEndOfBuffer reports whether EndOfBuffer records are legal in this
// version. They were retired in version 2, replaced by BufferExtents.
func (v Version) HasEndOfBuffer() bool {
	return v < 2
}

// HasCustomEventCPU reports whether legacy custom event records carry a CPU
// id field. The field was added in version 4.
func (v Version) HasCustomEventCPU() bool {
	return v >= 4
}

// HasTypedCustomEvents reports whether custom events use the version 5
// shape (size and TSC delta) instead of the legacy shape (size, full TSC
// and CPU id).
func (v Version) HasTypedCustomEvents() bool {
	return v >= 5
}

func (k RecordKind) String() string {
	switch k {
	case KindNewBuffer:
		return "NewBuffer"
	case KindEndOfBuffer:
		return "EndOfBuffer"
	case KindNewCPUID:
		return "NewCPUID"
	case KindTSCWrap:
		return "TSCWrap"
	case KindWallclock:
		return "Wallclock"
	case KindCustomEvent:
		return "CustomEvent"
	case KindCallArgument:
		return "CallArgument"
	case KindBufferExtents:
		return "BufferExtents"
	case KindTypedEvent:
		return "TypedEvent"
	case KindPID:
		return "PID"
	case KindFunction:
		return "Function"
	default:
		return "Unknown"
	}
}

func (t FunctionType) String() string {
	switch t {
	case FunctionEnter:
		return "Enter"
	case FunctionExit:
		return "Exit"
	case FunctionTailExit:
		return "TailExit"
	case FunctionEnterArg:
		return "EnterArg"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
