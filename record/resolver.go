package record

import (
	"fmt"

	"github.com/tracekit/fdr/errs"
	"github.com/tracekit/fdr/format"
)

// Resolve maps a 7-bit metadata kind code to a freshly allocated empty
// record of the variant that code selects in the given format version.
//
// Resolve is pure: it never touches the cursor, it only decides which
// variant to build. Version-gated substitutions live here and nowhere
// else: EndOfBuffer is constructible only below version 2, and the custom
// event shape is chosen once from the version.
//
// Returns:
//   - Record: Empty record of the resolved variant
//   - error: errs.ErrInvalidMetadataKind for codes at or beyond the valid
//     range, errs.ErrUnsupportedInVersion for recognized but retired codes
func Resolve(version format.Version, kind uint8) (Record, error) {
	if kind >= uint8(format.MetadataKindEnd) {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidMetadataKind, kind)
	}

	switch format.RecordKind(kind) {
	case format.KindNewBuffer:
		return &NewBuffer{}, nil
	case format.KindEndOfBuffer:
		if !version.HasEndOfBuffer() {
			return nil, fmt.Errorf("%w: end of buffer records were retired in version 2 of the log, got version %d",
				errs.ErrUnsupportedInVersion, version)
		}

		return &EndOfBuffer{}, nil
	case format.KindNewCPUID:
		return &NewCPUID{}, nil
	case format.KindTSCWrap:
		return &TSCWrap{}, nil
	case format.KindWallclock:
		return &Wallclock{}, nil
	case format.KindCustomEvent:
		if version.HasTypedCustomEvents() {
			return &CustomEventV5{}, nil
		}

		return &CustomEvent{}, nil
	case format.KindCallArgument:
		return &CallArgument{}, nil
	case format.KindBufferExtents:
		return &BufferExtents{}, nil
	case format.KindTypedEvent:
		return &TypedEvent{}, nil
	case format.KindPID:
		return &PID{}, nil
	}

	// The range check above makes this unreachable.
	return nil, fmt.Errorf("%w: unhandled metadata record kind %d", errs.ErrInternalInvariant, kind)
}
