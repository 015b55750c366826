// Package errs defines the sentinel errors shared across the fdr packages.
//
// All errors are plain sentinel values so callers can classify failures with
// errors.Is after any amount of fmt.Errorf("%w") wrapping:
//
//	rec, err := producer.Produce()
//	if errors.Is(err, errs.ErrTruncatedInput) {
//	    // the log was cut short mid-record
//	}
package errs

import "errors"

// Decoding errors.
var (
	// ErrTruncatedInput indicates fewer bytes remain in the buffer than a
	// field requires. The cursor is left unchanged when this is returned.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrInvalidMetadataKind indicates a metadata kind code at or beyond the
	// valid range. The code was never assigned in any format version.
	ErrInvalidMetadataKind = errors.New("invalid metadata record kind")

	// ErrUnsupportedInVersion indicates a recognized metadata kind code that
	// has been retired as of the log's format version.
	ErrUnsupportedInVersion = errors.New("record kind not supported in this format version")

	// ErrMalformedField indicates a field value that violates a declared
	// constraint of its record layout.
	ErrMalformedField = errors.New("malformed record field")

	// ErrInternalInvariant guards states the decoder design proves
	// unreachable. It must never surface from a conforming decoder.
	ErrInternalInvariant = errors.New("internal invariant violation")
)

// File and archive errors.
var (
	// ErrInvalidHeaderSize indicates the buffer is too short to contain a
	// complete file header.
	ErrInvalidHeaderSize = errors.New("invalid file header size")

	// ErrUnsupportedVersion indicates a file header format version this
	// library does not decode.
	ErrUnsupportedVersion = errors.New("unsupported format version")

	// ErrUnsupportedCompression indicates an unknown compression type.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)
