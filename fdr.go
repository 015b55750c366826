// Package fdr decodes FDR-mode binary trace logs produced by runtime
// function instrumentation into a strongly-typed stream of records for
// offline analysis.
//
// # Structure
//
// A trace log is a 32-byte file header followed by a sequence of records.
// Each record starts with a tag byte whose low bit discriminates metadata
// records (buffer boundaries, clock and CPU context, markers) from
// function-call records. The record set and some record shapes depend on
// the header's format version.
//
// # Basic Usage
//
// Reading a trace log:
//
//	import "github.com/tracekit/fdr"
//
//	reader, err := fdr.Load(data)
//	if err != nil {
//	    return err
//	}
//	for reader.More() {
//	    rec, err := reader.Read()
//	    if err != nil {
//	        return err
//	    }
//	    switch r := rec.(type) {
//	    case *record.Function:
//	        // one traced call event
//	    case *record.NewCPUID:
//	        // CPU migration with a fresh TSC base
//	    }
//	}
//
// Load accepts raw logs and Zstd-compressed archives transparently; use
// LoadCompressed for LZ4 or S2 block archives, whose formats carry no
// magic number to sniff.
//
// The lower-level building blocks live in the subpackages: cursor (bounded
// buffer reads), record (record model, kind resolution, field decoding and
// the per-record producer), format (enums and version gates), compress
// (archive codecs) and errs (sentinel errors).
package fdr

import (
	"fmt"

	"github.com/tracekit/fdr/compress"
	"github.com/tracekit/fdr/format"
	"github.com/tracekit/fdr/internal/hash"
)

// Load creates a LogReader over a trace log. Zstd-compressed archives are
// detected by their frame magic and decompressed transparently; any other
// data is decoded as a raw log.
func Load(data []byte) (*LogReader, error) {
	if compress.IsZstdFrame(data) {
		return LoadCompressed(data, format.CompressionZstd)
	}

	return NewLogReader(data)
}

// LoadCompressed decompresses an archived trace log with the named codec
// and creates a LogReader over the result. Use this for the block-format
// codecs (LZ4, S2) that Load cannot detect.
func LoadCompressed(data []byte, compression format.CompressionType) (*LogReader, error) {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s trace archive: %w", compression, err)
	}

	return NewLogReader(raw)
}

// Fingerprint returns a stable 64-bit identity of a trace buffer, suitable
// as a cache key for offline analysis artifacts derived from it.
func Fingerprint(data []byte) uint64 {
	return hash.Sum64(data)
}
