// Package compress provides the compression codecs used for archived FDR
// trace files.
//
// Raw trace logs compress extremely well: they are dominated by small
// fixed-width records full of near-constant deltas and zero padding.
// Traces captured for offline analysis are therefore commonly stored
// compressed, and this package lets the loader accept them transparently.
//
// # Codecs
//
//   - Zstd (klauspost/compress/zstd, or valyala/gozstd with the cgozstd
//     build tag): best ratio, the default choice for archived traces
//   - LZ4 block format (pierrec/lz4): fastest decompression
//   - S2 block format (klauspost/compress/s2): balanced speed and ratio
//   - NoOp: passthrough for already-raw data
//
// Codecs are selected by format.CompressionType through GetCodec, or
// sniffed from the data itself with Detect for self-describing frame
// formats.
package compress
