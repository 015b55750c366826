package compress

// ZstdCompressor provides Zstandard compression for archived trace files.
//
// Zstd is the preferred archive codec: trace payloads are highly
// repetitive and compress 10:1 or better, and the frame format is
// self-describing so the loader can sniff it without out-of-band metadata.
//
// Two implementations exist behind build tags: the default pure-Go
// klauspost/compress encoder, and a cgo gozstd variant selected with the
// cgozstd build tag for workloads that decompress very large archives.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
