package compress

// Frame magic numbers of the self-describing compressed formats, as they
// appear in the leading bytes of the data.
var zstdFrameMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// IsZstdFrame reports whether data begins with a Zstandard frame.
func IsZstdFrame(data []byte) bool {
	if len(data) < len(zstdFrameMagic) {
		return false
	}
	for i, b := range zstdFrameMagic {
		if data[i] != b {
			return false
		}
	}

	return true
}

// Detectable reports whether data is recognizably compressed in a
// self-describing frame format.
//
// Only Zstandard frames carry a magic number this package can sniff; the
// LZ4 and S2 codecs use block formats with no framing, so callers that
// archived a trace with them must name the compression type explicitly.
func Detectable(data []byte) bool {
	return IsZstdFrame(data)
}
