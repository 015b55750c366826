// Package endian provides byte order utilities for binary decoding.
//
// This package combines Go's encoding/binary ByteOrder and AppendByteOrder
// interfaces into a unified EndianEngine interface so a single value can be
// injected through the decoding call chain.
//
// # Basic Usage
//
// FDR trace logs are written in the host byte order of the traced process,
// which is little-endian on every supported target, so most users should
// use GetLittleEndianEngine():
//
//	import "github.com/tracekit/fdr/endian"
//
//	engine := endian.GetLittleEndianEngine()
//	cur := cursor.NewWithEngine(data, engine)
//
// # Thread Safety
//
// The returned EndianEngine instances are immutable and stateless, and safe
// for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface for convenient byte order
// operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian
// from the standard library, making it fully compatible with existing Go
// code.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
