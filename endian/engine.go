// Package endian provides byte-order engines for encoding and decoding
// fixed-width integers.
//
// The wire format produced by this library is always big-endian, so most
// callers only need GetBigEndianEngine. The little-endian engine exists for
// callers that interoperate with externally defined little-endian layouts.
package endian

import (
	"encoding/binary"
)

// EndianEngine is the interface for a byte-order engine. It combines the
// binary.ByteOrder and binary.AppendByteOrder interfaces, so an engine can
// both decode from and append to byte slices.
//
// Prefer the AppendUintN methods when building output incrementally, and the
// PutUintN methods when the destination slice is already sized.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine.
//
// This is the engine used for the wire format: all length prefixes and
// fixed-width values are encoded most significant byte first.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
