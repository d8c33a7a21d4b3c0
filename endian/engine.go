// Package endian provides the byte order used when laying out .ld records.
//
// The .ld format is little-endian throughout. Records are serialized into
// fixed-size byte slices with the Put* methods, and variable-length sample
// arrays are grown with the Append* methods:
//
//	engine := endian.GetLittleEndianEngine()
//	engine.PutUint32(b[8:12], metaPtr)
//	buf = engine.AppendUint32(buf, math.Float32bits(v))
//
// All functions in this package are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness reports the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100: the first byte in memory is 0x01 only on big-endian hosts.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian, in which case
// the file byte order matches memory order.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// GetLittleEndianEngine returns the little-endian engine, the only byte order
// the .ld format uses.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
