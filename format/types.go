package format

import "fmt"

type (
	// Kind is the logical numeric kind of a channel's samples as produced by a source log.
	Kind uint8

	// DataType is the on-disk sample representation of a channel.
	DataType uint8
)

const (
	KindFloat   Kind = 0x1 // KindFloat represents floating point samples.
	KindInteger Kind = 0x2 // KindInteger represents integral samples.

	TypeFloat32 DataType = 0x1 // TypeFloat32 represents IEEE 754 single precision samples.
	TypeInt32   DataType = 0x2 // TypeInt32 represents signed 32-bit samples.
	TypeFloat16 DataType = 0x3 // TypeFloat16 represents half precision samples (reserved).
	TypeInt16   DataType = 0x4 // TypeInt16 represents signed 16-bit samples (reserved).
)

// Type class codes stored in the first data type field of a channel record.
const (
	ClassFloat uint16 = 0x07
	ClassInt32 uint16 = 0x05
	ClassInt16 uint16 = 0x03
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "Float"
	case KindInteger:
		return "Integer"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

func (t DataType) String() string {
	switch t {
	case TypeFloat32:
		return "Float32"
	case TypeInt32:
		return "Int32"
	case TypeFloat16:
		return "Float16"
	case TypeInt16:
		return "Int16"
	default:
		return "Unknown"
	}
}

// IsValid reports whether t is one of the representable data types.
func (t DataType) IsValid() bool {
	switch t {
	case TypeFloat32, TypeInt32, TypeFloat16, TypeInt16:
		return true
	default:
		return false
	}
}

// ClassCode returns the type class code written to a channel record.
// It returns 0 for an invalid data type.
func (t DataType) ClassCode() uint16 {
	switch t {
	case TypeFloat32, TypeFloat16:
		return ClassFloat
	case TypeInt32:
		return ClassInt32
	case TypeInt16:
		return ClassInt16
	default:
		return 0
	}
}

// Width returns the byte width of a single sample. It returns 0 for an invalid data type.
func (t DataType) Width() int {
	switch t {
	case TypeFloat32, TypeInt32:
		return 4
	case TypeFloat16, TypeInt16:
		return 2
	default:
		return 0
	}
}

// DataTypeOf maps a logical kind to the on-disk type the writer selects for it.
//
// Floating kinds are stored as Float32 and integral kinds as Int32. The 16-bit
// types are never selected.
func DataTypeOf(k Kind) (DataType, bool) {
	switch k {
	case KindFloat:
		return TypeFloat32, true
	case KindInteger:
		return TypeInt32, true
	default:
		return 0, false
	}
}

// CompressionType identifies the compression of a source log file.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents an uncompressed file.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents a Zstandard stream.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents an S2 stream.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents an LZ4 frame stream.
	CompressionGzip CompressionType = 0x5 // CompressionGzip represents a gzip stream.
)

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
	case CompressionGzip:
		return "Gzip"
	default:
		return "Unknown"
	}
}
