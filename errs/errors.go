// Package errs defines the sentinel errors returned by ldconv packages.
//
// Callers should match them with errors.Is; most call sites wrap the sentinel
// with additional context using fmt.Errorf("%w: ...").
package errs

import "errors"

// Chain builder and serializer errors.
var (
	// ErrEmptyChannelSet is returned when a channel without samples is appended, or when
	// a log with no channels is serialized. Nothing is written in either case.
	ErrEmptyChannelSet = errors.New("ldlog: empty channel set")

	// ErrUnsupportedDataType is returned when a channel's numeric kind has no on-disk encoding.
	ErrUnsupportedDataType = errors.New("ldlog: unsupported data type")

	// ErrIO is returned when the output sink fails during a seek or a write.
	// The underlying error is wrapped alongside it.
	ErrIO = errors.New("ldlog: io error")

	// ErrTooManySamples is returned when a channel holds more samples than the
	// 32-bit sample count field can describe.
	ErrTooManySamples = errors.New("ldlog: too many samples")

	// ErrOffsetOutOfRange is returned when a record or data pointer would not fit
	// in the 32-bit pointer fields of the format.
	ErrOffsetOutOfRange = errors.New("ldlog: offset out of range")

	// ErrInvalidFrequency is returned when an explicit frequency override does not fit
	// the 16-bit frequency field.
	ErrInvalidFrequency = errors.New("ldlog: invalid frequency")

	// ErrOutputLocked is returned when another writer holds the output file.
	ErrOutputLocked = errors.New("ldlog: output is locked by another writer")
)

// Source log errors.
var (
	// ErrInvalidLogFormat is returned when a source log has no header row.
	ErrInvalidLogFormat = errors.New("csvlog: invalid log format")

	// ErrNoChannelsFound is returned when a source log contains no numeric columns.
	ErrNoChannelsFound = errors.New("csvlog: no channels found")

	// ErrUnsupportedCompression is returned for an unknown compression type.
	ErrUnsupportedCompression = errors.New("compress: unsupported compression")
)
