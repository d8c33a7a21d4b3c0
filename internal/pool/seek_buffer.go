package pool

import (
	"errors"
	"io"
)

var errNegativeOffset = errors.New("pool: negative seek offset")

// SeekBuffer is an in-memory io.WriteSeeker backed by a ByteBuffer.
//
// Seeking past the end and writing there zero-fills the gap, the same way a
// sparse file reads back.
type SeekBuffer struct {
	buf *ByteBuffer
	pos int64
}

var _ io.WriteSeeker = (*SeekBuffer)(nil)

// NewSeekBuffer creates a SeekBuffer writing into buf.
func NewSeekBuffer(buf *ByteBuffer) *SeekBuffer {
	return &SeekBuffer{buf: buf}
}

// Write writes p at the current position, growing the buffer as needed.
func (s *SeekBuffer) Write(p []byte) (int, error) {
	end := int(s.pos) + len(p)
	if end > s.buf.Len() {
		s.buf.ExtendOrGrow(end - s.buf.Len())
	}
	copy(s.buf.B[s.pos:end], p)
	s.pos = int64(end)

	return len(p), nil
}

// Seek sets the position for the next Write.
func (s *SeekBuffer) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = s.pos + offset
	case io.SeekEnd:
		abs = int64(s.buf.Len()) + offset
	default:
		return 0, errors.New("pool: invalid whence")
	}
	if abs < 0 {
		return 0, errNegativeOffset
	}
	s.pos = abs

	return abs, nil
}

// Bytes returns the written bytes. The slice aliases the underlying buffer.
func (s *SeekBuffer) Bytes() []byte {
	return s.buf.Bytes()
}
