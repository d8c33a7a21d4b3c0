// Package pool provides pooled byte buffers for sample encoding and in-memory serialization.
package pool

import (
	"io"
	"sync"
)

const (
	DataBufferDefaultSize  = 1024 * 16   // 16KiB, about 4096 32-bit samples
	DataBufferMaxThreshold = 1024 * 1024 // 1MiB
	FileBufferDefaultSize  = 1024 * 64   // 64KiB, enough for the fixed region of a file
	FileBufferMaxThreshold = 1024 * 1024 * 16
)

// ByteBuffer is a growable byte slice.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but keeps the allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow ensures the buffer can hold requiredBytes more bytes without reallocating.
//
// Small buffers grow by DataBufferDefaultSize, larger ones by 25% of their capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := DataBufferDefaultSize
	if cap(bb.B) > 4*DataBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ExtendOrGrow extends the length of the buffer by n bytes, growing it if necessary.
// The new bytes are zeroed.
func (bb *ByteBuffer) ExtendOrGrow(n int) {
	bb.Grow(n)
	start := len(bb.B)
	bb.B = bb.B[:start+n]
	clear(bb.B[start:])
}

// Write appends data to the buffer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a sync.Pool of ByteBuffers.
//
// Buffers whose capacity grew beyond maxThreshold are dropped instead of being
// returned to the pool.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	dataDefaultPool = NewByteBufferPool(DataBufferDefaultSize, DataBufferMaxThreshold)
	fileDefaultPool = NewByteBufferPool(FileBufferDefaultSize, FileBufferMaxThreshold)
)

// GetDataBuffer retrieves a buffer for encoding one channel's samples.
func GetDataBuffer() *ByteBuffer {
	return dataDefaultPool.Get()
}

// PutDataBuffer returns a buffer obtained from GetDataBuffer.
func PutDataBuffer(bb *ByteBuffer) {
	dataDefaultPool.Put(bb)
}

// GetFileBuffer retrieves a buffer for serializing a whole file in memory.
func GetFileBuffer() *ByteBuffer {
	return fileDefaultPool.Get()
}

// PutFileBuffer returns a buffer obtained from GetFileBuffer.
func PutFileBuffer(bb *ByteBuffer) {
	fileDefaultPool.Put(bb)
}
