package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 1024, bb.Cap())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(DataBufferDefaultSize)
	_, _ = bb.Write([]byte("some data"))
	originalCap := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, originalCap, bb.Cap())
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.Grow(32)
		assert.Equal(t, 64, bb.Cap())
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(8)
		_, _ = bb.Write([]byte("abcd"))
		bb.Grow(16)
		assert.Equal(t, 4+DataBufferDefaultSize, bb.Cap())
		assert.Equal(t, []byte("abcd"), bb.Bytes())
	})

	t.Run("large request", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(DataBufferDefaultSize * 2)
		assert.Equal(t, DataBufferDefaultSize*2, bb.Cap())
	})
}

func TestByteBuffer_ExtendOrGrowZeroes(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.B = append(bb.B, 0xFF, 0xFF, 0xFF, 0xFF)
	bb.B = bb.B[:1]

	bb.ExtendOrGrow(3)

	require.Equal(t, []byte{0xFF, 0, 0, 0}, bb.Bytes())
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	_, _ = bb.Write([]byte("ld"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)
	require.Equal(t, "ld", out.String())
}

func TestByteBufferPool(t *testing.T) {
	p := NewByteBufferPool(32, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	_, _ = bb.Write([]byte("data"))
	p.Put(bb)

	again := p.Get()
	require.Equal(t, 0, again.Len())

	// oversized buffers are dropped, nil is ignored
	big := NewByteBuffer(128)
	p.Put(big)
	p.Put(nil)
}

func TestDefaultPools(t *testing.T) {
	bb := GetDataBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	PutDataBuffer(bb)

	fb := GetFileBuffer()
	require.NotNil(t, fb)
	require.Equal(t, 0, fb.Len())
	PutFileBuffer(fb)
}
