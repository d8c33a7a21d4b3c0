package compress

import "io"

// NoOpCodec passes data through unchanged.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

func (c NoOpCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}

func (c NoOpCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}
