package compress

import (
	"io"

	"github.com/klauspost/compress/s2"
)

// S2Codec handles S2 framed streams. The reader also accepts Snappy framed streams.
type S2Codec struct{}

var _ Codec = (*S2Codec)(nil)

func NewS2Codec() S2Codec {
	return S2Codec{}
}

func (c S2Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(s2.NewReader(r)), nil
}

func (c S2Codec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return s2.NewWriter(w), nil
}
