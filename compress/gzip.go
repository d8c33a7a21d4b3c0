package compress

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipCodec handles gzip streams.
type GzipCodec struct{}

var _ Codec = (*GzipCodec)(nil)

func NewGzipCodec() GzipCodec {
	return GzipCodec{}
}

func (c GzipCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

func (c GzipCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriter(w), nil
}
