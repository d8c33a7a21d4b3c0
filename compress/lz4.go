package compress

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// LZ4Codec handles LZ4 frame streams, as produced by the lz4 command line tool.
type LZ4Codec struct{}

var _ Codec = (*LZ4Codec)(nil)

func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

func (c LZ4Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}

func (c LZ4Codec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return lz4.NewWriter(w), nil
}
