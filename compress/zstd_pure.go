//go:build !cgo

package compress

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

func (c ZstdCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	decoder, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("zstd reader: %w", err)
	}

	return decoder.IOReadCloser(), nil
}

func (c ZstdCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	encoder, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("zstd writer: %w", err)
	}

	return encoder, nil
}
