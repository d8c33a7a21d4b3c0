//go:build cgo

package compress

import (
	"io"

	"github.com/valyala/gozstd"
)

type gozstdReader struct {
	*gozstd.Reader
}

func (r gozstdReader) Close() error {
	r.Release()
	return nil
}

type gozstdWriter struct {
	*gozstd.Writer
}

func (w gozstdWriter) Close() error {
	err := w.Writer.Close()
	w.Release()

	return err
}

func (c ZstdCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return gozstdReader{gozstd.NewReader(r)}, nil
}

func (c ZstdCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return gozstdWriter{gozstd.NewWriterLevel(w, 3)}, nil
}
