package compress

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ldconv/ldconv/errs"
	"github.com/ldconv/ldconv/format"
)

// Codec creates streaming readers and writers for one compression format.
type Codec interface {
	// NewReader returns a reader decompressing r. Closing it releases decoder
	// resources but does not close r.
	NewReader(r io.Reader) (io.ReadCloser, error)

	// NewWriter returns a writer compressing into w. Close flushes the stream but
	// does not close w.
	NewWriter(w io.Writer) (io.WriteCloser, error)
}

// CreateCodec returns the codec for the specified compression type.
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCodec(), nil
	case format.CompressionZstd:
		return NewZstdCodec(), nil
	case format.CompressionS2:
		return NewS2Codec(), nil
	case format.CompressionLZ4:
		return NewLZ4Codec(), nil
	case format.CompressionGzip:
		return NewGzipCodec(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
	}
}

var extensions = map[string]format.CompressionType{
	".zst":  format.CompressionZstd,
	".zstd": format.CompressionZstd,
	".s2":   format.CompressionS2,
	".sz":   format.CompressionS2,
	".lz4":  format.CompressionLZ4,
	".gz":   format.CompressionGzip,
}

// Detect returns the compression implied by the extension of path, and path
// without that extension. Uncompressed paths are returned unchanged.
func Detect(path string) (format.CompressionType, string) {
	ext := strings.ToLower(filepath.Ext(path))
	if ct, ok := extensions[ext]; ok {
		return ct, path[:len(path)-len(ext)]
	}

	return format.CompressionNone, path
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
