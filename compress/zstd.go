package compress

// ZstdCodec handles Zstandard streams.
//
// Builds with cgo use libzstd through gozstd; pure Go builds use klauspost/compress.
// Both produce and accept standard zstd frames.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
