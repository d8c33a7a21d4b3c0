// Package compress opens compressed source logs.
//
// Data loggers and the tools around them often archive CSV exports compressed.
// The codecs in this package stream-decompress such files so they can be parsed
// without unpacking them first. The codec is chosen from the file extension:
//
//	.zst, .zstd  Zstandard (cgo builds use libzstd through gozstd)
//	.s2, .sz     S2 / Snappy framed stream
//	.lz4         LZ4 frame
//	.gz          gzip
//
// Any other extension is read as is.
package compress
