// Package hash wraps xxHash64 for channel name tracking and source file fingerprints.
package hash

import (
	"io"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Sum computes the xxHash64 of data.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Reader computes the xxHash64 of everything read from r.
func Reader(r io.Reader) (uint64, error) {
	d := xxhash.New()
	if _, err := io.Copy(d, r); err != nil {
		return 0, err
	}

	return d.Sum64(), nil
}
