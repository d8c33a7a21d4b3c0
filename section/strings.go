package section

import "github.com/ldconv/ldconv/endian"

var engine = endian.GetLittleEndianEngine()

// putString copies s into the fixed-width field b. Longer strings are truncated,
// shorter ones keep the zero padding of b.
func putString(b []byte, s string) {
	copy(b, s)
}
