// Package section defines the fixed-size records and absolute offsets of the MoTeC .ld layout.
//
// Every record serializes itself into a freshly allocated, zero-filled byte slice of
// its exact on-disk size. Strings are fixed-width, null padded and silently truncated.
// All multi-byte integers are little-endian.
//
// # File Structure
//
//	┌──────────────────────────────────────────────┐ 0
//	│ Header (1762 bytes)                          │
//	├──────────────────────────────────────────────┤ 1762
//	│ Vehicle (260 bytes)                          │
//	├──────────────────────────────────────────────┤ 5078
//	│ Venue (1100 bytes) ─► vehicle pointer        │
//	├──────────────────────────────────────────────┤ 8180
//	│ Event (1154 bytes) ─► venue pointer          │
//	├──────────────────────────────────────────────┤ 11336
//	│ Channel record 0 (124 bytes)                 │
//	│ Channel record 1 ...                         │
//	├──────────────────────────────────────────────┤ 11336 + n*124
//	│ Channel 0 samples                            │
//	│ Channel 1 samples ...                        │
//	└──────────────────────────────────────────────┘
//
// Gaps between the static records are left as zeros. The offsets were taken from
// files produced by MoTeC loggers and are identical across files.
//
// Many header fields have no known meaning; they are reproduced byte for byte as
// protocol constants (see const.go).
package section
