// Package names tracks channel names as they will appear on disk.
package names

import "github.com/ldconv/ldconv/internal/hash"

// Tracker detects channels whose stored names are identical.
//
// Names are compared after truncation to the width of the on-disk name field,
// so two distinct long names sharing a prefix are reported as duplicates.
type Tracker struct {
	width int
	seen  map[uint64][]string // hash -> stored names, more than one only on hash collision
	count int
}

// NewTracker creates a tracker for a name field of width bytes.
func NewTracker(width int) *Tracker {
	return &Tracker{
		width: width,
		seen:  make(map[uint64][]string),
	}
}

// Stored returns name as it is stored in a field of the tracker's width.
func (t *Tracker) Stored(name string) string {
	if len(name) > t.width {
		return name[:t.width]
	}

	return name
}

// Track records name and reports whether its stored form was already tracked.
func (t *Tracker) Track(name string) bool {
	stored := t.Stored(name)
	h := hash.ID(stored)

	for _, existing := range t.seen[h] {
		if existing == stored {
			return true
		}
	}

	t.seen[h] = append(t.seen[h], stored)
	t.count++

	return false
}

// Count returns the number of distinct stored names.
func (t *Tracker) Count() int {
	return t.count
}
