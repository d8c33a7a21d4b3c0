package names

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTracker_Track(t *testing.T) {
	tr := NewTracker(32)

	require.False(t, tr.Track("RPM"))
	require.False(t, tr.Track("Speed"))
	require.True(t, tr.Track("RPM"))
	require.Equal(t, 2, tr.Count())
}

func TestTracker_TruncatedDuplicates(t *testing.T) {
	tr := NewTracker(8)
	require.Equal(t, "Wheel Sp", tr.Stored("Wheel Speed FL"))

	require.False(t, tr.Track("Wheel Speed FL"))
	require.True(t, tr.Track("Wheel Speed FR"))
	require.Equal(t, 1, tr.Count())
}

func TestTracker_EmptyName(t *testing.T) {
	tr := NewTracker(32)
	require.False(t, tr.Track(""))
	require.True(t, tr.Track(""))
	require.Equal(t, "", tr.Stored(""))
	require.Equal(t, strings.Repeat("a", 32), tr.Stored(strings.Repeat("a", 40)))
}
