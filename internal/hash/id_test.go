package hash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
		{"another string", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID(tt.data))
			assert.Equal(t, tt.id, Sum([]byte(tt.data)))
		})
	}
}

func TestReader(t *testing.T) {
	data := strings.Repeat("Time,RPM\n0.00,1000\n", 512)

	sum, err := Reader(strings.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, ID(data), sum)
}
