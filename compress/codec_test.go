package compress

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ldconv/ldconv/errs"
	"github.com/ldconv/ldconv/format"
)

func sampleCSV() []byte {
	var sb strings.Builder
	sb.WriteString("\"Format\",\"AiM CSV File\"\n\"Sample Rate\",\"20\"\n")
	sb.WriteString("Time,RPM,Speed\ns,rpm,km/h\n")
	for i := 0; i < 500; i++ {
		sb.WriteString("0.05,3000,120.5\n")
	}

	return []byte(sb.String())
}

func roundTrip(t *testing.T, codec Codec, payload []byte) []byte {
	t.Helper()

	var compressed bytes.Buffer
	w, err := codec.NewWriter(&compressed)
	require.NoError(t, err)
	_, err = w.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := codec.NewReader(&compressed)
	require.NoError(t, err)
	defer r.Close()

	out, err := io.ReadAll(r)
	require.NoError(t, err)

	return out
}

func TestCreateCodec_RoundTrip(t *testing.T) {
	payload := sampleCSV()

	tests := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
		format.CompressionGzip,
	}

	for _, ct := range tests {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := CreateCodec(ct)
			require.NoError(t, err)
			require.Equal(t, payload, roundTrip(t, codec, payload))
		})
	}
}

func TestCreateCodec_Compresses(t *testing.T) {
	payload := sampleCSV()

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionGzip} {
		codec, err := CreateCodec(ct)
		require.NoError(t, err)

		var compressed bytes.Buffer
		w, err := codec.NewWriter(&compressed)
		require.NoError(t, err)
		_, err = w.Write(payload)
		require.NoError(t, err)
		require.NoError(t, w.Close())

		require.Less(t, compressed.Len(), len(payload), ct.String())
	}
}

func TestCreateCodec_Unsupported(t *testing.T) {
	codec, err := CreateCodec(format.CompressionType(0x7F))
	require.Nil(t, codec)
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
	require.Contains(t, err.Error(), "Unknown")
}

func TestGzipCodec_CorruptInput(t *testing.T) {
	_, err := NewGzipCodec().NewReader(bytes.NewReader([]byte("not gzip")))
	require.Error(t, err)
}

func TestDetect(t *testing.T) {
	tests := []struct {
		path     string
		wantType format.CompressionType
		wantBase string
	}{
		{"session.csv", format.CompressionNone, "session.csv"},
		{"logs/session.csv.zst", format.CompressionZstd, "logs/session.csv"},
		{"session.csv.ZSTD", format.CompressionZstd, "session.csv"},
		{"session.csv.s2", format.CompressionS2, "session.csv"},
		{"session.csv.sz", format.CompressionS2, "session.csv"},
		{"session.csv.lz4", format.CompressionLZ4, "session.csv"},
		{"session.csv.gz", format.CompressionGzip, "session.csv"},
		{"session", format.CompressionNone, "session"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			ct, base := Detect(tt.path)
			require.Equal(t, tt.wantType, ct)
			require.Equal(t, tt.wantBase, base)
		})
	}
}
