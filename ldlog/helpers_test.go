package ldlog

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"

	"github.com/ldconv/ldconv/format"
	"github.com/ldconv/ldconv/logging"
	"github.com/ldconv/ldconv/section"
)

type logEntry struct {
	level  string
	msg    string
	fields []logging.Field
}

// recordingLogger keeps every message for assertions.
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (r *recordingLogger) add(level, msg string, fields []logging.Field) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (r *recordingLogger) Debug(msg string, fields ...logging.Field) { r.add("debug", msg, fields) }
func (r *recordingLogger) Info(msg string, fields ...logging.Field)  { r.add("info", msg, fields) }
func (r *recordingLogger) Warn(msg string, fields ...logging.Field)  { r.add("warn", msg, fields) }
func (r *recordingLogger) Error(msg string, fields ...logging.Field) { r.add("error", msg, fields) }

func (r *recordingLogger) warnings() []logEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []logEntry
	for _, e := range r.entries {
		if e.level == "warn" {
			out = append(out, e)
		}
	}

	return out
}

// decodedRecord mirrors the serialized fields of a channel record.
type decodedRecord struct {
	prev, next, data, count uint32
	counter, class, width   uint16
	freq                    uint16
	shift, mul, scale, dec  int16
	name, short, unit       string
}

func decodeRecord(t *testing.T, file []byte, offset uint32) decodedRecord {
	t.Helper()
	require.LessOrEqual(t, int(offset)+section.ChannelSize, len(file))

	b := file[offset : offset+section.ChannelSize]
	le := binary.LittleEndian

	return decodedRecord{
		prev:    le.Uint32(b[0:4]),
		next:    le.Uint32(b[4:8]),
		data:    le.Uint32(b[8:12]),
		count:   le.Uint32(b[12:16]),
		counter: le.Uint16(b[16:18]),
		class:   le.Uint16(b[18:20]),
		width:   le.Uint16(b[20:22]),
		freq:    le.Uint16(b[22:24]),
		shift:   int16(le.Uint16(b[24:26])),
		mul:     int16(le.Uint16(b[26:28])),
		scale:   int16(le.Uint16(b[28:30])),
		dec:     int16(le.Uint16(b[30:32])),
		name:    cString(b[32:64]),
		short:   cString(b[64:72]),
		unit:    cString(b[72:84]),
	}
}

// decodeSamples interprets a sample array the way a reader applies the record's
// scaling parameters.
func decodeSamples(file []byte, rec decodedRecord) []float64 {
	out := make([]float64, 0, rec.count)
	le := binary.LittleEndian
	for i := uint32(0); i < rec.count; i++ {
		off := rec.data + i*uint32(rec.width)
		var raw float64
		switch rec.class {
		case format.ClassFloat:
			raw = float64(math.Float32frombits(le.Uint32(file[off:])))
		case format.ClassInt32:
			raw = float64(int32(le.Uint32(file[off:])))
		}
		v := (raw*math.Pow(10, -float64(rec.dec))/float64(rec.scale) + float64(rec.shift)) * float64(rec.mul)
		out = append(out, v)
	}

	return out
}

func cString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}

	return string(b)
}

func fixedClock() *clock.Mock {
	mock := clock.NewMock()
	mock.Set(time.Date(2024, 6, 15, 13, 45, 30, 0, time.UTC))

	return mock
}

func newTestLog(t *testing.T, opts ...Option) (*Log, *recordingLogger) {
	t.Helper()

	rec := &recordingLogger{}
	opts = append([]Option{WithLogger(rec), WithClock(fixedClock())}, opts...)
	lg, err := New(LogMetadata{Frequency: 20}, opts...)
	require.NoError(t, err)

	return lg, rec
}

func rpmChannel() Channel {
	return Channel{Name: "RPM", Unit: "rpm", Samples: []float64{0, 1000, 2000, 3000, 4000}, Kind: format.KindInteger}
}

func speedChannel() Channel {
	return Channel{Name: "Speed", Unit: "km/h", Samples: []float64{0.0, 10.5, 21.0, 31.5, 42.0}, Kind: format.KindFloat}
}

// failingWriter fails the nth write (0-based) or every seek when failSeek is set.
type failingWriter struct {
	failAt   int
	failSeek bool
	writes   int
}

var errDiskFull = errors.New("disk full")

func (f *failingWriter) Write(p []byte) (int, error) {
	defer func() { f.writes++ }()
	if f.writes == f.failAt {
		return 0, errDiskFull
	}

	return len(p), nil
}

func (f *failingWriter) Seek(offset int64, whence int) (int64, error) {
	if f.failSeek {
		return 0, errDiskFull
	}
	if whence != io.SeekStart {
		return 0, errors.New("unexpected whence")
	}

	return offset, nil
}
