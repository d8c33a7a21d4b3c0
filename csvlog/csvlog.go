package csvlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/ldconv/ldconv/compress"
	"github.com/ldconv/ldconv/errs"
	"github.com/ldconv/ldconv/format"
	"github.com/ldconv/ldconv/internal/options"
	"github.com/ldconv/ldconv/ldlog"
	"github.com/ldconv/ldconv/logging"
)

// Log is a parsed CSV export.
type Log struct {
	// Metadata holds the leading key/value rows with quotes stripped.
	Metadata map[string]string
	// Channels holds the numeric columns in file order.
	Channels []ldlog.Channel
	// Frequency overrides the sample rate when non-zero.
	Frequency int
}

// SetFrequency sets the frequency override in Hz. Zero clears it.
func (l *Log) SetFrequency(hz int) {
	l.Frequency = hz
}

// LogMetadata returns the metadata view consumed by ldlog.New.
func (l *Log) LogMetadata() ldlog.LogMetadata {
	return ldlog.LogMetadata{
		Values:    l.Metadata,
		Frequency: l.Frequency,
	}
}

type column struct {
	name    string
	unit    string
	samples []float64
	valid   bool
}

// ParseFile opens and parses the export at path. Files ending in a compression
// suffix (.zst, .s2, .lz4, .gz) are decompressed while reading.
//
// Returns:
//   - *Log: parsed log
//   - error: ErrUnsupportedCompression, ErrInvalidLogFormat, ErrNoChannelsFound or an I/O error
func ParseFile(path string, opts ...Option) (*Log, error) {
	ct, _ := compress.Detect(path)
	codec, err := compress.CreateCodec(ct)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r, err := codec.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer r.Close()

	return Parse(r, opts...)
}

// Parse reads an AiM CSV export from r.
//
// Returns:
//   - *Log: parsed log
//   - error: ErrInvalidLogFormat when no header row exists, ErrNoChannelsFound when no
//     column is fully numeric, or a read error
func Parse(r io.Reader, opts ...Option) (*Log, error) {
	cfg := &config{logger: logging.NewNoopLogger()}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	meta := make(map[string]string)

	var header []string
	for {
		row, err := readRow(reader)
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: no header row", errs.ErrInvalidLogFormat)
		}
		if err != nil {
			return nil, err
		}
		if isBlank(row) {
			continue
		}
		if len(row) == 2 {
			meta[unquote(row[0])] = unquote(row[1])
			continue
		}
		header = row

		break
	}

	units, err := readRow(reader)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	cols := make([]*column, len(header))
	for i, name := range header {
		cols[i] = &column{name: strings.TrimSpace(name), valid: true}
		if i < len(units) {
			cols[i].unit = strings.TrimSpace(units[i])
		}
	}

	for {
		row, err := readRow(reader)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if isBlank(row) {
			continue
		}

		for i, col := range cols {
			if !col.valid {
				continue
			}
			if i >= len(row) {
				col.valid = false
				continue
			}
			v, ok := parseCell(row[i])
			if !ok {
				col.valid = false
				continue
			}
			col.samples = append(col.samples, v)
		}
	}

	log := &Log{
		Metadata:  meta,
		Frequency: cfg.frequency,
	}
	for _, col := range cols {
		if !col.valid || len(col.samples) == 0 {
			cfg.logger.Debug("dropping non-numeric column", logging.String("column", col.name))
			continue
		}
		log.Channels = append(log.Channels, ldlog.Channel{
			Name:    col.name,
			Unit:    col.unit,
			Samples: col.samples,
			Kind:    format.KindFloat,
		})
	}

	if len(log.Channels) == 0 {
		return nil, fmt.Errorf("%w: %d columns, none numeric", errs.ErrNoChannelsFound, len(cols))
	}

	return log, nil
}

func readRow(reader *csv.Reader) ([]string, error) {
	row, err := reader.Read()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidLogFormat, err)
	}

	return row, err
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}

func unquote(s string) string {
	return strings.Trim(s, `"`)
}

func parseCell(cell string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}

	return v, true
}
