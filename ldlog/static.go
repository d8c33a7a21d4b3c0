package ldlog

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ldconv/ldconv/endian"
	"github.com/ldconv/ldconv/errs"
	"github.com/ldconv/ldconv/internal/names"
	"github.com/ldconv/ldconv/internal/options"
	"github.com/ldconv/ldconv/logging"
	"github.com/ldconv/ldconv/section"
)

var defaultLogger logging.Logger = logging.NewZerologAdapter(zerolog.InfoLevel)

// nameWidth is the width of the channel name field of a channel record.
const nameWidth = 32

// Log is an .ld file under construction.
//
// Note: Log is NOT thread-safe.
type Log struct {
	header    *section.Header
	channels  []*channel
	frequency uint16

	engine endian.EndianEngine
	names  *names.Tracker
	logger logging.Logger
}

// New initializes a Log: the header and the static event, venue and vehicle chain at
// their fixed offsets, plus an empty channel chain. It must be called before any
// channel is added.
//
// The sample frequency written to every channel is resolved by ResolveFrequency.
//
// Returns:
//   - *Log: log ready for AddChannel
//   - error: ErrInvalidFrequency if the explicit override does not fit 16 bits, or an option error
func New(meta LogMetadata, opts ...Option) (*Log, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	freq, err := ResolveFrequency(meta, cfg.logger)
	if err != nil {
		return nil, err
	}

	vehicle := &section.Vehicle{
		ID:      cfg.vehicleID,
		Weight:  cfg.vehicleWeight,
		Type:    cfg.vehicleType,
		Comment: cfg.vehicleComment,
	}
	venue := section.NewVenue(cfg.venue, vehicle)
	event := section.NewEvent(cfg.eventName, cfg.session, cfg.longComment, venue)

	header := section.NewHeader(event)
	header.Driver = cfg.driver
	header.VehicleID = cfg.vehicleID
	header.Venue = cfg.venue
	header.Time = cfg.clock.Now()
	header.ShortComment = cfg.shortComment

	return &Log{
		header:    header,
		frequency: freq,
		engine:    endian.GetLittleEndianEngine(),
		names:     names.NewTracker(nameWidth),
		logger:    cfg.logger,
	}, nil
}

// ResolveFrequency picks the sample frequency in Hz: the explicit override when set,
// otherwise the SampleRateKey metadata value, otherwise DefaultFrequency.
//
// Falling back to the default is not an error; a warning is logged instead. An
// unparsable sample rate is treated as missing.
func ResolveFrequency(meta LogMetadata, logger logging.Logger) (uint16, error) {
	if meta.Frequency != 0 {
		if meta.Frequency < 0 || meta.Frequency > math.MaxUint16 {
			return 0, fmt.Errorf("%w: %d Hz", errs.ErrInvalidFrequency, meta.Frequency)
		}

		return uint16(meta.Frequency), nil
	}

	if raw, ok := meta.Values[SampleRateKey]; ok {
		if freq, ok := parseSampleRate(raw); ok {
			return freq, nil
		}
		logger.Warn("unusable sample rate in log metadata",
			logging.String("key", SampleRateKey),
			logging.String("value", raw))
	}

	logger.Warn("log frequency not specified, using default",
		logging.Int("frequency", DefaultFrequency))

	return DefaultFrequency, nil
}

// parseSampleRate accepts values such as "20", "20.0" or "20 Hz".
func parseSampleRate(raw string) (uint16, bool) {
	s := strings.TrimSpace(raw)
	if len(s) >= 2 && strings.EqualFold(s[len(s)-2:], "hz") {
		s = strings.TrimSpace(s[:len(s)-2])
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	v = math.Round(v)
	if v < 1 || v > math.MaxUint16 {
		return 0, false
	}

	return uint16(v), true
}

// Frequency returns the sample frequency written to every channel record.
func (l *Log) Frequency() uint16 {
	return l.frequency
}

// Header returns a copy of the header record.
func (l *Log) Header() section.Header {
	return *l.header
}
