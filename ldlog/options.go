package ldlog

import (
	"github.com/benbjohnson/clock"

	"github.com/ldconv/ldconv/internal/options"
	"github.com/ldconv/ldconv/logging"
)

// config holds the static metadata and collaborators of a Log.
//
// All descriptive fields default to empty placeholders.
type config struct {
	logger logging.Logger
	clock  clock.Clock

	driver       string
	shortComment string

	vehicleID      string
	vehicleWeight  uint32
	vehicleType    string
	vehicleComment string

	venue string

	eventName   string
	session     string
	longComment string
}

func defaultConfig() *config {
	return &config{
		logger: defaultLogger,
		clock:  clock.New(),
	}
}

// Option configures a Log.
type Option = options.Option[*config]

// WithLogger sets the logger used for warnings and progress messages.
// A nil logger discards everything.
func WithLogger(logger logging.Logger) Option {
	return options.NoError(func(c *config) {
		if logger == nil {
			logger = logging.NewNoopLogger()
		}
		c.logger = logger
	})
}

// WithClock sets the clock providing the header date and time.
func WithClock(clk clock.Clock) Option {
	return options.NoError(func(c *config) {
		if clk != nil {
			c.clock = clk
		}
	})
}

// WithDriver sets the driver name of the header.
func WithDriver(name string) Option {
	return options.NoError(func(c *config) {
		c.driver = name
	})
}

// WithShortComment sets the header comment.
func WithShortComment(comment string) Option {
	return options.NoError(func(c *config) {
		c.shortComment = comment
	})
}

// WithVehicle sets the vehicle record. The id is also copied to the header.
func WithVehicle(id string, weight uint32, vehicleType, comment string) Option {
	return options.NoError(func(c *config) {
		c.vehicleID = id
		c.vehicleWeight = weight
		c.vehicleType = vehicleType
		c.vehicleComment = comment
	})
}

// WithVenue sets the venue record name. It is also copied to the header.
func WithVenue(name string) Option {
	return options.NoError(func(c *config) {
		c.venue = name
	})
}

// WithEvent sets the event record.
func WithEvent(name, session, comment string) Option {
	return options.NoError(func(c *config) {
		c.eventName = name
		c.session = session
		c.longComment = comment
	})
}

// WithLongComment sets the event comment without changing the event name or session.
func WithLongComment(comment string) Option {
	return options.NoError(func(c *config) {
		c.longComment = comment
	})
}
