package csvlog

import (
	"github.com/ldconv/ldconv/internal/options"
	"github.com/ldconv/ldconv/logging"
)

type config struct {
	logger    logging.Logger
	frequency int
}

// Option configures parsing.
type Option = options.Option[*config]

// WithLogger sets the logger reporting dropped columns. A nil logger discards everything.
func WithLogger(logger logging.Logger) Option {
	return options.NoError(func(c *config) {
		if logger == nil {
			logger = logging.NewNoopLogger()
		}
		c.logger = logger
	})
}

// WithFrequency sets the frequency override of the parsed log.
func WithFrequency(hz int) Option {
	return options.NoError(func(c *config) {
		c.frequency = hz
	})
}
