// Package cliconfig holds the configuration of the aim2ld command.
//
// Values are resolved with the precedence flags > environment (AIM2LD_*) > config
// file > defaults. Every source consults the set of changed flags so that an
// explicit flag always wins.
package cliconfig

import (
	"fmt"
	"math"
	"strconv"

	"github.com/ldconv/ldconv/ldlog"
	"github.com/ldconv/ldconv/logging"
)

// Config holds CLI configuration for aim2ld.
type Config struct {
	// Frequency overrides the sample rate of the source log when non-zero.
	Frequency int
	// Output is the destination file of a single conversion.
	Output string
	// OutputDir is the destination directory of watch mode. Empty means next to the source.
	OutputDir string

	Driver         string
	VehicleID      string
	VehicleType    string
	VehicleWeight  int
	VehicleComment string
	Venue          string
	Event          string
	Session        string
	ShortComment   string
	LongComment    string

	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Frequency < 0 || c.Frequency > math.MaxUint16 {
		return fmt.Errorf("frequency must be between 0 and %d, got %d", math.MaxUint16, c.Frequency)
	}

	if c.VehicleWeight < 0 || int64(c.VehicleWeight) > math.MaxUint32 {
		return fmt.Errorf("vehicle weight out of range: %d", c.VehicleWeight)
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// LogOptions returns the ldlog options describing the session metadata.
func (c *Config) LogOptions() []ldlog.Option {
	return []ldlog.Option{
		ldlog.WithDriver(c.Driver),
		ldlog.WithShortComment(c.ShortComment),
		ldlog.WithVehicle(c.VehicleID, uint32(c.VehicleWeight), c.VehicleType, c.VehicleComment), //nolint: gosec
		ldlog.WithVenue(c.Venue),
		ldlog.WithEvent(c.Event, c.Session, c.LongComment),
	}
}

// configSetter applies values only when the corresponding flag was not set explicitly.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setIntFromString parses a string to int and sets the destination if positive.
// Used for environment variables.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i

	return nil
}
