package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig is the TOML representation of Config.
type FileConfig struct {
	Frequency      int    `toml:"frequency"`
	OutputDir      string `toml:"output_dir"`
	Driver         string `toml:"driver"`
	VehicleID      string `toml:"vehicle_id"`
	VehicleType    string `toml:"vehicle_type"`
	VehicleWeight  int    `toml:"vehicle_weight"`
	VehicleComment string `toml:"vehicle_comment"`
	Venue          string `toml:"venue"`
	Event          string `toml:"event"`
	Session        string `toml:"session"`
	ShortComment   string `toml:"short_comment"`
	LongComment    string `toml:"long_comment"`
	LogLevel       string `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}

	return fc, nil
}

// DefaultConfigPath returns ~/.aim2ld/config.toml, or "" when the home directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".aim2ld", "config.toml")
	}

	return ""
}

// ApplyFileConfig copies file values into cfg, skipping explicitly set flags.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setInt("frequency", fc.Frequency, &cfg.Frequency)
	s.setString("output-dir", fc.OutputDir, &cfg.OutputDir)
	s.setString("driver", fc.Driver, &cfg.Driver)
	s.setString("vehicle-id", fc.VehicleID, &cfg.VehicleID)
	s.setString("vehicle-type", fc.VehicleType, &cfg.VehicleType)
	s.setInt("vehicle-weight", fc.VehicleWeight, &cfg.VehicleWeight)
	s.setString("vehicle-comment", fc.VehicleComment, &cfg.VehicleComment)
	s.setString("venue", fc.Venue, &cfg.Venue)
	s.setString("event", fc.Event, &cfg.Event)
	s.setString("session", fc.Session, &cfg.Session)
	s.setString("short-comment", fc.ShortComment, &cfg.ShortComment)
	s.setString("long-comment", fc.LongComment, &cfg.LongComment)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
