package cliconfig

import "os"

// EnvPrefix prefixes every environment variable read by ApplyEnvConfig.
const EnvPrefix = "AIM2LD_"

// ApplyEnvConfig applies configuration from AIM2LD_* environment variables,
// skipping explicitly set flags.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setIntFromString("frequency", os.Getenv(EnvPrefix+"FREQUENCY"), &cfg.Frequency); err != nil {
		return err
	}
	if err := s.setIntFromString("vehicle-weight", os.Getenv(EnvPrefix+"VEHICLE_WEIGHT"), &cfg.VehicleWeight); err != nil {
		return err
	}

	s.setString("output-dir", os.Getenv(EnvPrefix+"OUTPUT_DIR"), &cfg.OutputDir)
	s.setString("driver", os.Getenv(EnvPrefix+"DRIVER"), &cfg.Driver)
	s.setString("vehicle-id", os.Getenv(EnvPrefix+"VEHICLE_ID"), &cfg.VehicleID)
	s.setString("vehicle-type", os.Getenv(EnvPrefix+"VEHICLE_TYPE"), &cfg.VehicleType)
	s.setString("vehicle-comment", os.Getenv(EnvPrefix+"VEHICLE_COMMENT"), &cfg.VehicleComment)
	s.setString("venue", os.Getenv(EnvPrefix+"VENUE"), &cfg.Venue)
	s.setString("event", os.Getenv(EnvPrefix+"EVENT"), &cfg.Event)
	s.setString("session", os.Getenv(EnvPrefix+"SESSION"), &cfg.Session)
	s.setString("short-comment", os.Getenv(EnvPrefix+"SHORT_COMMENT"), &cfg.ShortComment)
	s.setString("long-comment", os.Getenv(EnvPrefix+"LONG_COMMENT"), &cfg.LongComment)
	s.setString("log-level", os.Getenv(EnvPrefix+"LOG_LEVEL"), &cfg.LogLevel)

	return nil
}
