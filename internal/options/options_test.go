package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type writerConfig struct {
	frequency int
	driver    string
	calls     []string
}

func withFrequency(hz int) Option[*writerConfig] {
	return New(func(c *writerConfig) error {
		if hz <= 0 {
			return errors.New("frequency must be positive")
		}
		c.frequency = hz
		c.calls = append(c.calls, "frequency")

		return nil
	})
}

func withDriver(name string) Option[*writerConfig] {
	return NoError(func(c *writerConfig) {
		c.driver = name
		c.calls = append(c.calls, "driver")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &writerConfig{}
		err := Apply(cfg, withDriver("A"), withFrequency(50), withDriver("B"))

		require.NoError(t, err)
		require.Equal(t, 50, cfg.frequency)
		require.Equal(t, "B", cfg.driver)
		require.Equal(t, []string{"driver", "frequency", "driver"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &writerConfig{}
		err := Apply(cfg, withFrequency(-1), withDriver("A"))

		require.Error(t, err)
		require.Empty(t, cfg.driver)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &writerConfig{}
		require.NoError(t, Apply(cfg, nil, withDriver("A")))
		require.Equal(t, "A", cfg.driver)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &writerConfig{}
		require.NoError(t, Apply(cfg))
		require.Empty(t, cfg.calls)
	})
}
