package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type codecConfig struct {
	Level     int
	Separator string
	Verify    bool
}

func (c *codecConfig) SetLevel(level int) error {
	if level < 0 {
		return errors.New("level cannot be negative")
	}
	c.Level = level

	return nil
}

func withLevel(level int) Option[*codecConfig] {
	return New(func(c *codecConfig) error {
		return c.SetLevel(level)
	})
}

func withSeparator(sep string) Option[*codecConfig] {
	return NoError(func(c *codecConfig) {
		c.Separator = sep
	})
}

func withVerify() Option[*codecConfig] {
	return NoError(func(c *codecConfig) {
		c.Verify = true
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &codecConfig{}
		err := Apply(cfg, withLevel(3), withSeparator("|"), withVerify())
		require.NoError(t, err)
		require.Equal(t, 3, cfg.Level)
		require.Equal(t, "|", cfg.Separator)
		require.True(t, cfg.Verify)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &codecConfig{}
		err := Apply(cfg, withLevel(1), withLevel(-1), withSeparator("never"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "level cannot be negative")
		require.Equal(t, 1, cfg.Level, "options before the failure stay applied")
		require.Empty(t, cfg.Separator, "options after the failure are skipped")
	})

	t.Run("accepts no options", func(t *testing.T) {
		cfg := &codecConfig{}
		require.NoError(t, Apply(cfg))
		require.Equal(t, codecConfig{}, *cfg)
	})
}

func TestNew_PropagatesError(t *testing.T) {
	cfg := &codecConfig{}
	opt := New(func(c *codecConfig) error {
		return c.SetLevel(-5)
	})
	require.Error(t, opt.apply(cfg))
}

func TestNoError_NeverFails(t *testing.T) {
	cfg := &codecConfig{}
	opt := NoError(func(c *codecConfig) {
		c.Separator = ","
	})
	require.NoError(t, opt.apply(cfg))
	require.Equal(t, ",", cfg.Separator)
}

func TestOption_DifferentTargetTypes(t *testing.T) {
	var width int
	opt := NoError(func(w *int) {
		*w = 64
	})
	require.NoError(t, opt.apply(&width))
	require.Equal(t, 64, width)
}
