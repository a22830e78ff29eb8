// Package config loads the gauss CLI configuration from file, environment,
// and flags via viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/viper"

	"github.com/fulgidus/gauss/pkg/gauss"
)

// Arithmetic modes accepted by sum.mode.
const (
	// ModeWrap computes in native 32-bit arithmetic; the intermediate product
	// wraps on overflow, matching the original reference.
	ModeWrap = "wrap"

	// ModeWide computes with a 64-bit intermediate, exact for any int32 input.
	ModeWide = "wide"

	// ModeChecked computes with a 64-bit intermediate and reports an error
	// when the result does not fit in an int32.
	ModeChecked = "checked"
)

// Config represents the complete gauss CLI configuration.
type Config struct {
	Sum SumConfig `mapstructure:"sum"`
	Log LogConfig `mapstructure:"log"`
}

// SumConfig contains settings for the triangular-number commands.
type SumConfig struct {
	// Mode selects the closed-form arithmetic: wrap, wide, or checked.
	Mode string `mapstructure:"mode"`

	// RecursionLimit caps the n accepted by the recursive reference routine.
	// Must be between 1 and gauss.MaxRecursiveN.
	RecursionLimit int32 `mapstructure:"recursion_limit"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Sum: SumConfig{
			Mode:           ModeChecked,
			RecursionLimit: gauss.MaxRecursiveN,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	validModes := []string{ModeWrap, ModeWide, ModeChecked}
	if !slices.Contains(validModes, c.Sum.Mode) {
		return fmt.Errorf("sum.mode must be one of: wrap, wide, checked")
	}

	if c.Sum.RecursionLimit < 1 || c.Sum.RecursionLimit > gauss.MaxRecursiveN {
		return fmt.Errorf("sum.recursion_limit must be between 1 and %d", gauss.MaxRecursiveN)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(validLogLevels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of: debug, info, warn, error")
	}

	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("log.format must be 'json' or 'console'")
	}

	return nil
}

// LoadConfig loads configuration from file, environment, and flags.
func LoadConfig() (*Config, error) {
	defaults := DefaultConfig()

	// Register defaults with viper so they survive unmarshal
	viper.SetDefault("sum.mode", defaults.Sum.Mode)
	viper.SetDefault("sum.recursion_limit", defaults.Sum.RecursionLimit)
	viper.SetDefault("log.level", defaults.Log.Level)
	viper.SetDefault("log.format", defaults.Log.Format)

	if err := viper.ReadInConfig(); err != nil {
		// Missing config file is fine; anything else (parse error, permission
		// denied) is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
