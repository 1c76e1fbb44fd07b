// Package config loads the runtime settings of the terminal game from the
// environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the process settings. The rules themselves are fixed and do
// not appear here.
type Config struct {
	// Seed replays a deterministic dice sequence. Zero draws from the
	// cryptographic stream instead.
	Seed int64 `env:"YACHT_SEED" envDefault:"0"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `env:"YACHT_LOG_LEVEL" envDefault:"warn"`
	// NoColor disables terminal colours.
	NoColor bool `env:"NO_COLOR"`
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads the configuration from the given variables only.
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that the env tags cannot.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	for _, l := range logLevels {
		if c.LogLevel == l {
			return nil
		}
	}
	return fmt.Errorf("invalid YACHT_LOG_LEVEL %q: want one of %s", c.LogLevel, strings.Join(logLevels, ", "))
}
