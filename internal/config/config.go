// Package config loads CLI configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment-driven settings. Command-line flags
// override these per invocation.
type Config struct {
	// DBPath is where the solve history database lives. Empty means a
	// cubesim directory under the user config dir.
	DBPath string `env:"CUBESIM_DB"`

	// ScrambleMoves is the default scramble length.
	ScrambleMoves int `env:"CUBESIM_SCRAMBLE_MOVES" envDefault:"20"`

	// LogLevel is the textual log level (debug, info, warn, error).
	LogLevel string `env:"CUBESIM_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ResolveDBPath returns the configured database path, defaulting to
// cubesim/solves.db under the user config dir and creating the parent
// directory as needed.
func (c Config) ResolveDBPath() (string, error) {
	path := c.DBPath
	if path == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("resolve config dir: %w", err)
		}
		path = filepath.Join(base, "cubesim", "solves.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create db dir: %w", err)
	}
	return path, nil
}
