// Package cli implements the cubesim command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cubesim/cubesim/internal/config"
	"github.com/cubesim/cubesim/internal/logging"
	"github.com/cubesim/cubesim/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath   string
	logLevel string
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesim",
	Short: "Rubik's cube simulator and solver",
	Long: `cubesim simulates a 3x3 Rubik's cube in the terminal.

Scramble and solve cubes, apply move sequences in standard notation,
explore interactively in the shell, and keep a history of solves.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: <config dir>/cubesim/solves.db)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// loadConfig reads the environment configuration and applies the
// global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

func newLogger(cfg config.Config) *slog.Logger {
	return logging.New(os.Stderr, logging.ParseLevel(cfg.LogLevel))
}

func openStore(cfg config.Config) (*storage.DB, error) {
	path, err := cfg.ResolveDBPath()
	if err != nil {
		return nil, err
	}
	return storage.Open(path)
}
