// Package cmd contains all CLI command definitions.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/verdantapp/verdant/internal/config"
	"github.com/verdantapp/verdant/internal/garden"
	"github.com/verdantapp/verdant/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "verdant",
	Short: "Verdant - Plant care companion with AI diagnosis",
	Long: `Verdant keeps your plant collection healthy: it tracks watering,
misting, and fertilizing schedules per plant, and identifies plants and
diagnoses their health from photos using Gemini.

Your garden is stored locally as JSON (~/.verdant by default); the only
network call is the AI diagnosis itself.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("dir", "d", ".", "Directory containing the local .env configuration")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}

// exitWithError prints an error message and exits with code 1.
func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// newLogger builds the process logger. All logging goes to stderr: stdout is
// reserved for command output and the MCP protocol.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// loadConfig resolves the --dir flag and loads configuration with the usual
// precedence (local .env > global config > environment > defaults).
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	dir, _ := cmd.Flags().GetString("dir")
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid directory: %w", err)
	}
	cfg, err := config.Load(absDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// openGarden loads the plant collection, seeding the sample garden on first
// run and migrating legacy data when present.
func openGarden(cmd *cobra.Command) (*garden.Service, *config.Config, *slog.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	logger := newLogger(cmd)
	st := store.New(cfg.DataDir, logger)
	return garden.New(st, logger, time.Now()), cfg, logger, nil
}
