// Package commands holds the flexpower CLI. Each pipeline stage is a
// subcommand, `run` executes the whole pipeline, and `serve` starts the
// dashboard API.
package commands

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/config"
	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/logging"
)

var (
	// Global flags
	configFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "flexpower",
	Short: "FlexPower back-office pipeline",
	Long: `Batch pipeline for a renewables trading back office.

Stages:
  forecast   fetch day-ahead production forecasts
  infeed     reconcile forecast vs. measured infeed (best-of)
  trading    trade P&L per book and portfolio
  invoices   monthly producer invoices
  report     daily performance report

Examples:
  flexpower run
  flexpower infeed --config config.yaml
  flexpower serve`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and prints any top-level error.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		os.Stderr.WriteString("error: " + err.Error() + "\n")
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (YAML, defaults apply when empty)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// setup loads .env, the config file and the logger shared by every
// subcommand.
func setup() (*config.Config, zerolog.Logger, error) {
	// A missing .env is fine, environment overrides are optional.
	_ = godotenv.Load()

	if configFile == "" {
		configFile = os.Getenv("FLEXPOWER_CONFIG")
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if port := os.Getenv("FLEXPOWER_PORT"); port != "" {
		cfg.Server.Port = port
	}

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	log := logging.New(level, cfg.Log.Format)
	return cfg, log, nil
}
