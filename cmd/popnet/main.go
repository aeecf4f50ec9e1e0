package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/popnet/internal/config"
	"github.com/katalvlaran/popnet/internal/logging"
	"github.com/katalvlaran/popnet/internal/synth"
	"github.com/katalvlaran/popnet/population"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "popnet",
		Short: "Synthetic populations and contact networks",
		Long: `popnet builds agent populations with per-agent attribute arrays and
layered contact networks, and inspects them: contact lookups, multi-hop
tracing, manifests and Arrow exports.

Every command synthesizes its population from the configuration, so the
same config and seed always describe the same population.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: error, warn, info, debug, trace (overrides config)")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(
		newVersionCmd(),
		newSynthCmd(),
		newContactsCmd(),
		newTraceCmd(),
		newManifestCmd(),
		newExportCmd(),
		newComponentsCmd(),
	)

	return rootCmd
}

// loadConfig resolves the config file, environment and --log-level flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadPopulation synthesizes the configured population, logging to stderr.
func loadPopulation(cmd *cobra.Command) (*population.Population, *slog.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
	p, err := synth.Population(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return p, logger, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}
