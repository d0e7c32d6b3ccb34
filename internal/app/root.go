// Package app contains the Cobra command tree for ridersearch.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blackwell-systems/ridersearch/internal/config"
	"github.com/blackwell-systems/ridersearch/internal/logging"
	"github.com/blackwell-systems/ridersearch/internal/output"
	"github.com/blackwell-systems/ridersearch/internal/rider"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagVerbose bool
	flagConfig  string
	flagHome    string
)

// Populated by the root PersistentPreRunE for every subcommand.
var (
	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "ridersearch",
	Short: "Recent JetBrains Rider solutions for desktop search",
	Long: `ridersearch finds the session history of the most recently used
JetBrains Rider installation and prints its recent solutions as a single
line of JSON, keyed by solution ID, for the desktop search provider.

Run 'ridersearch' with no arguments to print the JSON.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runRoot,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/ridersearch/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagHome, "home", "", "Directory searched for Rider installations (default: $HOME)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log diagnostics to stderr")
}

// setup initializes the logger and configuration shared by all commands.
func setup(cmd *cobra.Command, args []string) error {
	l, err := logging.New(flagVerbose)
	if err != nil {
		return err
	}
	logger = l

	c, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagHome != "" {
		if err := c.SetHome(flagHome); err != nil {
			return err
		}
	}
	cfg = c

	output.AutoColor(cfg.Output.Color && !flagNoColor)
	logger.Debug("configuration loaded",
		zap.String("version", appVersion),
		zap.String("home", cfg.Home),
		zap.String("pattern", cfg.Pattern),
		zap.Int("workers", cfg.Workers),
	)
	return nil
}

// newFinder returns a Finder configured from the loaded configuration.
func newFinder() *rider.Finder {
	return &rider.Finder{
		Home:        cfg.Home,
		Pattern:     cfg.Pattern,
		SessionFile: cfg.SessionFile,
		IDPrefix:    cfg.IDPrefix,
		Workers:     cfg.Workers,
		Logger:      logger,
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	recent, err := newFinder().Find(cmd.Context())
	if err != nil {
		return err
	}
	return output.WriteJSON(cmd.OutOrStdout(), recent)
}
