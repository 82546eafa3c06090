// ABOUTME: Root command wiring for the qn CLI.
// ABOUTME: Loads configuration and opens the note store before subcommands run.

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/harper/qn/internal/config"
	"github.com/harper/qn/internal/fzf"
	"github.com/harper/qn/internal/store"
)

var (
	cfg       *config.Config
	noteStore *store.Store
	logger    zerolog.Logger
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "qn",
	Short: "Quick notes from your terminal",
	Long: `qn keeps small markdown notes as flat files, with trash and archive
areas, tag filtering, adaptive list tables, and fzf-assisted pickers.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).With().Timestamp().Logger()

		// fzf preview panes force color through the environment.
		if v := os.Getenv("CLICOLOR_FORCE"); v != "" && v != "0" {
			color.NoColor = false
		}

		c, err := config.Load()
		if err != nil {
			return err
		}
		cfg = c

		noteStore = store.New(cfg.Dir, cfg.Retention(), logger)
		if err := noteStore.EnsureRoot(); err != nil {
			return fmt.Errorf("failed to prepare notes directory: %w", err)
		}
		logger.Debug().Str("dir", cfg.Dir).Msg("store ready")
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// fzfEnabled reports whether interactive pickers may run.
func fzfEnabled() bool {
	return !cfg.FzfDisabled() && fzf.Available()
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
