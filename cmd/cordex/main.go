// Package main provides the cordex CLI entry point.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cordex-org/cordex/config"
	"github.com/cordex-org/cordex/dataset"
	"github.com/cordex-org/cordex/engine"
	"github.com/cordex-org/cordex/logging"
	"github.com/cordex-org/cordex/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	flagData     string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cordex",
	Short: "Interactive explorer for CORD-19 paper metadata",
	Long: `cordex loads the CORD-19 metadata CSV and explores it interactively:
filter papers by publication year and browse publication trends, top
journals, frequent title words, source collections, and a sample table.

The dataset is loaded once per process; restart to pick up file changes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		table, err := dataset.LoadCached(cfg.Data.Path, dataset.WithLogger(logger))
		if err != nil {
			return err
		}

		model := ui.NewModel(table,
			engine.YearRange{Lo: cfg.UI.YearLo, Hi: cfg.UI.YearHi},
			ui.Options{
				TopJournals: cfg.Aggregate.TopJournals,
				TopWords:    cfg.Aggregate.TopWords,
				SampleRows:  cfg.Aggregate.SampleRows,
				Logger:      logger,
			})

		_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.PersistentFlags().StringVar(&flagData, "data", "", "Path to the metadata CSV (overrides data.path)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write JSON logs to this file (overrides log.file)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides log.level)")
	rootCmd.AddCommand(inspectCmd)
}

// setup loads configuration, applies flag overrides, and builds the
// logger shared by every command.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	if flagData != "" {
		cfg.Data.Path = flagData
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	logger, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
