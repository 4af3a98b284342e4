package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cordex-org/cordex/dataset"
)

// inspectSummary is the JSON shape printed by `cordex inspect`.
type inspectSummary struct {
	Path         string `json:"path"`
	Papers       int    `json:"papers"`
	Dropped      int    `json:"dropped"`
	WithoutYear  int    `json:"without_year"`
	MinYear      int    `json:"min_year,omitempty"`
	MaxYear      int    `json:"max_year,omitempty"`
	DistinctJrnl int    `json:"distinct_journals"`
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print a JSON summary of the dataset and exit",
	Long: `inspect loads the metadata CSV and prints row counts, the year span,
and how many rows were dropped or kept without a parseable date. Useful
for checking a file before opening the explorer.`,
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

		withoutYear := 0
		journals := make(map[string]struct{})
		for _, p := range table.Papers {
			if !p.YearKnown {
				withoutYear++
			}
			if p.Journal != "" {
				journals[p.Journal] = struct{}{}
			}
		}

		out, err := json.MarshalIndent(inspectSummary{
			Path:         cfg.Data.Path,
			Papers:       table.Len(),
			Dropped:      table.Dropped,
			WithoutYear:  withoutYear,
			MinYear:      table.MinYear,
			MaxYear:      table.MaxYear,
			DistinctJrnl: len(journals),
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	},
}
