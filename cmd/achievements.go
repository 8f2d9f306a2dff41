package cmd

import (
	"github.com/spf13/cobra"
	"github.com/statscard/statscard/core"
	"github.com/statscard/statscard/internal/contract"
)

// achievementsCmd evaluates and prints superlative records.
var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show superlative records: best year, top languages, peak week.",
	Long: `Evaluate per-category superlatives over the full activity history.

Reports:
- Best year: the calendar year with the most commits
- Top language per year: the language with the most committed bytes,
  derived from recorded history snapshots
- Peak week: the calendar week with the most commits

Ties break toward the earliest period so results stay stable run to run.

Examples:
  # Achievements for a user
  statscard achievements --user alice

  # Export achievements as JSON
  statscard achievements --user alice --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		ctx, cancel := runCtx()
		defer cancel()
		defer func() { _ = historyStore.Close() }()
		if err := core.ExecuteAchievements(ctx, cfg, ingestor, historyStore); err != nil {
			contract.LogFatal("Cannot evaluate achievements", err)
		}
	},
}
