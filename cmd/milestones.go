package cmd

import (
	"github.com/spf13/cobra"
	"github.com/statscard/statscard/core"
	"github.com/statscard/statscard/internal/contract"
)

// milestonesCmd detects and prints threshold crossings.
var milestonesCmd = &cobra.Command{
	Use:   "milestones",
	Short: "Show milestone threshold crossings, ascending by date.",
	Long: `Walk the cumulative contribution, star and repository series and report
the first date each configured threshold was reached.

Thresholds are strictly ascending ladders and can be overridden per
metric. Star and repository milestones need recorded history (see
'statscard history record'); without snapshots only contribution
milestones are reported.

Examples:
  # Milestones with the default ladders
  statscard milestones --user alice

  # Custom contribution ladder
  statscard milestones --user alice --contrib-thresholds 500,1000,5000

  # Export crossings as CSV
  statscard milestones --user alice --output csv --output-file milestones.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		ctx, cancel := runCtx()
		defer cancel()
		defer func() { _ = historyStore.Close() }()
		if err := core.ExecuteMilestones(ctx, cfg, ingestor, historyStore); err != nil {
			contract.LogFatal("Cannot detect milestones", err)
		}
	},
}
