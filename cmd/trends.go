package cmd

import (
	"github.com/spf13/cobra"
	"github.com/statscard/statscard/core"
	"github.com/statscard/statscard/internal/contract"
)

// trendsCmd prints weekly activity buckets and linear projections.
var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show weekly activity trends with 6- and 12-month projections.",
	Long: `Resample the daily activity series into calendar-week buckets and fit a
least-squares line through the weekly totals.

Shows:
- Lines changed and commits per week, newest weeks last
- A proportional activity bar per week for quick scanning
- Projected cumulative lines changed 26 and 52 weeks out

The projection is a straight line through the weekly history; fewer than
two weeks of history produces no projection.

Examples:
  # Weekly trends for a user
  statscard trends --user alice

  # Full bucket list plus projections as JSON
  statscard trends --user alice --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		ctx, cancel := runCtx()
		defer cancel()
		if err := core.ExecuteTrends(ctx, cfg, ingestor); err != nil {
			contract.LogFatal("Cannot compute trends", err)
		}
	},
}
