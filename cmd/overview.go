package cmd

import (
	"github.com/spf13/cobra"
	"github.com/statscard/statscard/core"
	"github.com/statscard/statscard/internal/contract"
)

// overviewCmd computes and prints the aggregate totals.
var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show aggregate lifetime statistics for a user.",
	Long: `Fetch the user's entire GitHub footprint and print aggregate totals.

Computes in one pass:
- Stars and forks summed across all repositories with contributions
- All-time contribution count from the contribution calendar
- Lines added, deleted and changed across the full commit history
- Project page views over the last 14 days
- Total number of repositories contributed to

Repositories and languages can be excluded without touching the
contribution series, which always reflects the full calendar.

Examples:
  # Aggregate totals for a user
  statscard overview --user alice

  # Ignore forks and a noisy mirror repository
  statscard overview --user alice --exclude-forks --exclude-repos alice/mirror

  # Export totals as JSON for downstream tooling
  statscard overview --user alice --output json --output-file totals.json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		ctx, cancel := runCtx()
		defer cancel()
		if err := core.ExecuteOverview(ctx, cfg, ingestor); err != nil {
			contract.LogFatal("Cannot compute overview", err)
		}
	},
}
