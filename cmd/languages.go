package cmd

import (
	"github.com/spf13/cobra"
	"github.com/statscard/statscard/core"
	"github.com/statscard/statscard/internal/contract"
)

// languagesCmd computes and prints the language share distribution.
var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "Show the normalized language distribution across repositories.",
	Long: `Sum committed bytes per language across all repositories and print the
normalized share distribution, descending by bytes.

Shares always sum to 1 over the languages that remain after exclusion,
so filtering out a dominant language redistributes its share instead of
leaving a hole.

Examples:
  # Language breakdown for a user
  statscard languages --user alice

  # Exclude vendored languages from the distribution
  statscard languages --user alice --exclude-langs "HTML,CSS"

  # Export the distribution as CSV
  statscard languages --user alice --output csv --output-file langs.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		ctx, cancel := runCtx()
		defer cancel()
		if err := core.ExecuteLanguages(ctx, cfg, ingestor); err != nil {
			contract.LogFatal("Cannot compute language breakdown", err)
		}
	},
}
