package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/statscard/statscard/core"
	"github.com/statscard/statscard/internal/contract"
)

// renderCmd writes the SVG stat cards and the HTML report.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render SVG stat cards and an HTML trends report.",
	Long: `Compute the full statistics set and render it as embeddable artifacts.

Writes into the render directory:
- overview.svg      - aggregate totals card
- languages.svg     - language share bars
- trends.svg        - weekly activity with projected lines
- milestones.svg    - recent threshold crossings
- achievements.svg  - superlative records
- report.html       - interactive trends and language charts

The SVG cards are self-contained and safe to embed in a GitHub profile
README. The HTML report uses Apache ECharts for interactive exploration.

Examples:
  # Render all artifacts into ./generated
  statscard render --user alice

  # Render into a custom directory
  statscard render --user alice --render-dir ./public`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		ctx, cancel := runCtx()
		defer cancel()
		defer func() { _ = historyStore.Close() }()
		if err := core.ExecuteRender(ctx, cfg, ingestor, historyStore); err != nil {
			contract.LogFatal("Cannot render artifacts", err)
		}
		fmt.Printf("Rendered cards and report into %s\n", cfg.RenderDir)
	},
}
