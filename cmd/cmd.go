// Package cmd defines the command-line interface for statscard.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/statscard/statscard/internal/contract"
	"github.com/statscard/statscard/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(overviewCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(trendsCmd)
	rootCmd.AddCommand(milestonesCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyRecordCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("user", "u", "", "GitHub username to compute statistics for")
	rootCmd.PersistentFlags().String("token", "", "GitHub API token (prefer STATSCARD_TOKEN over this flag)")
	rootCmd.PersistentFlags().String("exclude-repos", "", "Comma-separated list of owner/name identities to ignore")
	rootCmd.PersistentFlags().String("exclude-langs", "", "Comma-separated list of language names to ignore")
	rootCmd.PersistentFlags().Bool("exclude-forks", false, "Exclude forked repositories from repository aggregates")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("render-dir", contract.DefaultRenderDir, "Directory for rendered SVG cards and the HTML report")
	rootCmd.PersistentFlags().String("history-backend", string(schema.SQLiteBackend), "History backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("timeout", contract.DefaultTimeout.String(), "Overall API fetch timeout (e.g., 2m, 30s)")
	rootCmd.PersistentFlags().IntSlice("contrib-thresholds", schema.DefaultContribThresholds, "Ascending contribution milestone thresholds")
	rootCmd.PersistentFlags().IntSlice("star-thresholds", schema.DefaultStarThresholds, "Ascending star milestone thresholds")
	rootCmd.PersistentFlags().IntSlice("repo-thresholds", schema.DefaultRepoThresholds, "Ascending repository milestone thresholds")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emoji prefixes in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}
