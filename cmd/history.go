package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/statscard/statscard/core"
	"github.com/statscard/statscard/internal/contract"
	"github.com/statscard/statscard/internal/histstore"
	"github.com/statscard/statscard/internal/parquet"
	"github.com/statscard/statscard/schema"
)

// historyMigrateSetup loads minimal configuration needed for migrate
// operations. This is a specialized setup that does NOT open the store or
// create tables, allowing migrations to run on a fresh database.
func historyMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(viper.GetString("history-backend"))
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return fmt.Errorf("invalid history backend %q", backend)
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = viper.GetString("history-db-connect")

	return nil
}

// historyMigrateSetupWrapper wraps historyMigrateSetup to provide PreRunE for
// the migrate command.
func historyMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return historyMigrateSetup()
}

// historyCmd focused on snapshot history management.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage daily aggregate snapshots (enables star and repo milestones)",
	Long: `Manage the snapshot history that gives statscard a memory between runs.

Each 'history record' stores one aggregate snapshot per calendar day:
stars, forks, contributions, views, repository count, line totals and
per-language byte counts. Running it again on the same day overwrites
that day's snapshot instead of appending.

Recorded history unlocks:
- Star and repository milestone detection
- Top-language-per-year achievements
- Parquet exports for BI tools

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  record  - Fetch current statistics and store today's snapshot
  list    - Print the stored snapshot history
  export  - Export snapshots to Parquet for analytics
  migrate - Run database schema migrations

Examples:
  # Record today's snapshot (run daily via cron or CI)
  statscard history record --user alice

  # Inspect the stored history
  statscard history list --user alice`,
}

// historyRecordCmd records today's snapshot.
var historyRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Fetch current statistics and store today's snapshot",
	Long: `Compute the aggregate totals and language byte counts for the current
run date and persist them as one snapshot row.

Same-day reruns overwrite the existing snapshot, so the store never
holds more than one row per calendar day.

Examples:
  # Record into the default SQLite store
  statscard history record --user alice

  # Record into PostgreSQL (set connection string via env variable)
  STATSCARD_HISTORY_BACKEND=postgresql STATSCARD_HISTORY_DB_CONNECT="..." statscard history record --user alice`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		ctx, cancel := runCtx()
		defer cancel()
		defer func() { _ = historyStore.Close() }()
		if err := core.ExecuteHistoryRecord(ctx, cfg, ingestor, historyStore); err != nil {
			contract.LogFatal("Cannot record snapshot", err)
		}
		fmt.Println("Snapshot recorded.")
	},
}

// historyListCmd prints the stored snapshot history.
var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the stored snapshot history, ascending by date",
	Long: `Print every stored snapshot ordered ascending by run date.

Examples:
  # Inspect the stored history
  statscard history list --user alice

  # Export the history as CSV
  statscard history list --user alice --output csv --output-file history.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		ctx, cancel := runCtx()
		defer cancel()
		defer func() { _ = historyStore.Close() }()
		if err := core.ExecuteHistoryList(ctx, cfg, historyStore); err != nil {
			contract.LogFatal("Cannot list snapshots", err)
		}
	},
}

// historyExportCmd exports snapshot history to a Parquet file.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export snapshot history to Parquet for BI tools and analytics",
	Long: `Export all stored snapshots to Parquet format for use with analytics
tools such as DuckDB, pandas or Apache Spark.

Requires: --output-file parameter

Examples:
  # Export all snapshots
  statscard history export --user alice --output-file snapshots.parquet

  # Query the export with DuckDB
  duckdb -c "SELECT * FROM read_parquet('snapshots.parquet') ORDER BY snapshot_date"`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if cfg.OutputFile == "" {
			contract.LogFatal("Cannot export snapshots", fmt.Errorf("--output-file is required"))
		}
		ctx, cancel := runCtx()
		defer cancel()
		defer func() { _ = historyStore.Close() }()
		snaps, err := historyStore.List(ctx)
		if err != nil {
			contract.LogFatal("Cannot list snapshots", err)
		}
		if err := parquet.WriteSnapshotsParquet(snaps, cfg.OutputFile); err != nil {
			contract.LogFatal("Cannot export snapshots", err)
		}
		fmt.Printf("Exported %d snapshots to %s\n", len(snaps), cfg.OutputFile)
	},
}

// historyMigrateCmd runs database migrations for the history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the snapshot history store.

By default, migrates to the latest version. Use --target-version for
specific versions.

Examples:
  # Migrate to latest version (default)
  statscard history migrate

  # Migrate to specific version
  statscard history migrate --target-version 1

  # Rollback to initial state
  statscard history migrate --target-version 0`,
	PreRunE: historyMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := histstore.Migrate(cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
