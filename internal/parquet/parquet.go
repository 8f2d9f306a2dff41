// Package parquet exports snapshot history to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/statscard/statscard/schema"
)

// SnapshotRow is one snapshot flattened for columnar storage. This struct
// maps to the statscard_snapshots database table, with the per-language
// byte map carried as JSON text.
type SnapshotRow struct {
	// SnapshotDate is the UTC run day (stored as TIMESTAMP with nanosecond precision)
	SnapshotDate time.Time `parquet:"snapshot_date,snappy"`

	// Stars is the summed stargazer count across non-excluded repositories
	Stars int32 `parquet:"stars,snappy"`

	// Forks is the summed fork count across non-excluded repositories
	Forks int32 `parquet:"forks,snappy"`

	// Contributions is the all-time contribution total at the run date
	Contributions int32 `parquet:"contributions,snappy"`

	// Views is the 14-day project page view count at the run date
	Views int32 `parquet:"views,snappy"`

	// RepoCount is the number of repositories with contributions
	RepoCount int32 `parquet:"repo_count,snappy"`

	// LinesAdded is the all-time added-line total at the run date
	LinesAdded int64 `parquet:"lines_added,snappy"`

	// LinesDeleted is the all-time deleted-line total at the run date
	LinesDeleted int64 `parquet:"lines_deleted,snappy"`

	// LanguageBytes is the JSON-encoded language name to byte count map (nullable)
	LanguageBytes *string `parquet:"language_bytes,optional,snappy"`
}

// RowFromSnapshot flattens one snapshot into its Parquet row form.
func RowFromSnapshot(snap schema.Snapshot) (SnapshotRow, error) {
	row := SnapshotRow{
		SnapshotDate:  snap.Date,
		Stars:         int32(snap.Stars),
		Forks:         int32(snap.Forks),
		Contributions: int32(snap.Contributions),
		Views:         int32(snap.Views),
		RepoCount:     int32(snap.RepoCount),
		LinesAdded:    int64(snap.LinesAdded),
		LinesDeleted:  int64(snap.LinesDeleted),
	}
	if len(snap.LanguageBytes) > 0 {
		encoded, err := json.Marshal(snap.LanguageBytes)
		if err != nil {
			return SnapshotRow{}, fmt.Errorf("failed to marshal language bytes: %w", err)
		}
		text := string(encoded)
		row.LanguageBytes = &text
	}
	return row, nil
}

// WriteSnapshotsParquet writes the snapshot history to a Parquet file.
func WriteSnapshotsParquet(snaps []schema.Snapshot, outputPath string) error {
	rows := make([]SnapshotRow, 0, len(snaps))
	for _, snap := range snaps {
		row, err := RowFromSnapshot(snap)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the SnapshotRow struct tags.
	writer := parquet.NewGenericWriter[SnapshotRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}
