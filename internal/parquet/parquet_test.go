package parquet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	pq "github.com/parquet-go/parquet-go"
	"github.com/statscard/statscard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowFromSnapshot(t *testing.T) {
	snap := schema.Snapshot{
		Date:          time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		Stars:         10,
		Contributions: 500,
		LanguageBytes: map[string]int64{"Go": 800},
	}

	row, err := RowFromSnapshot(snap)
	require.NoError(t, err)
	assert.Equal(t, int32(10), row.Stars)
	assert.Equal(t, int32(500), row.Contributions)
	require.NotNil(t, row.LanguageBytes)
	assert.JSONEq(t, `{"Go": 800}`, *row.LanguageBytes)
}

func TestRowFromSnapshotNoLanguages(t *testing.T) {
	row, err := RowFromSnapshot(schema.Snapshot{Date: time.Now().UTC()})
	require.NoError(t, err)
	assert.Nil(t, row.LanguageBytes)
}

func TestWriteSnapshotsParquetRoundTrip(t *testing.T) {
	snaps := []schema.Snapshot{
		{
			Date:          time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
			Stars:         10,
			Forks:         2,
			Contributions: 500,
			Views:         30,
			RepoCount:     4,
			LinesAdded:    1000,
			LinesDeleted:  200,
			LanguageBytes: map[string]int64{"Go": 800},
		},
		{
			Date:  time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			Stars: 11,
		},
	}

	path := filepath.Join(t.TempDir(), "snapshots.parquet")
	require.NoError(t, WriteSnapshotsParquet(snaps, path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	reader := pq.NewGenericReader[SnapshotRow](file)
	defer func() { _ = reader.Close() }()

	rows := make([]SnapshotRow, 2)
	n, err := reader.Read(rows)
	if err != nil {
		// io.EOF alongside a full read is fine.
		require.Equal(t, 2, n)
	}
	require.Equal(t, 2, n)
	assert.Equal(t, int32(10), rows[0].Stars)
	assert.Equal(t, int64(1000), rows[0].LinesAdded)
	assert.Nil(t, rows[1].LanguageBytes)
}

func TestWriteSnapshotsParquetEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.parquet")
	require.NoError(t, WriteSnapshotsParquet(nil, path))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}
