package histstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/statscard/statscard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(schema.SQLiteBackend, filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleSnapshot(day time.Time) schema.Snapshot {
	return schema.Snapshot{
		Date:          day,
		Stars:         10,
		Forks:         2,
		Contributions: 500,
		Views:         30,
		RepoCount:     4,
		LinesAdded:    1000,
		LinesDeleted:  200,
		LanguageBytes: map[string]int64{"Go": 800, "Python": 200},
	}
}

func TestRecordAndList(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.Record(ctx, sampleSnapshot(day)))
	require.NoError(t, store.Record(ctx, sampleSnapshot(day.AddDate(0, 0, 1))))

	snaps, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, day, snaps[0].Date)
	assert.Equal(t, 500, snaps[0].Contributions)
	assert.Equal(t, int64(800), snaps[0].LanguageBytes["Go"])
}

func TestRecordUpsertSameDay(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	first := sampleSnapshot(day)
	require.NoError(t, store.Record(ctx, first))

	second := sampleSnapshot(day)
	second.Stars = 99
	second.LanguageBytes = map[string]int64{"Rust": 1}
	require.NoError(t, store.Record(ctx, second))

	snaps, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, snaps, 1, "same-day runs overwrite, never append")
	assert.Equal(t, 99, snaps[0].Stars)
	assert.Equal(t, int64(1), snaps[0].LanguageBytes["Rust"])
}

func TestListOrdersByDate(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()
	base := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	// Insert out of order.
	require.NoError(t, store.Record(ctx, sampleSnapshot(base.AddDate(0, 0, 5))))
	require.NoError(t, store.Record(ctx, sampleSnapshot(base)))
	require.NoError(t, store.Record(ctx, sampleSnapshot(base.AddDate(0, 0, 2))))

	snaps, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, snaps, 3)
	for i := 1; i < len(snaps); i++ {
		assert.True(t, snaps[i].Date.After(snaps[i-1].Date))
	}
}

func TestNoneBackend(t *testing.T) {
	store, err := New(schema.NoneBackend, "")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	require.NoError(t, store.Record(ctx, sampleSnapshot(time.Now().UTC())))
	snaps, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, snaps)
}

func TestUnsupportedBackend(t *testing.T) {
	_, err := New(schema.DatabaseBackend("bogus"), "")
	assert.Error(t, err)
}

func TestMockStore(t *testing.T) {
	mock := NewMock()
	ctx := context.Background()
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	require.NoError(t, mock.Record(ctx, sampleSnapshot(day)))
	require.NoError(t, mock.Record(ctx, sampleSnapshot(day))) // Upsert
	require.NoError(t, mock.Record(ctx, sampleSnapshot(day.AddDate(0, 0, 1))))

	snaps, err := mock.List(ctx)
	require.NoError(t, err)
	assert.Len(t, snaps, 2)
	assert.True(t, snaps[1].Date.After(snaps[0].Date))
}

func TestMigrateSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate.db")
	require.NoError(t, Migrate(schema.SQLiteBackend, dbPath, -1))

	// The migrated schema must be usable by the store.
	store, err := New(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	require.NoError(t, store.Record(context.Background(), sampleSnapshot(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC))))
}
