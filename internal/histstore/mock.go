package histstore

import (
	"context"
	"sort"
	"sync"

	"github.com/statscard/statscard/internal/contract"
	"github.com/statscard/statscard/schema"
)

// Mock is an in-memory history store for tests and wiring without a
// database. It mirrors the SQL store's semantics: one row per run date,
// listed ascending.
type Mock struct {
	mu    sync.Mutex
	byDay map[string]schema.Snapshot
}

var _ contract.HistoryStore = &Mock{} // Compile-time check

// NewMock creates an empty in-memory history store.
func NewMock() *Mock {
	return &Mock{byDay: make(map[string]schema.Snapshot)}
}

// Record upserts the snapshot keyed by run date.
func (m *Mock) Record(_ context.Context, snap schema.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byDay[snap.Date.UTC().Format(contract.DateFormat)] = snap
	return nil
}

// List returns all snapshots ordered ascending by run date.
func (m *Mock) List(_ context.Context) ([]schema.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	dates := make([]string, 0, len(m.byDay))
	for date := range m.byDay {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	snaps := make([]schema.Snapshot, 0, len(dates))
	for _, date := range dates {
		snaps = append(snaps, m.byDay[date])
	}
	return snaps, nil
}

// Close is a no-op.
func (m *Mock) Close() error { return nil }
