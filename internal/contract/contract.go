// Package contract provides interfaces and shared utilities for the statscard CLI's internal architecture.
package contract

import (
	"context"

	"github.com/statscard/statscard/schema"
)

// Ingestor supplies the fully-materialized input record sets for one run.
// All network I/O, pagination, retry and rate-limit policy lives behind this
// interface; the core engine only sees immutable snapshots.
type Ingestor interface {
	// Repos returns the per-repository metadata for the configured user.
	Repos(ctx context.Context) ([]schema.RepoRecord, error)

	// DailyActivity returns a contiguous per-day activity series from
	// account creation to the run date, with gaps backfilled as
	// zero-activity days.
	DailyActivity(ctx context.Context) ([]schema.DayRecord, error)

	// Views returns the total project page view count across repositories.
	Views(ctx context.Context, repos []schema.RepoRecord) (int, error)
}

// HistoryStore persists one snapshot per run and serves the snapshot
// history back, ordered ascending by date. This allows the history store
// to be mocked for testing.
type HistoryStore interface {
	Record(ctx context.Context, snap schema.Snapshot) error
	List(ctx context.Context) ([]schema.Snapshot, error)
	Close() error
}
