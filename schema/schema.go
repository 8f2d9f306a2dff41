// Package schema has configs, models and shared constants for all parts of statscard.
package schema

import "time"

// RepoRecord holds the per-repository metadata fetched by the ingestion layer.
// Records are immutable once fetched; the aggregator owns them for one run.
type RepoRecord struct {
	FullName  string           // "owner/name" identity
	Stars     int              // Stargazer count
	Forks     int              // Fork count
	IsFork    bool             // True if the repository is itself a fork
	Languages map[string]int64 // Language name -> committed byte count
}

// DayRecord is one calendar day of activity. The ingestion layer guarantees a
// contiguous sequence from account creation to the run date, with zero-filled
// days where no activity happened.
type DayRecord struct {
	Date         time.Time // UTC midnight
	LinesAdded   int
	LinesDeleted int
	Commits      int
}

// Counters holds the aggregate counters supplied by the ingestion layer
// alongside the record sets.
type Counters struct {
	Views     int // Project page views (last 14 days per GitHub API)
	RepoCount int // Total repositories with contributions
}

// AggregateTotals is the scalar snapshot produced by the stats aggregator.
// It is recomputed fresh every run and never mutated incrementally.
type AggregateTotals struct {
	Stars         int `json:"stars"`
	Forks         int `json:"forks"`
	LinesAdded    int `json:"lines_added"`
	LinesDeleted  int `json:"lines_deleted"`
	LinesChanged  int `json:"lines_changed"`
	Contributions int `json:"contributions"`
	Views         int `json:"views"`
	RepoCount     int `json:"repo_count"`
}

// LanguageStat is one language's slice of the normalized share distribution.
// A breakdown is ordered by bytes descending, then name ascending for exact ties.
type LanguageStat struct {
	Name  string  `json:"name"`
	Bytes int64   `json:"bytes"`
	Share float64 `json:"share"` // Fraction of all included bytes; shares sum to 1.0
}
