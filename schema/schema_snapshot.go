package schema

import "time"

// Snapshot is one persisted record of a run's aggregate state. The history
// of snapshots supplies the cumulative star and repo series for milestone
// detection and the per-year language totals for achievements.
type Snapshot struct {
	Date          time.Time        `json:"date"` // UTC midnight of the run day
	Stars         int              `json:"stars"`
	Forks         int              `json:"forks"`
	Contributions int              `json:"contributions"`
	Views         int              `json:"views"`
	RepoCount     int              `json:"repo_count"`
	LinesAdded    int              `json:"lines_added"`
	LinesDeleted  int              `json:"lines_deleted"`
	LanguageBytes map[string]int64 `json:"language_bytes"`
}

// SnapshotFromTotals builds a snapshot for the given run date.
func SnapshotFromTotals(date time.Time, totals AggregateTotals, langs []LanguageStat) Snapshot {
	bytes := make(map[string]int64, len(langs))
	for _, l := range langs {
		bytes[l.Name] = l.Bytes
	}
	return Snapshot{
		Date:          time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Stars:         totals.Stars,
		Forks:         totals.Forks,
		Contributions: totals.Contributions,
		Views:         totals.Views,
		RepoCount:     totals.RepoCount,
		LinesAdded:    totals.LinesAdded,
		LinesDeleted:  totals.LinesDeleted,
		LanguageBytes: bytes,
	}
}
