package core

import (
	"github.com/statscard/statscard/internal/contract"
	"github.com/statscard/statscard/schema"
)

// Aggregate reduces the repository records, the day series and the ingest
// counters into one AggregateTotals value. It is a pure reduction: excluded
// repositories are skipped entirely, forked repositories are skipped from
// star/fork tallies when the fork exclusion flag is set, and an empty day
// series yields zero contribution-derived totals rather than an error.
func Aggregate(repos []schema.RepoRecord, days []schema.DayRecord, counters schema.Counters, cfg *contract.Config) schema.AggregateTotals {
	totals := schema.AggregateTotals{Views: counters.Views}

	for _, repo := range repos {
		if cfg.RepoExcluded(repo.FullName) {
			continue
		}
		// Fork exclusion removes the repo from star/fork tallies but not
		// from the repository count.
		totals.RepoCount++
		if cfg.ExcludeForks && repo.IsFork {
			continue
		}
		totals.Stars += repo.Stars
		totals.Forks += repo.Forks
	}
	if len(repos) == 0 {
		// No repo records materialized this run; trust the ingest counter.
		totals.RepoCount = counters.RepoCount
	}

	for _, d := range days {
		totals.LinesAdded += d.LinesAdded
		totals.LinesDeleted += d.LinesDeleted
		totals.Contributions += d.Commits
	}
	totals.LinesChanged = totals.LinesAdded + totals.LinesDeleted

	return totals
}

// CumulativeContributions forms the running-sum contribution series used by
// milestone detection. The result has one point per day and is
// non-decreasing by construction.
func CumulativeContributions(days []schema.DayRecord) []schema.SeriesPoint {
	series := make([]schema.SeriesPoint, 0, len(days))
	sum := 0
	for _, d := range days {
		sum += d.Commits
		series = append(series, schema.SeriesPoint{Date: d.Date, Value: sum})
	}
	return series
}
