package core

import (
	"sort"

	"github.com/statscard/statscard/internal/contract"
	"github.com/statscard/statscard/schema"
)

// DetectMilestones scans one cumulative series for threshold crossings.
// A threshold is crossed at the first date where the value is >= threshold;
// a threshold already met at the first point is dated to the series start,
// so early historical data is never silently dropped. Thresholds the series
// never reaches produce nothing.
func DetectMilestones(series []schema.SeriesPoint, metric schema.Metric, thresholds []int) []schema.Milestone {
	if len(series) == 0 {
		return nil
	}

	var milestones []schema.Milestone
	i := 0
	for _, threshold := range thresholds {
		for i < len(series) && series[i].Value < threshold {
			i++
		}
		if i == len(series) {
			break
		}
		milestones = append(milestones, schema.Milestone{
			Date:      series[i].Date,
			Metric:    metric,
			Threshold: threshold,
		})
	}
	return milestones
}

// DetectAllMilestones runs detection over the contribution, star and repo
// series and merges the results ascending by achievement date. Milestones
// for different metrics interleave by date; ties order by metric name, then
// threshold, so the output is a deterministic total order.
func DetectAllMilestones(contribs, stars, repos []schema.SeriesPoint, cfg *contract.Config) []schema.Milestone {
	merged := DetectMilestones(contribs, schema.ContributionsMetric, cfg.ContribThresholds)
	merged = append(merged, DetectMilestones(stars, schema.StarsMetric, cfg.StarThresholds)...)
	merged = append(merged, DetectMilestones(repos, schema.ReposMetric, cfg.RepoThresholds)...)

	sort.Slice(merged, func(i, j int) bool {
		if !merged[i].Date.Equal(merged[j].Date) {
			return merged[i].Date.Before(merged[j].Date)
		}
		if merged[i].Metric != merged[j].Metric {
			return merged[i].Metric < merged[j].Metric
		}
		return merged[i].Threshold < merged[j].Threshold
	})
	return merged
}

// StarSeries derives the cumulative star series from the snapshot history.
// A running maximum enforces the non-decreasing invariant, since the raw
// star count can dip when repositories are un-starred or excluded.
func StarSeries(snaps []schema.Snapshot) []schema.SeriesPoint {
	return snapshotSeries(snaps, func(s schema.Snapshot) int { return s.Stars })
}

// RepoSeries derives the cumulative repository-count series from the
// snapshot history, with the same running-maximum rule as StarSeries.
func RepoSeries(snaps []schema.Snapshot) []schema.SeriesPoint {
	return snapshotSeries(snaps, func(s schema.Snapshot) int { return s.RepoCount })
}

func snapshotSeries(snaps []schema.Snapshot, value func(schema.Snapshot) int) []schema.SeriesPoint {
	series := make([]schema.SeriesPoint, 0, len(snaps))
	peak := 0
	for _, s := range snaps {
		if v := value(s); v > peak {
			peak = v
		}
		series = append(series, schema.SeriesPoint{Date: s.Date, Value: peak})
	}
	return series
}
