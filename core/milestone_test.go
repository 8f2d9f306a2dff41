package core

import (
	"testing"
	"time"

	"github.com/statscard/statscard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSeries(start time.Time, values ...int) []schema.SeriesPoint {
	series := make([]schema.SeriesPoint, len(values))
	for i, v := range values {
		series[i] = schema.SeriesPoint{Date: start.AddDate(0, 0, i), Value: v}
	}
	return series
}

func TestDetectMilestonesCrossing(t *testing.T) {
	series := makeSeries(day0, 0, 50, 100, 150)

	milestones := DetectMilestones(series, schema.ContributionsMetric, []int{100})
	require.Len(t, milestones, 1)
	assert.Equal(t, day0.AddDate(0, 0, 2), milestones[0].Date, "crossing dates to the first point at or above the threshold")
	assert.Equal(t, schema.ContributionsMetric, milestones[0].Metric)
	assert.Equal(t, 100, milestones[0].Threshold)
}

func TestDetectMilestonesAlreadyMet(t *testing.T) {
	// History that starts above a threshold dates it to the series start.
	series := makeSeries(day0, 300, 320, 340)

	milestones := DetectMilestones(series, schema.ContributionsMetric, []int{100, 250, 500})
	require.Len(t, milestones, 2)
	assert.Equal(t, day0, milestones[0].Date)
	assert.Equal(t, 100, milestones[0].Threshold)
	assert.Equal(t, day0, milestones[1].Date)
	assert.Equal(t, 250, milestones[1].Threshold)
}

func TestDetectMilestonesNeverReached(t *testing.T) {
	series := makeSeries(day0, 10, 20, 30)
	assert.Empty(t, DetectMilestones(series, schema.StarsMetric, []int{50, 100}))
	assert.Empty(t, DetectMilestones(nil, schema.StarsMetric, []int{1}))
}

func TestDetectMilestonesIdempotent(t *testing.T) {
	series := makeSeries(day0, 0, 120, 260, 510, 1040)
	thresholds := schema.DefaultContribThresholds

	first := DetectMilestones(series, schema.ContributionsMetric, thresholds)
	second := DetectMilestones(series, schema.ContributionsMetric, thresholds)
	assert.Equal(t, first, second)
}

func TestDetectAllMilestonesInterleaved(t *testing.T) {
	contribs := makeSeries(day0, 40, 110, 270)
	stars := makeSeries(day0.AddDate(0, 0, 1), 2, 6)
	repos := makeSeries(day0, 3, 5, 12)

	cfg := testConfig()
	cfg.ContribThresholds = []int{100, 250}
	cfg.StarThresholds = []int{1, 5}
	cfg.RepoThresholds = []int{5, 10}

	milestones := DetectAllMilestones(contribs, stars, repos, cfg)
	require.Len(t, milestones, 6)

	// Dates must be non-decreasing across metrics.
	for i := 1; i < len(milestones); i++ {
		assert.False(t, milestones[i].Date.Before(milestones[i-1].Date))
	}
	assert.Equal(t, schema.ContributionsMetric, milestones[0].Metric)
	assert.Equal(t, 100, milestones[0].Threshold)
}

func TestDetectAllMilestonesTieOrdering(t *testing.T) {
	// All three metrics cross on the same day; order is metric name, then
	// threshold.
	contribs := makeSeries(day0, 500)
	stars := makeSeries(day0, 10)
	repos := makeSeries(day0, 10)

	cfg := testConfig()
	cfg.ContribThresholds = []int{100, 250}
	cfg.StarThresholds = []int{1}
	cfg.RepoThresholds = []int{5}

	milestones := DetectAllMilestones(contribs, stars, repos, cfg)
	require.Len(t, milestones, 4)
	assert.Equal(t, schema.ContributionsMetric, milestones[0].Metric)
	assert.Equal(t, 100, milestones[0].Threshold)
	assert.Equal(t, schema.ContributionsMetric, milestones[1].Metric)
	assert.Equal(t, 250, milestones[1].Threshold)
	assert.Equal(t, schema.ReposMetric, milestones[2].Metric)
	assert.Equal(t, schema.StarsMetric, milestones[3].Metric)
}

func TestStarSeriesRunningMax(t *testing.T) {
	snaps := []schema.Snapshot{
		{Date: day0, Stars: 10},
		{Date: day0.AddDate(0, 0, 1), Stars: 8},
		{Date: day0.AddDate(0, 0, 2), Stars: 15},
	}
	series := StarSeries(snaps)

	require.Len(t, series, 3)
	assert.Equal(t, 10, series[0].Value)
	assert.Equal(t, 10, series[1].Value, "dips are absorbed by the running maximum")
	assert.Equal(t, 15, series[2].Value)
	assert.NoError(t, ValidateCumulativeSeries(series))
}

func TestRepoSeries(t *testing.T) {
	snaps := []schema.Snapshot{
		{Date: day0, RepoCount: 4},
		{Date: day0.AddDate(0, 0, 7), RepoCount: 6},
	}
	series := RepoSeries(snaps)
	require.Len(t, series, 2)
	assert.Equal(t, 4, series[0].Value)
	assert.Equal(t, 6, series[1].Value)
}
