package core

import (
	"testing"
	"time"

	"github.com/statscard/statscard/internal/contract"
	"github.com/statscard/statscard/schema"
	"github.com/stretchr/testify/assert"
)

// testConfig returns a Config with empty exclusion sets and default ladders.
func testConfig() *contract.Config {
	return &contract.Config{
		ExcludeRepos:      map[string]struct{}{},
		ExcludeLangs:      map[string]struct{}{},
		ContribThresholds: schema.DefaultContribThresholds,
		StarThresholds:    schema.DefaultStarThresholds,
		RepoThresholds:    schema.DefaultRepoThresholds,
	}
}

// makeDays builds a contiguous day series starting at the given date.
func makeDays(start time.Time, specs ...[3]int) []schema.DayRecord {
	days := make([]schema.DayRecord, len(specs))
	for i, s := range specs {
		days[i] = schema.DayRecord{
			Date:         start.AddDate(0, 0, i),
			LinesAdded:   s[0],
			LinesDeleted: s[1],
			Commits:      s[2],
		}
	}
	return days
}

var day0 = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC) // a Monday

func TestAggregateLinesChanged(t *testing.T) {
	// Ten consecutive days of 5 added / 0 deleted lines.
	specs := make([][3]int, 10)
	for i := range specs {
		specs[i] = [3]int{5, 0, 1}
	}
	days := makeDays(day0, specs...)

	totals := Aggregate(nil, days, schema.Counters{}, testConfig())
	assert.Equal(t, 50, totals.LinesChanged)
	assert.Equal(t, 50, totals.LinesAdded)
	assert.Equal(t, 0, totals.LinesDeleted)
	assert.Equal(t, 10, totals.Contributions)
}

func TestAggregateRepoExclusion(t *testing.T) {
	repos := []schema.RepoRecord{
		{FullName: "alice/kept", Stars: 10, Forks: 2},
		{FullName: "alice/skipped", Stars: 100, Forks: 50},
	}
	cfg := testConfig()
	cfg.ExcludeRepos["alice/skipped"] = struct{}{}

	totals := Aggregate(repos, nil, schema.Counters{}, cfg)
	assert.Equal(t, 10, totals.Stars)
	assert.Equal(t, 2, totals.Forks)
	assert.Equal(t, 1, totals.RepoCount)
}

func TestAggregateForkExclusion(t *testing.T) {
	repos := []schema.RepoRecord{
		{FullName: "alice/own", Stars: 7, Forks: 1},
		{FullName: "alice/forked", Stars: 500, Forks: 30, IsFork: true},
	}
	cfg := testConfig()
	cfg.ExcludeForks = true

	totals := Aggregate(repos, nil, schema.Counters{}, cfg)
	assert.Equal(t, 7, totals.Stars, "forked repo stars must not count")
	assert.Equal(t, 1, totals.Forks)
	assert.Equal(t, 2, totals.RepoCount, "fork still counts toward repo count")
}

func TestAggregateEmptyInputs(t *testing.T) {
	totals := Aggregate(nil, nil, schema.Counters{Views: 42, RepoCount: 3}, testConfig())
	assert.Equal(t, 0, totals.Contributions)
	assert.Equal(t, 0, totals.LinesChanged)
	assert.Equal(t, 42, totals.Views)
	assert.Equal(t, 3, totals.RepoCount, "falls back to ingest counter without repo records")
}

func TestAggregateIdempotent(t *testing.T) {
	repos := []schema.RepoRecord{{FullName: "alice/app", Stars: 4, Forks: 1}}
	days := makeDays(day0, [3]int{10, 3, 2}, [3]int{0, 0, 0}, [3]int{7, 1, 5})
	cfg := testConfig()

	first := Aggregate(repos, days, schema.Counters{Views: 9}, cfg)
	second := Aggregate(repos, days, schema.Counters{Views: 9}, cfg)
	assert.Equal(t, first, second)
}

func TestCumulativeContributions(t *testing.T) {
	days := makeDays(day0, [3]int{0, 0, 2}, [3]int{0, 0, 0}, [3]int{0, 0, 3})
	series := CumulativeContributions(days)

	assert.Len(t, series, 3)
	assert.Equal(t, 2, series[0].Value)
	assert.Equal(t, 2, series[1].Value)
	assert.Equal(t, 5, series[2].Value)
	assert.NoError(t, ValidateCumulativeSeries(series))
}
