package core

import (
	"math"
	"testing"

	"github.com/statscard/statscard/schema"
	"github.com/stretchr/testify/assert"
)

func TestLanguageBreakdownExclusion(t *testing.T) {
	repos := []schema.RepoRecord{
		{FullName: "alice/app", Languages: map[string]int64{"Go": 800, "Rust": 200}},
	}
	cfg := testConfig()
	cfg.ExcludeLangs["rust"] = struct{}{}

	stats := LanguageBreakdown(repos, cfg)
	assert.Len(t, stats, 1)
	assert.Equal(t, "Go", stats[0].Name)
	assert.Equal(t, 1.0, stats[0].Share, "exclusion renormalizes, not just hides")
}

func TestLanguageBreakdownNormalization(t *testing.T) {
	repos := []schema.RepoRecord{
		{FullName: "alice/app", Languages: map[string]int64{"Go": 600, "Python": 300}},
		{FullName: "alice/web", Languages: map[string]int64{"TypeScript": 100, "Go": 200}},
	}
	stats := LanguageBreakdown(repos, testConfig())

	sum := 0.0
	for _, s := range stats {
		sum += s.Share
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
	assert.Equal(t, "Go", stats[0].Name)
	assert.Equal(t, int64(800), stats[0].Bytes)
}

func TestLanguageBreakdownTieOrdering(t *testing.T) {
	repos := []schema.RepoRecord{
		{FullName: "alice/app", Languages: map[string]int64{"Zig": 500, "Ada": 500, "C": 500}},
	}
	stats := LanguageBreakdown(repos, testConfig())

	names := []string{stats[0].Name, stats[1].Name, stats[2].Name}
	assert.Equal(t, []string{"Ada", "C", "Zig"}, names, "exact byte ties order by name")
}

func TestLanguageBreakdownEmpty(t *testing.T) {
	tests := []struct {
		name  string
		repos []schema.RepoRecord
	}{
		{name: "no repos", repos: nil},
		{name: "zero bytes", repos: []schema.RepoRecord{{FullName: "alice/empty", Languages: map[string]int64{}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, LanguageBreakdown(tt.repos, testConfig()))
		})
	}
}

func TestLanguageBreakdownExcludedRepoBytes(t *testing.T) {
	repos := []schema.RepoRecord{
		{FullName: "alice/app", Languages: map[string]int64{"Go": 100}},
		{FullName: "alice/huge", Languages: map[string]int64{"Go": 1 << 40}},
	}
	cfg := testConfig()
	cfg.ExcludeRepos["alice/huge"] = struct{}{}

	stats := LanguageBreakdown(repos, cfg)
	assert.Len(t, stats, 1)
	assert.Equal(t, int64(100), stats[0].Bytes)
	assert.False(t, math.IsNaN(stats[0].Share))
}
