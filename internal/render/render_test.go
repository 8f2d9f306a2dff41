package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/statscard/statscard/internal/contract"
	"github.com/statscard/statscard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *schema.RunResult {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	return &schema.RunResult{
		Totals: schema.AggregateTotals{
			Stars: 42, Forks: 7, Contributions: 1234,
			LinesChanged: 9000, Views: 100, RepoCount: 12,
		},
		Languages: []schema.LanguageStat{
			{Name: "Go", Bytes: 8000, Share: 0.8},
			{Name: "Python", Bytes: 2000, Share: 0.2},
		},
		Buckets: []schema.ActivityBucket{
			{Start: day, LinesChanged: 100, Commits: 5},
			{Start: day.AddDate(0, 0, 7), LinesChanged: 200, Commits: 8},
		},
		ForecastSix: []schema.ForecastPoint{
			{Date: day.AddDate(0, 0, 14), Value: 400, Horizon: schema.SixMonthHorizon},
		},
		ForecastTwelve: []schema.ForecastPoint{
			{Date: day.AddDate(0, 0, 14), Value: 400, Horizon: schema.TwelveMonthHorizon},
			{Date: day.AddDate(0, 0, 21), Value: 500, Horizon: schema.TwelveMonthHorizon},
		},
		Milestones: []schema.Milestone{
			{Date: day, Metric: schema.ContributionsMetric, Threshold: 1000},
		},
		Achievements: []schema.Achievement{
			{Category: schema.BestYearAchievement, Value: 900, Year: 2023},
			{Category: schema.TopLanguageAchievement, Value: 8000, Language: "Go", Year: 2023},
			{Category: schema.PeakWeekAchievement, Value: 8, Week: day.AddDate(0, 0, 7)},
		},
	}
}

func renderConfig(t *testing.T) *contract.Config {
	t.Helper()
	return &contract.Config{Username: "alice", RenderDir: t.TempDir()}
}

func TestWriteCards(t *testing.T) {
	cfg := renderConfig(t)
	require.NoError(t, WriteCards(sampleResult(), cfg))

	for _, name := range []string{
		OverviewCardFile, LanguagesCardFile, TrendsCardFile,
		MilestonesCardFile, AchievementsCardFile,
	} {
		data, err := os.ReadFile(filepath.Join(cfg.RenderDir, name))
		require.NoError(t, err, name)
		content := string(data)
		assert.True(t, strings.HasPrefix(content, "<svg"), "%s must be a standalone SVG", name)
		assert.Contains(t, content, "</svg>")
	}
}

func TestOverviewCardContent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderOverviewCard(&buf, sampleResult(), &contract.Config{Username: "alice"}))

	out := buf.String()
	assert.Contains(t, out, "alice's GitHub Stats")
	assert.Contains(t, out, "1,234")
	assert.Contains(t, out, "Repositories")
}

func TestLanguagesCardBars(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderLanguagesCard(&buf, sampleResult(), &contract.Config{}))

	out := buf.String()
	assert.Contains(t, out, ">Go</text>")
	assert.Contains(t, out, "80.0%")
	assert.Contains(t, out, `width="160"`, "bar width is proportional to share")
}

func TestTrendsCardPolylines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderTrendsCard(&buf, sampleResult(), &contract.Config{}))

	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, "<polyline"), "history plus both projections")
	assert.Contains(t, out, "stroke-dasharray")
}

func TestTrendsCardEmptyHistory(t *testing.T) {
	var buf bytes.Buffer
	result := &schema.RunResult{}
	require.NoError(t, renderTrendsCard(&buf, result, &contract.Config{}))
	assert.Contains(t, buf.String(), "Not enough history yet")
}

func TestAchievementsCardContent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderAchievementsCard(&buf, sampleResult(), &contract.Config{}))

	out := buf.String()
	assert.Contains(t, out, "Best year: 2023")
	assert.Contains(t, out, "Top language 2023: Go")
	assert.Contains(t, out, "Peak week: 2024-03-11")
}

func TestWriteHTMLReport(t *testing.T) {
	cfg := renderConfig(t)
	require.NoError(t, WriteHTMLReport(sampleResult(), cfg))

	data, err := os.ReadFile(filepath.Join(cfg.RenderDir, ReportFile))
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Cumulative Activity")
	assert.Contains(t, content, "Language Share")
	assert.Contains(t, content, "12m projection")
}

func TestPlotScale(t *testing.T) {
	s := newPlotScale(3, 100)
	assert.Equal(t, plotLeft, s.x(0))
	assert.Equal(t, plotLeft+plotWidth, s.x(2))
	assert.Equal(t, plotTop+plotHeight, s.y(0))
	assert.Equal(t, plotTop, s.y(100))
}
