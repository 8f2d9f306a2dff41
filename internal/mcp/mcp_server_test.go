package mcp_test

import (
	"context"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/statscard/statscard/internal/contract"
	"github.com/statscard/statscard/internal/histstore"
	mcp_internal "github.com/statscard/statscard/internal/mcp"
	"github.com/statscard/statscard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubIngestor serves canned records so handlers can run without GitHub.
type stubIngestor struct {
	repos []schema.RepoRecord
	days  []schema.DayRecord
	views int
}

func (s *stubIngestor) Repos(_ context.Context) ([]schema.RepoRecord, error) {
	return s.repos, nil
}

func (s *stubIngestor) DailyActivity(_ context.Context) ([]schema.DayRecord, error) {
	return s.days, nil
}

func (s *stubIngestor) Views(_ context.Context, _ []schema.RepoRecord) (int, error) {
	return s.views, nil
}

func makeDays(start time.Time, changed ...int) []schema.DayRecord {
	days := make([]schema.DayRecord, 0, len(changed))
	for i, c := range changed {
		days = append(days, schema.DayRecord{
			Date:       start.AddDate(0, 0, i),
			LinesAdded: c,
			Commits:    1,
		})
	}
	return days
}

func TestMCPServerHandlers(t *testing.T) {
	baseCfg := &contract.Config{
		Username:          "alice",
		ContribThresholds: schema.DefaultContribThresholds,
		StarThresholds:    schema.DefaultStarThresholds,
		RepoThresholds:    schema.DefaultRepoThresholds,
	}

	day0 := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	ing := &stubIngestor{
		repos: []schema.RepoRecord{
			{FullName: "alice/widgets", Stars: 12, Forks: 3, Languages: map[string]int64{"Go": 800, "Python": 200}},
			{FullName: "alice/gadgets", Stars: 5, Languages: map[string]int64{"Go": 400}},
		},
		days:  makeDays(day0, 10, 20, 30, 40, 50, 60, 70),
		views: 42,
	}
	store := histstore.NewMock()
	s := mcp_internal.NewMCPServer(baseCfg, ing, store)

	ctx := context.Background()
	require.NoError(t, store.Record(ctx, schema.Snapshot{Date: day0, Stars: 0}))
	require.NoError(t, store.Record(ctx, schema.Snapshot{Date: day0.AddDate(0, 0, 3), Stars: 12}))

	call := func(t *testing.T, name string, args map[string]any) *mcp.CallToolResult {
		t.Helper()
		tool := s.GetTool(name)
		require.NotNil(t, tool, "Tool %s should exist", name)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      name,
				Arguments: args,
			},
		}
		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		return res
	}

	t.Run("get_overview aggregates repos and activity", func(t *testing.T) {
		res := call(t, "get_overview", nil)
		require.False(t, res.IsError)
		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, `"stars": 17`)
		assert.Contains(t, text, `"views": 42`)
		assert.Contains(t, text, `"repo_count": 2`)
	})

	t.Run("get_overview honors exclude_repos", func(t *testing.T) {
		res := call(t, "get_overview", map[string]any{"exclude_repos": "alice/widgets"})
		require.False(t, res.IsError)
		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, `"stars": 5`)
	})

	t.Run("get_languages respects limit", func(t *testing.T) {
		res := call(t, "get_languages", map[string]any{"limit": 1.0})
		require.False(t, res.IsError)
		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, `"Go"`)
		assert.NotContains(t, text, `"Python"`)
	})

	t.Run("get_trends returns buckets and both horizons", func(t *testing.T) {
		res := call(t, "get_trends", nil)
		require.False(t, res.IsError)
		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, `"buckets"`)
		assert.Contains(t, text, `"forecast_6m"`)
		assert.Contains(t, text, `"forecast_12m"`)
	})

	t.Run("get_milestones reports star crossings from history", func(t *testing.T) {
		res := call(t, "get_milestones", nil)
		require.False(t, res.IsError)
		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, `"stars"`)
		assert.Contains(t, text, `"threshold": 10`)
	})

	t.Run("get_achievements reports superlatives", func(t *testing.T) {
		res := call(t, "get_achievements", nil)
		require.False(t, res.IsError)
		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, `"best-year"`)
		assert.Contains(t, text, `"peak-week"`)
	})
}

func TestMCPServerHandlers_MalformedSeries(t *testing.T) {
	baseCfg := &contract.Config{Username: "alice"}
	day0 := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	// A gap in the day series must surface as a tool error, not a panic.
	ing := &stubIngestor{
		days: []schema.DayRecord{
			{Date: day0, Commits: 1},
			{Date: day0.AddDate(0, 0, 2), Commits: 1},
		},
	}
	s := mcp_internal.NewMCPServer(baseCfg, ing, histstore.NewMock())

	tool := s.GetTool("get_trends")
	require.NotNil(t, tool)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: "get_trends"},
	}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, res.IsError, "The response should indicate an error state")
	assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "malformed day series")
}
