package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/statscard/statscard/core"
	"github.com/statscard/statscard/internal/contract"
	"github.com/statscard/statscard/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	ing     contract.Ingestor
	store   contract.HistoryStore
}

// listSnapshots returns the persisted history, or nil when no store is wired.
func (h *toolHandler) listSnapshots(ctx context.Context) ([]schema.Snapshot, error) {
	if h.store == nil {
		return nil, nil
	}
	return h.store.List(ctx)
}

func (h *toolHandler) handleGetOverview(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if raw := request.GetString("exclude_repos", ""); raw != "" {
		cfg.ExcludeRepos = contract.ParseExcludeSet(raw)
	}
	if raw := request.GetString("exclude_langs", ""); raw != "" {
		cfg.ExcludeLangs = contract.ParseExcludeSet(raw)
	}
	if request.GetBool("exclude_forks", false) {
		cfg.ExcludeForks = true
	}

	repos, err := h.ing.Repos(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("repository fetch failed: %v", err)), nil
	}
	days, err := h.ing.DailyActivity(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("activity fetch failed: %v", err)), nil
	}
	if err := core.ValidateDaySeries(days); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}
	views, err := h.ing.Views(ctx, repos)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("traffic fetch failed: %v", err)), nil
	}

	totals := core.Aggregate(repos, days, schema.Counters{Views: views, RepoCount: len(repos)}, cfg)
	jsonData, _ := json.MarshalIndent(totals, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetLanguages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if raw := request.GetString("exclude_langs", ""); raw != "" {
		cfg.ExcludeLangs = contract.ParseExcludeSet(raw)
	}

	repos, err := h.ing.Repos(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("repository fetch failed: %v", err)), nil
	}

	langs := core.LanguageBreakdown(repos, cfg)
	if l := request.GetInt("limit", 0); l > 0 && l < len(langs) {
		langs = langs[:l]
	}
	jsonData, _ := json.MarshalIndent(langs, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetTrends(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	days, err := h.ing.DailyActivity(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("activity fetch failed: %v", err)), nil
	}
	if err := core.ValidateDaySeries(days); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	buckets := core.ResampleWeekly(days)
	payload := struct {
		Buckets        []schema.ActivityBucket `json:"buckets"`
		ForecastSix    []schema.ForecastPoint  `json:"forecast_6m"`
		ForecastTwelve []schema.ForecastPoint  `json:"forecast_12m"`
	}{
		Buckets:        buckets,
		ForecastSix:    core.ForecastCumulative(buckets, schema.SixMonthHorizon),
		ForecastTwelve: core.ForecastCumulative(buckets, schema.TwelveMonthHorizon),
	}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetMilestones(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	days, err := h.ing.DailyActivity(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("activity fetch failed: %v", err)), nil
	}
	if err := core.ValidateDaySeries(days); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}
	snaps, err := h.listSnapshots(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("history fetch failed: %v", err)), nil
	}

	contribs := core.CumulativeContributions(days)
	milestones := core.DetectAllMilestones(contribs, core.StarSeries(snaps), core.RepoSeries(snaps), h.baseCfg)
	jsonData, _ := json.MarshalIndent(milestones, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetAchievements(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	days, err := h.ing.DailyActivity(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("activity fetch failed: %v", err)), nil
	}
	if err := core.ValidateDaySeries(days); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}
	snaps, err := h.listSnapshots(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("history fetch failed: %v", err)), nil
	}

	achievements := core.EvaluateAchievements(days, core.YearlyLanguageBytes(snaps))
	jsonData, _ := json.MarshalIndent(achievements, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}
