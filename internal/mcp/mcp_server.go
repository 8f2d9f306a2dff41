// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/statscard/statscard/internal/contract"
)

// NewMCPServer initializes and configures the Statscard MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, ing contract.Ingestor, store contract.HistoryStore) *server.MCPServer {
	s := server.NewMCPServer(
		"Statscard Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		ing:     ing,
		store:   store,
	}

	// --- 1. Tool: get_overview ---
	s.AddTool(mcp.NewTool("get_overview",
		mcp.WithDescription("Aggregate lifetime GitHub statistics (stars, forks, contributions, lines changed, views) for the configured user."),
		mcp.WithString("exclude_repos", mcp.Description("Comma-separated owner/name identities to exclude from repository aggregates.")),
		mcp.WithString("exclude_langs", mcp.Description("Comma-separated language names to exclude from repository aggregates.")),
		mcp.WithBoolean("exclude_forks", mcp.Description("Exclude forked repositories from repository aggregates.")),
	), h.handleGetOverview)

	// --- 2. Tool: get_languages ---
	s.AddTool(mcp.NewTool("get_languages",
		mcp.WithDescription("Normalized language share distribution across the user's repositories, descending by bytes."),
		mcp.WithString("exclude_langs", mcp.Description("Comma-separated language names to exclude.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of languages returned.")),
	), h.handleGetLanguages)

	// --- 3. Tool: get_trends ---
	s.AddTool(mcp.NewTool("get_trends",
		mcp.WithDescription("Weekly activity buckets plus 6- and 12-month linear projections of cumulative lines changed."),
	), h.handleGetTrends)

	// --- 4. Tool: get_milestones ---
	s.AddTool(mcp.NewTool("get_milestones",
		mcp.WithDescription("Threshold crossings detected across the contribution, star and repository series, ascending by date."),
	), h.handleGetMilestones)

	// --- 5. Tool: get_achievements ---
	s.AddTool(mcp.NewTool("get_achievements",
		mcp.WithDescription("Superlative records: best year, top language per year and peak activity week."),
	), h.handleGetAchievements)

	return s
}

// StartMCPServer starts the Statscard MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, ing contract.Ingestor, store contract.HistoryStore) error {
	s := NewMCPServer(baseCfg, ing, store)
	return server.ServeStdio(s)
}
