// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/panglars/VeRForTe/internal/contract"
)

// NewMCPServer initializes and configures the support matrix MCP server
// without starting it. This is exposed for unit testing.
func NewMCPServer(provider contract.SiteProvider) *server.MCPServer {
	s := server.NewMCPServer(
		"RISC-V Support Matrix Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{provider: provider}

	// --- 1. Tool: list_boards ---
	s.AddTool(mcp.NewTool("list_boards",
		mcp.WithDescription("List RISC-V boards with vendor and hardware metadata, optionally filtered by a search query."),
		mcp.WithString("query", mcp.Description("Case-insensitive substring matched against product, CPU and supported system names.")),
	), h.handleListBoards)

	// --- 2. Tool: get_board ---
	s.AddTool(mcp.NewTool("get_board",
		mcp.WithDescription("Get one board with all of its compatibility reports grouped by operating system."),
		mcp.WithString("board", mcp.Description("The board's directory identifier."), mcp.Required()),
	), h.handleGetBoard)

	// --- 3. Tool: list_reports ---
	s.AddTool(mcp.NewTool("list_reports",
		mcp.WithDescription("List compatibility reports joined with board metadata, with optional filters."),
		mcp.WithString("system", mcp.Description("Restrict to one system identifier, e.g. 'ubuntu'.")),
		mcp.WithString("vendor", mcp.Description("Restrict to one board vendor.")),
		mcp.WithString("status", mcp.Description("Restrict to one support status."), mcp.Enum("GOOD", "BASIC", "CFH", "CFT", "WIP", "CFI")),
	), h.handleListReports)

	// --- 4. Tool: get_statistics ---
	s.AddTool(mcp.NewTool("get_statistics",
		mcp.WithDescription("Get site-wide statistics: totals, status counts, boards by vendor and systems by category."),
	), h.handleGetStatistics)

	return s
}

// StartMCPServer starts the support matrix MCP server over stdio.
func StartMCPServer(_ context.Context, provider contract.SiteProvider) error {
	s := NewMCPServer(provider)
	return server.ServeStdio(s)
}
