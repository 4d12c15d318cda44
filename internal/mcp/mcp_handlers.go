package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/panglars/VeRForTe/core"
	"github.com/panglars/VeRForTe/internal/contract"
	"github.com/panglars/VeRForTe/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	provider contract.SiteProvider
}

func (h *toolHandler) handleListBoards(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := h.provider.Get(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("data load failed: %v", err)), nil
	}

	boards := core.SearchBoards(data, request.GetString("query", ""))
	jsonData, _ := json.MarshalIndent(boards, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetBoard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := request.GetString("board", "")
	if id == "" {
		return mcp.NewToolResultError("board is required"), nil
	}

	data, err := h.provider.Get(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("data load failed: %v", err)), nil
	}

	board, ok := data.Boards[id]
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown board %q", id)), nil
	}

	jsonData, _ := json.MarshalIndent(board, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListReports(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := h.provider.Get(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("data load failed: %v", err)), nil
	}

	filter := schema.ReportFilter{}
	if sys := request.GetString("system", ""); sys != "" {
		filter.Systems = []string{sys}
	}
	if vendor := request.GetString("vendor", ""); vendor != "" {
		filter.Vendors = []string{vendor}
	}
	if status := request.GetString("status", ""); status != "" {
		normalized := schema.NormalizeStatus(status)
		if !schema.IsValidStatus(normalized) {
			return mcp.NewToolResultError(fmt.Sprintf("invalid status %q", status)), nil
		}
		filter.Statuses = []string{string(normalized)}
	}

	reports := core.FilterReports(core.EnrichReports(data), filter)
	reports = core.SortReports(reports, schema.ReportSortOptions[0])

	jsonData, _ := json.MarshalIndent(reports, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetStatistics(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := h.provider.Get(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("data load failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(data.Statistics, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
