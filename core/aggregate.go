package core

import (
	"fmt"

	"github.com/panglars/VeRForTe/internal/contract"
	"github.com/panglars/VeRForTe/schema"
)

// aggregateBoards builds the per-board index. Reports referencing a board
// with no manifest are skipped here (they remain in the flat list and are
// surfaced by the consistency check). When two manifests claim the same
// directory the first one wins and the duplicate is logged.
func aggregateBoards(reports []schema.Report, metas []schema.BoardMeta) map[string]*schema.Board {
	boards := make(map[string]*schema.Board, len(metas))
	for _, meta := range metas {
		if _, ok := boards[meta.Dir]; ok {
			contract.LogWarn(fmt.Sprintf("duplicate board directory %q, keeping first", meta.Dir), nil)
			continue
		}
		boards[meta.Dir] = &schema.Board{
			ID:      meta.Dir,
			Meta:    meta,
			Systems: map[string][]schema.Report{},
		}
	}

	for _, r := range reports {
		board, ok := boards[r.BoardID]
		if !ok {
			continue
		}
		board.Systems[r.Sys] = append(board.Systems[r.Sys], r)
	}
	return boards
}

// aggregateSystems groups the flat report list by system identifier and
// attaches the display name from the shared metadata.
func aggregateSystems(reports []schema.Report, meta *schema.SystemMetadata) map[string]*schema.System {
	systems := map[string]*schema.System{}
	for _, r := range reports {
		sys, ok := systems[r.Sys]
		if !ok {
			sys = &schema.System{ID: r.Sys, Name: meta.DisplayName(r.Sys)}
			systems[r.Sys] = sys
		}
		sys.Reports = append(sys.Reports, r)
	}
	return systems
}
