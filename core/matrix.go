package core

import (
	"strings"

	"github.com/panglars/VeRForTe/schema"
)

// BuildMatrix builds the board-by-system status grid for every metadata
// category, in document order. Each cell carries the status of the first
// report found for that (board, system) pair, matched case-insensitively,
// or the empty status when no report exists. Board rows with no status at
// all within a category are dropped from that category.
func BuildMatrix(data *schema.SiteData) []schema.MatrixCategory {
	if data.Metadata == nil {
		return nil
	}

	boards := BoardList(data)
	matrix := make([]schema.MatrixCategory, 0, len(data.Metadata.Categories))
	for _, cat := range data.Metadata.Categories {
		mc := schema.MatrixCategory{ID: cat.ID, Systems: cat.Systems}
		for _, meta := range boards {
			row := schema.MatrixRow{
				Board:    meta,
				Statuses: make([]schema.Status, len(cat.Systems)),
			}
			hasStatus := false
			for i, entry := range cat.Systems {
				row.Statuses[i] = cellStatus(data.Boards[meta.Dir], entry.ID)
				if row.Statuses[i] != "" {
					hasStatus = true
				}
			}
			if hasStatus {
				mc.Rows = append(mc.Rows, row)
			}
		}
		matrix = append(matrix, mc)
	}
	return matrix
}

func cellStatus(board *schema.Board, sysID string) schema.Status {
	if board == nil {
		return ""
	}
	// Sorted keys keep the winning cell stable when two sys keys differ
	// only in case.
	for _, sys := range sortedKeys(board.Systems) {
		if reports := board.Systems[sys]; strings.EqualFold(sys, sysID) && len(reports) > 0 {
			return reports[0].Status
		}
	}
	return ""
}

// ApplyCompare restricts a matrix category to the selected boards and
// systems, then optionally hides rows that add nothing to a comparison.
// With hide-identical on and at least two systems selected, rows whose
// selected statuses are all present and identical, or all empty, are
// dropped; rows with mixed or partially missing statuses stay.
func ApplyCompare(cat schema.MatrixCategory, sel schema.CompareSelection) schema.MatrixCategory {
	out := schema.MatrixCategory{ID: cat.ID}

	keepCol := make([]bool, len(cat.Systems))
	for i, entry := range cat.Systems {
		if matchesAny(entry.ID, sel.Systems) {
			keepCol[i] = true
			out.Systems = append(out.Systems, entry)
		}
	}

	hide := sel.HideIdentical && len(out.Systems) >= 2 && len(sel.Systems) >= 2
	for _, row := range cat.Rows {
		if !matchesAny(row.Board.Dir, sel.Boards) {
			continue
		}
		projected := schema.MatrixRow{Board: row.Board}
		for i, status := range row.Statuses {
			if keepCol[i] {
				projected.Statuses = append(projected.Statuses, status)
			}
		}
		if hide && uninformative(projected.Statuses) {
			continue
		}
		out.Rows = append(out.Rows, projected)
	}
	return out
}

// uninformative reports whether a row of statuses is all empty, or all
// present and equal.
func uninformative(statuses []schema.Status) bool {
	if len(statuses) == 0 {
		return true
	}
	first := statuses[0]
	for _, s := range statuses[1:] {
		if s != first {
			return false
		}
	}
	// All equal; identical non-empty values and all-empty are both
	// uninformative, so any uniform row qualifies.
	return true
}
