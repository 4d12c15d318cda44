package core

import (
	"sort"
	"strings"

	"github.com/panglars/VeRForTe/schema"
)

// BoardList flattens the board index into a stable list ordered by
// directory name. All list views start from this ordering.
func BoardList(data *schema.SiteData) []schema.BoardMeta {
	list := make([]schema.BoardMeta, 0, len(data.Boards))
	for _, id := range sortedKeys(data.Boards) {
		list = append(list, data.Boards[id].Meta)
	}
	return list
}

// SortedBoardIDs returns the board index keys in lexical order.
func SortedBoardIDs(data *schema.SiteData) []string {
	return sortedKeys(data.Boards)
}

// BoardReports flattens a board's per-system report lists into one stable
// list ordered by system identifier.
func BoardReports(board *schema.Board) []schema.Report {
	var out []schema.Report
	for _, sys := range sortedKeys(board.Systems) {
		out = append(out, board.Systems[sys]...)
	}
	return out
}

// SystemList flattens the system index, ordered by identifier.
func SystemList(data *schema.SiteData) []*schema.System {
	list := make([]*schema.System, 0, len(data.Systems))
	for _, id := range sortedKeys(data.Systems) {
		list = append(list, data.Systems[id])
	}
	return list
}

// SearchBoards returns the boards matching a case-insensitive substring
// query against product, CPU, CPU core and the display names of every
// system the board supports. An empty query matches everything.
func SearchBoards(data *schema.SiteData, query string) []schema.BoardMeta {
	query = strings.ToLower(strings.TrimSpace(query))
	var matched []schema.BoardMeta
	for _, meta := range BoardList(data) {
		if query == "" || boardMatches(data, meta, query) {
			matched = append(matched, meta)
		}
	}
	return matched
}

func boardMatches(data *schema.SiteData, meta schema.BoardMeta, query string) bool {
	fields := []string{meta.Product, meta.CPU, meta.CPUCore}
	if board, ok := data.Boards[meta.Dir]; ok {
		fields = append(fields, board.SupportedSystemNames(data.Metadata)...)
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// SearchSystems returns the systems whose identifier or display name
// contains the query, case-insensitively.
func SearchSystems(data *schema.SiteData, query string) []*schema.System {
	query = strings.ToLower(strings.TrimSpace(query))
	var matched []*schema.System
	for _, sys := range SystemList(data) {
		if query == "" ||
			strings.Contains(strings.ToLower(sys.ID), query) ||
			strings.Contains(strings.ToLower(sys.Name), query) {
			matched = append(matched, sys)
		}
	}
	return matched
}

// SortBoards returns a sorted copy of the board list. The vendor-first
// kind places boards from recognized vendors before the rest, breaking
// ties by product name; field kinds compare the named field directly.
// The recognized set is keyed by lowercased vendor name and only consulted
// for the vendor-first kind.
func SortBoards(boards []schema.BoardMeta, opt schema.SortOption, recognized map[string]bool) []schema.BoardMeta {
	sorted := make([]schema.BoardMeta, len(boards))
	copy(sorted, boards)

	switch opt.Kind {
	case schema.VendorFirstSort:
		sort.SliceStable(sorted, func(i, j int) bool {
			ri := recognized[strings.ToLower(sorted[i].Vendor)]
			rj := recognized[strings.ToLower(sorted[j].Vendor)]
			if ri != rj {
				return ri
			}
			return compareFold(sorted[i].Product, sorted[j].Product) < 0
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			c := compareFold(boardField(sorted[i], opt.Field), boardField(sorted[j], opt.Field))
			if opt.Desc {
				return c > 0
			}
			return c < 0
		})
	}
	return sorted
}

func boardField(meta schema.BoardMeta, field schema.SortField) string {
	switch field {
	case schema.VendorField:
		return meta.Vendor
	default:
		return meta.Product
	}
}

// EnrichReports joins every report with its board metadata and system
// display name. Reports whose board is unknown keep placeholder board
// fields rather than being dropped.
func EnrichReports(data *schema.SiteData) []schema.EnrichedReport {
	enriched := make([]schema.EnrichedReport, 0, len(data.AllReports))
	for _, r := range data.AllReports {
		e := schema.EnrichedReport{
			Report:       r,
			BoardProduct: schema.NotSpecified,
			BoardCPU:     schema.NotSpecified,
			BoardVendor:  schema.NotSpecified,
			SystemName:   data.Metadata.DisplayName(r.Sys),
		}
		if board, ok := data.Boards[r.BoardID]; ok {
			e.BoardProduct = board.Meta.Product
			e.BoardCPU = board.Meta.CPU
			e.BoardVendor = board.Meta.Vendor
		}
		enriched = append(enriched, e)
	}
	return enriched
}

// FilterReports applies every restriction of the filter conjunctively.
// Each multi-select matches when the report's value equals any selected
// value, case-insensitively. The date range applies only when both ends
// are set and only restricts dated reports; undated reports pass through
// an active range unfiltered.
func FilterReports(reports []schema.EnrichedReport, filter schema.ReportFilter) []schema.EnrichedReport {
	rangeActive := filter.From != nil && filter.To != nil

	var kept []schema.EnrichedReport
	for _, r := range reports {
		if !matchesAny(r.BoardCPU, filter.CPUs) ||
			!matchesAny(r.BoardVendor, filter.Vendors) ||
			!matchesAny(r.Sys, filter.Systems) ||
			!matchesAny(string(r.Status), filter.Statuses) {
			continue
		}
		if rangeActive && r.HasDate() {
			if r.LastUpdate.Before(*filter.From) || r.LastUpdate.After(*filter.To) {
				continue
			}
		}
		kept = append(kept, r)
	}
	return kept
}

// matchesAny reports whether value equals one of the selected values,
// ignoring case. An empty selection matches everything.
func matchesAny(value string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if strings.EqualFold(value, s) {
			return true
		}
	}
	return false
}

// SortReports returns a sorted copy of an enriched report list. For date
// ordering, undated reports sort after dated ones in both directions.
func SortReports(reports []schema.EnrichedReport, opt schema.SortOption) []schema.EnrichedReport {
	sorted := make([]schema.EnrichedReport, len(reports))
	copy(sorted, reports)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		switch opt.Field {
		case schema.DateField:
			switch {
			case !a.HasDate() && !b.HasDate():
				return false
			case !a.HasDate():
				return false
			case !b.HasDate():
				return true
			}
			if opt.Desc {
				return a.LastUpdate.After(*b.LastUpdate)
			}
			return a.LastUpdate.Before(*b.LastUpdate)
		case schema.BoardField:
			c := compareFold(a.BoardID, b.BoardID)
			if opt.Desc {
				return c > 0
			}
			return c < 0
		default:
			c := compareFold(a.Sys, b.Sys)
			if opt.Desc {
				return c > 0
			}
			return c < 0
		}
	})
	return sorted
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
