package core

import (
	"sort"
	"time"

	"github.com/panglars/VeRForTe/schema"
)

// ComputeStatistics derives the site-wide counts from an aggregated load.
// All grouped values are sorted so two loads of the same content produce
// identical statistics.
func ComputeStatistics(data *schema.SiteData) schema.SiteStatistics {
	stats := schema.SiteStatistics{
		TotalBoards:       len(data.Boards),
		TotalSystems:      len(data.Systems),
		TotalReports:      len(data.AllReports),
		StatusCounts:      map[schema.Status]int{},
		BoardsByVendor:    map[string][]string{},
		SystemsByCategory: map[string][]string{},
		LastUpdated:       time.Now().UTC(),
	}

	for _, r := range data.AllReports {
		stats.StatusCounts[r.Status]++
	}

	for _, board := range data.Boards {
		vendor := board.Meta.Vendor
		stats.BoardsByVendor[vendor] = append(stats.BoardsByVendor[vendor], board.ID)
	}
	for vendor := range stats.BoardsByVendor {
		sort.Strings(stats.BoardsByVendor[vendor])
	}

	// Category membership follows the metadata document, counting only
	// systems that actually have reports.
	if data.Metadata != nil {
		for _, cat := range data.Metadata.Categories {
			for _, entry := range cat.Systems {
				if _, ok := data.Systems[entry.ID]; ok {
					stats.SystemsByCategory[cat.ID] = append(stats.SystemsByCategory[cat.ID], entry.ID)
				}
			}
		}
	}

	return stats
}
