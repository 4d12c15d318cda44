package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/panglars/VeRForTe/internal/contract"
	"github.com/panglars/VeRForTe/schema"
)

// writeStatisticsResults outputs the site-wide statistics, dispatching
// based on the output format configured.
func writeStatisticsResults(stats schema.SiteStatistics, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, stats)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStatisticsCSV(w, stats)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is only supported for reports")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStatisticsText(w, stats, cfg)
		}, "Wrote text")
	}
}

func writeStatisticsText(w io.Writer, stats schema.SiteStatistics, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "%s\n", heading("📊", "Support matrix statistics", cfg)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Boards: %d  Systems: %d  Reports: %d\n\n",
		stats.TotalBoards, stats.TotalSystems, stats.TotalReports); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "By status:\n"); err != nil {
		return err
	}
	for _, status := range schema.AllStatuses {
		if count, ok := stats.StatusCounts[status]; ok {
			if _, err := fmt.Fprintf(w, "  %-6s %d\n", contract.StatusLabel(status, cfg.UseColors), count); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(w, "\nBy vendor:\n"); err != nil {
		return err
	}
	vendors := make([]string, 0, len(stats.BoardsByVendor))
	for v := range stats.BoardsByVendor {
		vendors = append(vendors, v)
	}
	sort.Strings(vendors)
	for _, v := range vendors {
		if _, err := fmt.Fprintf(w, "  %-24s %d\n", v, len(stats.BoardsByVendor[v])); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\nBy category:\n"); err != nil {
		return err
	}
	categories := make([]string, 0, len(stats.SystemsByCategory))
	for c := range stats.SystemsByCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, c := range categories {
		if _, err := fmt.Fprintf(w, "  %-24s %d\n", c, len(stats.SystemsByCategory[c])); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\nComputed at %s\n", stats.LastUpdated.Format(contract.DateFormat))
	return err
}

// writeStatisticsCSV flattens the grouped counts into (section, key, count)
// records.
func writeStatisticsCSV(w io.Writer, stats schema.SiteStatistics) error {
	header := []string{"section", "key", "count"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		records := [][]string{
			{"totals", "boards", strconv.Itoa(stats.TotalBoards)},
			{"totals", "systems", strconv.Itoa(stats.TotalSystems)},
			{"totals", "reports", strconv.Itoa(stats.TotalReports)},
		}
		for _, status := range schema.AllStatuses {
			if count, ok := stats.StatusCounts[status]; ok {
				records = append(records, []string{"status", string(status), strconv.Itoa(count)})
			}
		}
		vendors := make([]string, 0, len(stats.BoardsByVendor))
		for v := range stats.BoardsByVendor {
			vendors = append(vendors, v)
		}
		sort.Strings(vendors)
		for _, v := range vendors {
			records = append(records, []string{"vendor", v, strconv.Itoa(len(stats.BoardsByVendor[v]))})
		}
		categories := make([]string, 0, len(stats.SystemsByCategory))
		for c := range stats.SystemsByCategory {
			categories = append(categories, c)
		}
		sort.Strings(categories)
		for _, c := range categories {
			records = append(records, []string{"category", c, strconv.Itoa(len(stats.SystemsByCategory[c]))})
		}
		return cw.WriteAll(records)
	})
}

// writeDebugStatsResults outputs the store lifecycle state. Only text and
// JSON make sense here.
func writeDebugStatsResults(stats schema.DebugStats, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, stats)
		}, "Wrote JSON")
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, "Cached: %t  Loading: %t\n", stats.IsCached, stats.IsLoading); err != nil {
			return err
		}
		if stats.CacheTimestamp != nil {
			if _, err := fmt.Fprintf(w, "Cached at: %s\n", stats.CacheTimestamp.Format("2006-01-02 15:04:05")); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "Boards: %d  Reports: %d\n", stats.TotalBoards, stats.TotalReports); err != nil {
				return err
			}
		}
		return nil
	}, "Wrote text")
}
