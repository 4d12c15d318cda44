package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/panglars/VeRForTe/internal/contract"
	"github.com/panglars/VeRForTe/internal/parquet"
	"github.com/panglars/VeRForTe/schema"
)

// writeReportResults outputs an enriched report list, dispatching based on
// the output format configured. Parquet output requires an output file.
func writeReportResults(reports []schema.EnrichedReport, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportJSON(w, reports)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportCSV(w, reports)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		if err := parquet.WriteReportsParquet(parquet.ConvertEnrichedReports(reports), cfg.OutputFile); err != nil {
			return err
		}
		contract.LogInfo(fmt.Sprintf("wrote %d report(s) to %s", len(reports), cfg.OutputFile))
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTable(w, reports, cfg)
		}, "Wrote table")
	}
}

func writeReportTable(w io.Writer, reports []schema.EnrichedReport, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", "Board", "Vendor", "System", "Version", "Variant", "Status", "Updated", "Source"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for i, r := range reports {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			r.BoardID,
			r.BoardVendor,
			r.SystemName,
			orDash(r.SysVer),
			orDash(r.SysVar),
			contract.StatusLabel(r.Status, cfg.UseColors),
			formatDate(&r.Report),
			string(r.Source),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n", heading("🧮", fmt.Sprintf("Showing %d report(s)", len(reports)), cfg))
	return err
}

func writeReportCSV(w io.Writer, reports []schema.EnrichedReport) error {
	header := []string{
		"board",
		"vendor",
		"product",
		"system",
		"system_name",
		"sys_ver",
		"sys_var",
		"status",
		"last_update",
		"source",
		"page",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range reports {
			date := ""
			if r.HasDate() {
				date = r.LastUpdate.Format(contract.DateFormat)
			}
			rec := []string{
				r.BoardID,
				r.BoardVendor,
				r.BoardProduct,
				r.Sys,
				r.SystemName,
				r.SysVer,
				r.SysVar,
				string(r.Status),
				date,
				string(r.Source),
				r.PagePath(),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeReportJSON adds the derived page path so consumers can link back to
// the source document.
func writeReportJSON(w io.Writer, reports []schema.EnrichedReport) error {
	type jsonReport struct {
		schema.EnrichedReport
		Page string `json:"page,omitempty"`
	}

	output := make([]jsonReport, len(reports))
	for i, r := range reports {
		output[i] = jsonReport{EnrichedReport: r, Page: r.PagePath()}
	}
	return writeJSON(w, output)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
