package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/panglars/VeRForTe/internal/contract"
	"github.com/panglars/VeRForTe/schema"
)

// writeMatrixResults outputs per-category matrices, dispatching based on
// the output format configured.
func writeMatrixResults(matrix []schema.MatrixCategory, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, matrix)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMatrixCSV(w, matrix)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is only supported for reports")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMatrixTables(w, matrix, cfg)
		}, "Wrote table")
	}
}

func writeMatrixTables(w io.Writer, matrix []schema.MatrixCategory, cfg *contract.Config) error {
	for _, cat := range matrix {
		if _, err := fmt.Fprintf(w, "%s\n", heading("🗂️", cat.ID, cfg)); err != nil {
			return err
		}
		if len(cat.Rows) == 0 {
			if _, err := fmt.Fprintf(w, "No boards with reports in this category\n\n"); err != nil {
				return err
			}
			continue
		}

		table := tablewriter.NewWriter(w)
		headers := []string{"Board"}
		for _, sys := range cat.Systems {
			headers = append(headers, sys.Name)
		}
		table.Header(headers)
		table.Configure(func(tc *tablewriter.Config) {
			tc.Row.Alignment.Global = tw.AlignLeft
		})

		var data [][]string
		for _, row := range cat.Rows {
			rec := []string{row.Board.Product}
			for _, status := range row.Statuses {
				rec = append(rec, contract.StatusLabel(status, cfg.UseColors))
			}
			data = append(data, rec)
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// writeMatrixCSV flattens the grid into one (category, board, system,
// status) record per cell with a status.
func writeMatrixCSV(w io.Writer, matrix []schema.MatrixCategory) error {
	header := []string{"category", "board", "system", "status"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, cat := range matrix {
			for _, row := range cat.Rows {
				for i, status := range row.Statuses {
					if status == "" {
						continue
					}
					rec := []string{cat.ID, row.Board.Dir, cat.Systems[i].ID, string(status)}
					if err := cw.Write(rec); err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
}
