package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/panglars/VeRForTe/internal/contract"
	"github.com/panglars/VeRForTe/schema"
)

// writeBoardResults outputs a board list, dispatching based on the output format configured.
func writeBoardResults(boards []schema.BoardMeta, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, boards)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBoardCSV(w, boards)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is only supported for reports")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBoardTable(w, boards, cfg)
		}, "Wrote table")
	}
}

func writeBoardTable(w io.Writer, boards []schema.BoardMeta, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", "Board", "Vendor", "Product", "CPU", "Core", "RAM"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignLeft
	})

	maxWidth := maxFieldWidth()
	var data [][]string
	for i, b := range boards {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			b.Dir,
			b.Vendor,
			truncateField(b.Product, maxWidth),
			truncateField(b.CPU, maxWidth),
			truncateField(b.CPUCore, maxWidth),
			truncateField(b.RAM, maxWidth),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n", heading("🧮", fmt.Sprintf("Showing %d board(s)", len(boards)), cfg))
	return err
}

func writeBoardCSV(w io.Writer, boards []schema.BoardMeta) error {
	header := []string{"board", "vendor", "product", "cpu", "cpu_core", "ram"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, b := range boards {
			rec := []string{b.Dir, b.Vendor, b.Product, b.CPU, b.CPUCore, b.RAM}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
