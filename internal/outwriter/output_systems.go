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

// writeSystemResults outputs a system list, dispatching based on the output format configured.
func writeSystemResults(systems []*schema.System, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, systems)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSystemCSV(w, systems)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is only supported for reports")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSystemTable(w, systems, cfg)
		}, "Wrote table")
	}
}

func writeSystemTable(w io.Writer, systems []*schema.System, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", "System", "Name", "Reports", "Boards"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for i, sys := range systems {
		boards := map[string]struct{}{}
		for _, r := range sys.Reports {
			boards[r.BoardID] = struct{}{}
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			sys.ID,
			sys.Name,
			strconv.Itoa(len(sys.Reports)),
			strconv.Itoa(len(boards)),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n", heading("🧮", fmt.Sprintf("Showing %d system(s)", len(systems)), cfg))
	return err
}

func writeSystemCSV(w io.Writer, systems []*schema.System) error {
	header := []string{"system", "name", "reports"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, sys := range systems {
			rec := []string{sys.ID, sys.Name, strconv.Itoa(len(sys.Reports))}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
