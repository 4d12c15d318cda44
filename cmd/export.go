package cmd

import (
	"github.com/spf13/cobra"

	"github.com/panglars/VeRForTe/core"
	"github.com/panglars/VeRForTe/internal/contract"
	"github.com/panglars/VeRForTe/internal/parquet"
	"github.com/panglars/VeRForTe/schema"
)

// exportCmd writes the full enriched report list to a Parquet file.
var exportCmd = &cobra.Command{
	Use:   "export [content-dir]",
	Short: "Export all reports to a Parquet file.",
	Long: `Write every compatibility report, joined with board metadata, to a
Parquet file for downstream analytics. Filters apply the same way as in
the reports command.

Examples:
  # Export everything
  verforte export --output-file reports.parquet

  # Export only reports for one system
  verforte export --system debian --output-file debian.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if cfg.OutputFile == "" {
			contract.LogFatal("export requires --output-file", nil)
		}

		data, err := store.Get(rootCtx)
		if err != nil {
			contract.LogFatal("Cannot load support matrix data", err)
		}

		reports := core.FilterReports(core.EnrichReports(data), schema.ReportFilter{
			CPUs:     cfg.FilterCPUs,
			Vendors:  cfg.FilterVendors,
			Systems:  cfg.FilterSystems,
			Statuses: cfg.FilterStatuses,
			From:     cfg.From,
			To:       cfg.To,
		})
		reports = core.SortReports(reports, schema.ReportSortOptions[0])

		if err := parquet.WriteReportsParquet(parquet.ConvertEnrichedReports(reports), cfg.OutputFile); err != nil {
			contract.LogFatal("Cannot write parquet file", err)
		}
		contract.LogInfo("wrote " + cfg.OutputFile)
	},
}
