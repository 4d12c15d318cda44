package cmd

import (
	"github.com/spf13/cobra"

	"github.com/panglars/VeRForTe/core"
	"github.com/panglars/VeRForTe/internal/contract"
	"github.com/panglars/VeRForTe/schema"
)

// reportsCmd lists compatibility reports with filters and sorting.
var reportsCmd = &cobra.Command{
	Use:   "reports [content-dir]",
	Short: "List compatibility reports with filters.",
	Long: `Aggregate the content tree and list every compatibility report joined
with its board metadata. Filters combine conjunctively; each one accepts a
comma-separated list of values.

Examples:
  # Latest reports first (the default ordering)
  verforte reports

  # Only GOOD and BASIC reports for Debian on boards from two vendors
  verforte reports --status GOOD,BASIC --system debian --vendor "Sipeed,Milk-V"

  # Reports updated within a date range
  verforte reports --from 2024-01-01 --to 2024-06-30

  # Export everything for analysis
  verforte reports --output parquet --output-file reports.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
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

		opt := schema.ReportSortOptions[0]
		if cfg.SortID != "" {
			found, ok := schema.FindSortOption(schema.ReportSortOptions, cfg.SortID)
			if !ok {
				contract.LogFatal("Unknown report sort option "+cfg.SortID, nil)
			}
			opt = found
		}
		reports = core.SortReports(reports, opt)

		if err := outw.WriteReports(reports, cfg); err != nil {
			contract.LogFatal("Cannot write reports", err)
		}
	},
}
