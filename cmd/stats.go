package cmd

import (
	"github.com/spf13/cobra"

	"github.com/panglars/VeRForTe/internal/contract"
)

// statsCmd prints site-wide statistics.
var statsCmd = &cobra.Command{
	Use:   "stats [content-dir]",
	Short: "Show site-wide support statistics.",
	Long: `Print the derived statistics of one aggregated load: totals, report
counts by status, boards by vendor and systems by category.

Examples:
  # Human-readable summary
  verforte stats

  # Machine-readable output for dashboards
  verforte stats --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		data, err := store.Get(rootCtx)
		if err != nil {
			contract.LogFatal("Cannot load support matrix data", err)
		}

		if err := outw.WriteStatistics(data.Statistics, cfg); err != nil {
			contract.LogFatal("Cannot write statistics", err)
		}
	},
}
