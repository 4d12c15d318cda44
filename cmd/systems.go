package cmd

import (
	"github.com/spf13/cobra"

	"github.com/panglars/VeRForTe/core"
	"github.com/panglars/VeRForTe/internal/contract"
)

// systemsCmd lists operating systems with their report coverage.
var systemsCmd = &cobra.Command{
	Use:   "systems [content-dir]",
	Short: "List operating systems with report coverage.",
	Long: `Aggregate the content tree and list every operating system that has
at least one compatibility report, with its display name and counts.

Examples:
  # List all systems
  verforte systems

  # Find systems by identifier or display name
  verforte systems --search bsd`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		data, err := store.Get(rootCtx)
		if err != nil {
			contract.LogFatal("Cannot load support matrix data", err)
		}

		systems := core.SearchSystems(data, cfg.Search)

		if err := outw.WriteSystems(systems, cfg); err != nil {
			contract.LogFatal("Cannot write systems", err)
		}
	},
}
