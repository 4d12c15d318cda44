package cmd

import (
	"github.com/spf13/cobra"

	"github.com/panglars/VeRForTe/internal/contract"
)

// cacheCmd inspects the in-process data cache. This is a development aid:
// the cache lives only as long as the process, so status is mostly useful
// from long-running surfaces like the MCP server.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect the in-process site data cache",
	Long: `Inspect or reset the cached aggregate of one content load.

Subcommands:
  status - Show whether data is cached or loading, with counts
  clear  - Discard the cached data so the next query reloads`,
}

// cacheStatusCmd shows the store lifecycle state.
var cacheStatusCmd = &cobra.Command{
	Use:     "status [content-dir]",
	Short:   "Show cache state and counts",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := outw.WriteDebugStats(store.Stats(), cfg); err != nil {
			contract.LogFatal("Cannot write cache status", err)
		}
	},
}

// cacheClearCmd discards the cached data.
var cacheClearCmd = &cobra.Command{
	Use:     "clear [content-dir]",
	Short:   "Discard the cached site data",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store.Reset()
		contract.LogInfo("cache cleared")
	},
}
