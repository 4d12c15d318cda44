package cmd

import (
	"github.com/spf13/cobra"

	"github.com/panglars/VeRForTe/core"
	"github.com/panglars/VeRForTe/internal/contract"
	"github.com/panglars/VeRForTe/schema"
)

// boardsCmd lists boards with search and sort.
var boardsCmd = &cobra.Command{
	Use:   "boards [content-dir]",
	Short: "List RISC-V boards with vendor and hardware metadata.",
	Long: `Aggregate the content tree and list every board.

Examples:
  # List all boards
  verforte boards

  # Find boards matching a query (product, CPU, supported systems)
  verforte boards --search ubuntu

  # Put boards from recognized vendors first
  verforte boards --sort vendor-asc --device-index ../packages-index

  # Export machine-readable output
  verforte boards --output json --output-file boards.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		data, err := store.Get(rootCtx)
		if err != nil {
			contract.LogFatal("Cannot load support matrix data", err)
		}

		boards := core.SearchBoards(data, cfg.Search)

		opt := schema.BoardSortOptions[0]
		if cfg.SortID != "" {
			found, ok := schema.FindSortOption(schema.BoardSortOptions, cfg.SortID)
			if !ok {
				contract.LogFatal("Unknown board sort option "+cfg.SortID, nil)
			}
			opt = found
		}
		boards = core.SortBoards(boards, opt, recognizedVendors())

		if err := outw.WriteBoards(boards, cfg); err != nil {
			contract.LogFatal("Cannot write boards", err)
		}
	},
}
