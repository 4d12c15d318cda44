package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/panglars/VeRForTe/core"
	"github.com/panglars/VeRForTe/internal/contract"
	"github.com/panglars/VeRForTe/schema"
)

// matrixCmd renders per-category compatibility matrices and comparisons.
var matrixCmd = &cobra.Command{
	Use:   "matrix [content-dir]",
	Short: "Show board-by-system compatibility matrices.",
	Long: `Render the support status grid for every metadata category, one row
per board and one column per system. Selections turn the grid into a
side-by-side comparison.

Examples:
  # The full matrix for every category
  verforte matrix

  # Only the linux category
  verforte matrix --category linux

  # Compare two boards across three systems, hiding rows that agree
  verforte matrix --board "visionfive2,mars" --system "debian,ubuntu,fedora" --hide-identical`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		data, err := store.Get(rootCtx)
		if err != nil {
			contract.LogFatal("Cannot load support matrix data", err)
		}

		matrix := core.BuildMatrix(data)

		var selected []schema.MatrixCategory
		for _, cat := range matrix {
			if cfg.Category != "" && !strings.EqualFold(cat.ID, cfg.Category) {
				continue
			}
			selected = append(selected, core.ApplyCompare(cat, cfg.Compare))
		}
		if cfg.Category != "" && len(selected) == 0 {
			contract.LogFatal("Unknown category "+cfg.Category, nil)
		}

		if err := outw.WriteMatrix(selected, cfg); err != nil {
			contract.LogFatal("Cannot write matrix", err)
		}
	},
}
