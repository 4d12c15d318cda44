package cmd

import (
	"github.com/spf13/cobra"

	"github.com/panglars/VeRForTe/internal/contract"
	"github.com/panglars/VeRForTe/internal/sitegen"
)

// siteCmd generates the static HTML site.
var siteCmd = &cobra.Command{
	Use:   "site [content-dir]",
	Short: "Generate the static support matrix site.",
	Long: `Render the aggregated data as a static HTML site: an index with
per-category matrices, one page per board and one page per report with
its markdown body.

Examples:
  # Generate into the default dist directory
  verforte site

  # Generate into a custom directory
  verforte site --site-dir public`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		gen := sitegen.New(contract.NewOSSource(cfg.ContentDir), store, cfg.SiteDir)
		if err := gen.Generate(rootCtx); err != nil {
			contract.LogFatal("Cannot generate site", err)
		}
		contract.LogInfo("site written to " + cfg.SiteDir)
	},
}
