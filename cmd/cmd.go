// Package cmd defines the command-line interface for verforte.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/panglars/VeRForTe/internal/contract"
	"github.com/panglars/VeRForTe/schema"
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(boardsCmd)
	rootCmd.AddCommand(systemsCmd)
	rootCmd.AddCommand(reportsCmd)
	rootCmd.AddCommand(matrixCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(siteCmd)
	rootCmd.AddCommand(versionCmd)

	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)

	// Persistent flags are shared by every subcommand and bound to viper so
	// the config file and VERFORTE_ env vars can set them too.
	rootCmd.PersistentFlags().String("content-dir", contract.DefaultContentDir, "Path to the support-matrix content tree")
	rootCmd.PersistentFlags().String("device-index", "", "Optional path to a package-index checkout for vendor recognition")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in text output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored status labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().StringP("search", "q", "", "Case-insensitive substring search")
	rootCmd.PersistentFlags().String("sort", "", "Sort option identifier, e.g. vendor-asc or date-desc")
	rootCmd.PersistentFlags().String("cpu", "", "Comma-separated CPU filter")
	rootCmd.PersistentFlags().String("vendor", "", "Comma-separated vendor filter")
	rootCmd.PersistentFlags().String("system", "", "Comma-separated system filter")
	rootCmd.PersistentFlags().String("status", "", "Comma-separated status filter (GOOD, BASIC, CFH, CFT, WIP, CFI)")
	rootCmd.PersistentFlags().String("from", "", "Start of the update date range (YYYY-MM-DD)")
	rootCmd.PersistentFlags().String("to", "", "End of the update date range (YYYY-MM-DD)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Comparison flags only apply to the matrix command
	matrixCmd.Flags().String("category", "", "Restrict to one metadata category, e.g. linux")
	matrixCmd.Flags().String("board", "", "Comma-separated board selection for comparison")
	matrixCmd.Flags().Bool("hide-identical", false, "Hide rows whose selected statuses are all identical or all empty")
	if err := viper.BindPFlags(matrixCmd.Flags()); err != nil {
		contract.LogFatal("Error binding matrix flags", err)
	}

	siteCmd.Flags().String("site-dir", contract.DefaultSiteDir, "Directory to write the generated site into")
	if err := viper.BindPFlags(siteCmd.Flags()); err != nil {
		contract.LogFatal("Error binding site flags", err)
	}
}
