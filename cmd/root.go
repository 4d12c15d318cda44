package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/panglars/VeRForTe/core"
	"github.com/panglars/VeRForTe/core/load"
	"github.com/panglars/VeRForTe/internal/contract"
	"github.com/panglars/VeRForTe/internal/outwriter"
	"github.com/panglars/VeRForTe/schema"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// store caches the aggregated site data for the lifetime of the process.
var store *core.SiteStore

// outw writes results in the configured output format.
var outw = outwriter.NewOutWriter()

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "verforte",
	Short:              "Query RISC-V board and OS compatibility data.",
	Long:               `VeRForTe aggregates board manifests and compatibility reports from a support-matrix content tree and lets you search, filter, compare and export them.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".verforte")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	viper.SetEnvPrefix("VERFORTE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("content-dir", contract.DefaultContentDir)
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("emoji", "yes")
	viper.SetDefault("color", "yes")
	viper.SetDefault("site-dir", contract.DefaultSiteDir)
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ context.Context, _ *cobra.Command, args []string) error {
	// Merge defaults, config file, env and flags. A missing config file is
	// not an error; defaults and flags still apply.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// A positional argument overrides the content directory; viper has no
	// notion of positional args so it is applied here.
	if len(args) == 1 {
		input.ContentDir = args[0]
	}

	// Populates the global cfg from the raw input.
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}

	store = core.NewSiteStore(contract.NewOSSource(cfg.ContentDir))

	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// recognizedVendors loads the package-index device list and returns the
// lowercased vendor set for the vendor-first board sort. An absent or
// unreadable index degrades to an empty set.
func recognizedVendors() map[string]bool {
	if cfg.DeviceIndexDir == "" {
		return nil
	}
	names, err := load.DeviceVendors(contract.NewOSSource(cfg.DeviceIndexDir))
	if err != nil {
		contract.LogWarn("could not read device index, vendor recognition disabled", err)
		return nil
	}
	recognized := make(map[string]bool, len(names))
	for _, name := range names {
		recognized[strings.ToLower(name)] = true
	}
	return recognized
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
