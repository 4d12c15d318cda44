package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/panglars/VeRForTe/schema"
)

// Fixed content-tree layout. These mirror the support-matrix repository
// conventions and are not configurable.
const (
	BoardDocName        = "README.md"
	OthersDocName       = "others.yml"
	MetadataDocPath     = "assets/metadata.yml"
	DeviceGlob          = "entities/device/*.toml"
	SecondaryLangSuffix = "_zh" // translated duplicates, excluded from aggregation
)

// Default values for configuration.
const (
	DefaultContentDir = "support-matrix"
	DefaultSiteDir    = "dist"
	DateFormat        = "2006-01-02"
)

// SkipDirs are top-level content directories that are not boards.
var SkipDirs = []string{"assets", ".github", "report-template"}

// Config holds the validated runtime configuration.
type Config struct {
	ContentDir     string
	DeviceIndexDir string // Optional package-index checkout for vendor recognition
	Output         schema.OutputMode
	OutputFile     string
	UseEmojis      bool
	UseColors      bool

	Search string
	SortID string

	FilterCPUs     []string
	FilterVendors  []string
	FilterSystems  []string
	FilterStatuses []string
	From           *time.Time
	To             *time.Time

	Category string
	Compare  schema.CompareSelection

	SiteDir string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct before validation.
type ConfigRawInput struct {
	ContentDir     string `mapstructure:"content-dir"`
	DeviceIndexDir string `mapstructure:"device-index"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Emoji          string `mapstructure:"emoji"`
	Color          string `mapstructure:"color"`

	Search string `mapstructure:"search"`
	Sort   string `mapstructure:"sort"`

	CPUs     string `mapstructure:"cpu"`
	Vendors  string `mapstructure:"vendor"`
	Systems  string `mapstructure:"system"`
	Statuses string `mapstructure:"status"`
	From     string `mapstructure:"from"`
	To       string `mapstructure:"to"`

	Category      string `mapstructure:"category"`
	Boards        string `mapstructure:"board"`
	HideIdentical bool   `mapstructure:"hide-identical"`

	SiteDir string `mapstructure:"site-dir"`
}

// ProcessAndValidate converts raw input into the final Config, rejecting
// values outside the supported sets.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.ContentDir = input.ContentDir
	if cfg.ContentDir == "" {
		return fmt.Errorf("content directory must not be empty")
	}
	cfg.DeviceIndexDir = input.DeviceIndexDir

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output mode %q", input.Output)
	}
	cfg.OutputFile = input.OutputFile
	cfg.UseEmojis = ParseBoolFlag(input.Emoji)
	cfg.UseColors = ParseBoolFlag(input.Color)

	cfg.Search = input.Search
	cfg.SortID = input.Sort

	cfg.FilterCPUs = SplitCommaList(input.CPUs)
	cfg.FilterVendors = SplitCommaList(input.Vendors)
	cfg.FilterSystems = SplitCommaList(input.Systems)
	for _, raw := range SplitCommaList(input.Statuses) {
		status := schema.NormalizeStatus(raw)
		if !schema.IsValidStatus(status) {
			return fmt.Errorf("invalid status filter %q", raw)
		}
		cfg.FilterStatuses = append(cfg.FilterStatuses, string(status))
	}

	var err error
	if cfg.From, err = parseOptionalDate(input.From); err != nil {
		return fmt.Errorf("invalid --from date: %w", err)
	}
	if cfg.To, err = parseOptionalDate(input.To); err != nil {
		return fmt.Errorf("invalid --to date: %w", err)
	}

	cfg.Category = input.Category
	cfg.Compare = schema.CompareSelection{
		Boards:        SplitCommaList(input.Boards),
		Systems:       SplitCommaList(input.Systems),
		HideIdentical: input.HideIdentical,
	}

	cfg.SiteDir = input.SiteDir
	if cfg.SiteDir == "" {
		cfg.SiteDir = DefaultSiteDir
	}

	return nil
}

// parseOptionalDate parses a YYYY-MM-DD value, returning nil for empty input.
func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ParseBoolFlag interprets yes/no style flag values. Anything other than
// an explicit negative counts as true.
func ParseBoolFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "no", "false", "0", "off":
		return false
	default:
		return true
	}
}

// SplitCommaList splits a comma-separated flag value into trimmed,
// non-empty elements.
func SplitCommaList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsSkippedDir reports whether a top-level content directory is a known
// non-board directory such as assets or the report template.
func IsSkippedDir(dir string) bool {
	for _, skip := range SkipDirs {
		if dir == skip {
			return true
		}
	}
	return false
}
