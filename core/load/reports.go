package load

import (
	"fmt"
	"strings"
	"time"

	"github.com/panglars/VeRForTe/internal/contract"
	"github.com/panglars/VeRForTe/schema"
)

// reportDateFormats are tried in order when parsing last_update values.
var reportDateFormats = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// MarkdownReports enumerates the per-board-per-system report documents and
// returns the parsed records. Secondary-language duplicates are skipped by
// filename suffix; records missing sys or status are dropped with a
// warning. Status is uppercased here; membership in the valid set is the
// validator's responsibility.
func MarkdownReports(src contract.ContentSource) ([]schema.Report, error) {
	paths, err := src.Glob("*/*/*.md")
	if err != nil {
		return nil, fmt.Errorf("enumerate report documents: %w", err)
	}

	reports := make([]schema.Report, 0, len(paths))
	for _, p := range paths {
		parts := strings.Split(p, "/")
		if len(parts) != 3 {
			continue
		}
		boardID, fileName := parts[0], strings.TrimSuffix(parts[2], ".md")
		if contract.IsSkippedDir(boardID) {
			continue
		}
		if strings.HasSuffix(fileName, contract.SecondaryLangSuffix) {
			continue
		}

		content, err := src.ReadFile(p)
		if err != nil {
			contract.LogWarn("cannot read report document "+p, err)
			continue
		}

		fm, ok := ExtractFrontmatter(content)
		if !ok || fm["sys"] == "" || fm["status"] == "" {
			contract.LogWarn("invalid front-matter for "+p, nil)
			continue
		}

		reports = append(reports, schema.Report{
			Sys:        fm["sys"],
			SysVer:     fm["sys_ver"],
			SysVar:     fm["sys_var"],
			Status:     schema.NormalizeStatus(fm["status"]),
			LastUpdate: parseReportDate(p, fm["last_update"]),
			BoardID:    boardID,
			FileName:   fileName,
		})
	}
	return reports, nil
}

// parseReportDate parses a last_update value, returning nil when the field
// is absent or not a recognizable date.
func parseReportDate(path, value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range reportDateFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	contract.LogWarn(fmt.Sprintf("unrecognized last_update %q in %s", value, path), nil)
	return nil
}
