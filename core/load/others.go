package load

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/panglars/VeRForTe/internal/contract"
	"github.com/panglars/VeRForTe/schema"
)

// otherEntry is the provisional shape of one item in an others.yml sequence.
type otherEntry struct {
	Sys    string `yaml:"sys"`
	SysVer string `yaml:"sys_ver"`
	SysVar string `yaml:"sys_var"`
	Status string `yaml:"status"`
}

// OtherReports enumerates the bulk others.yml documents and returns the
// parsed records. These entries carry no per-document date or file name,
// so LastUpdate stays nil and no deep link is derivable. A document that
// is not a YAML sequence is skipped with a warning; so is any item
// missing sys or status.
func OtherReports(src contract.ContentSource) ([]schema.Report, error) {
	paths, err := src.Glob("*/" + contract.OthersDocName)
	if err != nil {
		return nil, fmt.Errorf("enumerate bulk report documents: %w", err)
	}

	var reports []schema.Report
	for _, p := range paths {
		boardID, _, ok := strings.Cut(p, "/")
		if !ok || contract.IsSkippedDir(boardID) {
			continue
		}

		content, err := src.ReadFile(p)
		if err != nil {
			contract.LogWarn("cannot read bulk report document "+p, err)
			continue
		}

		var entries []otherEntry
		if err := yaml.Unmarshal(content, &entries); err != nil {
			contract.LogWarn("invalid YAML sequence in "+p, err)
			continue
		}

		for i, entry := range entries {
			if entry.Sys == "" || entry.Status == "" {
				contract.LogWarn(fmt.Sprintf("item %d in %s is missing sys or status", i, p), nil)
				continue
			}
			reports = append(reports, schema.Report{
				Sys:     entry.Sys,
				SysVer:  entry.SysVer,
				SysVar:  entry.SysVar,
				Status:  schema.NormalizeStatus(entry.Status),
				BoardID: boardID,
			})
		}
	}
	return reports, nil
}
