package load

import (
	"fmt"
	"strings"

	"github.com/panglars/VeRForTe/internal/contract"
	"github.com/panglars/VeRForTe/schema"
)

// Boards enumerates every board README under the content root and returns
// the parsed metadata. Records without a vendor are dropped with a
// warning; other fields default to the placeholder. Individual file
// failures never abort the enumeration.
func Boards(src contract.ContentSource) ([]schema.BoardMeta, error) {
	paths, err := src.Glob("*/" + contract.BoardDocName)
	if err != nil {
		return nil, fmt.Errorf("enumerate board documents: %w", err)
	}

	boards := make([]schema.BoardMeta, 0, len(paths))
	for _, p := range paths {
		dir, _, ok := strings.Cut(p, "/")
		if !ok || contract.IsSkippedDir(dir) {
			continue
		}

		content, err := src.ReadFile(p)
		if err != nil {
			contract.LogWarn("cannot read board document "+p, err)
			continue
		}

		fm, ok := ExtractFrontmatter(content)
		if !ok || fm["vendor"] == "" {
			contract.LogWarn("invalid front-matter for board "+dir, nil)
			continue
		}

		boards = append(boards, schema.BoardMeta{
			Dir:     dir,
			Vendor:  fm["vendor"],
			Product: orPlaceholder(fm["product"]),
			CPU:     orPlaceholder(fm["cpu"]),
			CPUCore: orPlaceholder(fm["cpu_core"]),
			RAM:     orPlaceholder(fm["ram"]),
		})
	}
	return boards, nil
}

// orPlaceholder substitutes the fixed placeholder for absent free-text fields.
func orPlaceholder(v string) string {
	if v == "" {
		return schema.NotSpecified
	}
	return v
}
