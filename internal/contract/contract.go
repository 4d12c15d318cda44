// Package contract provides interfaces and shared utilities for verforte's internal architecture.
package contract

import (
	"context"

	"github.com/panglars/VeRForTe/schema"
)

// ContentSource abstracts read access to a content tree (the support
// matrix checkout, a package index, or an in-memory fixture). Patterns
// and returned paths are slash-separated and relative to the tree root.
type ContentSource interface {
	// Glob returns the sorted paths matching a filepath.Match-style
	// pattern where wildcards do not cross path separators.
	Glob(pattern string) ([]string, error)

	// ReadFile returns the contents of a single file.
	ReadFile(path string) ([]byte, error)
}

// SiteProvider hands out the aggregated site data. Implementations cache
// the result for the process lifetime; callers must not mutate it.
type SiteProvider interface {
	Get(ctx context.Context) (*schema.SiteData, error)
	Stats() schema.DebugStats
}
