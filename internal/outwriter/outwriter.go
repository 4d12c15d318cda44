// Package outwriter has output and writer logic.
package outwriter

import (
	"github.com/panglars/VeRForTe/internal/contract"
	"github.com/panglars/VeRForTe/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteBoards prints a board list using the configured output format.
func (ow *OutWriter) WriteBoards(boards []schema.BoardMeta, cfg *contract.Config) error {
	return writeBoardResults(boards, cfg)
}

// WriteSystems prints a system list using the configured output format.
func (ow *OutWriter) WriteSystems(systems []*schema.System, cfg *contract.Config) error {
	return writeSystemResults(systems, cfg)
}

// WriteReports prints an enriched report list using the configured output format.
func (ow *OutWriter) WriteReports(reports []schema.EnrichedReport, cfg *contract.Config) error {
	return writeReportResults(reports, cfg)
}

// WriteMatrix prints per-category compatibility matrices using the
// configured output format.
func (ow *OutWriter) WriteMatrix(matrix []schema.MatrixCategory, cfg *contract.Config) error {
	return writeMatrixResults(matrix, cfg)
}

// WriteStatistics prints the site-wide statistics using the configured output format.
func (ow *OutWriter) WriteStatistics(stats schema.SiteStatistics, cfg *contract.Config) error {
	return writeStatisticsResults(stats, cfg)
}

// WriteDebugStats prints the store lifecycle state using the configured output format.
func (ow *OutWriter) WriteDebugStats(stats schema.DebugStats, cfg *contract.Config) error {
	return writeDebugStatsResults(stats, cfg)
}
