// Package core implements the data aggregation pipeline and the
// filter/sort/compare engine over the aggregated result.
package core

import (
	"context"
	"sync"

	"github.com/panglars/VeRForTe/core/load"
	"github.com/panglars/VeRForTe/internal/contract"
	"github.com/panglars/VeRForTe/schema"
)

// rawCollection holds the settled output of the loader fan-out.
type rawCollection struct {
	boards       []schema.BoardMeta
	mdReports    []schema.Report
	otherReports []schema.Report
	metadata     *schema.SystemMetadata
}

// LoadSiteData runs the full pipeline: scatter the four loaders, join on
// all of them settling, then validate, aggregate, cross-check and compute
// statistics. Per-item problems are logged and excluded inside the
// loaders and validator; only pipeline-wide faults (an unreadable
// metadata document, a failed enumeration) return an error.
func LoadSiteData(ctx context.Context, src contract.ContentSource) (*schema.SiteData, error) {
	raw, err := loadRaw(ctx, src)
	if err != nil {
		return nil, err
	}

	// Validation must precede aggregation so invalid entries never enter
	// the indexes.
	all := mergeReports(raw.mdReports, raw.otherReports)
	valid := validReports(all)

	boards := aggregateBoards(valid, raw.boards)
	systems := aggregateSystems(valid, raw.metadata)

	data := &schema.SiteData{
		Boards:     boards,
		Systems:    systems,
		AllReports: valid,
		Metadata:   raw.metadata,
	}

	if issues := consistencyIssues(data); len(issues) > 0 {
		for _, issue := range issues {
			contract.LogWarn(issue, nil)
		}
	}

	data.Statistics = ComputeStatistics(data)
	return data, nil
}

// loadRaw fans out the independent loaders and joins once every one of
// them has settled. No aggregation starts on a partial load.
func loadRaw(ctx context.Context, src contract.ContentSource) (*rawCollection, error) {
	var (
		wg  sync.WaitGroup
		raw rawCollection

		boardsErr, mdErr, othersErr, metaErr error
	)

	wg.Go(func() { raw.boards, boardsErr = load.Boards(src) })
	wg.Go(func() { raw.mdReports, mdErr = load.MarkdownReports(src) })
	wg.Go(func() { raw.otherReports, othersErr = load.OtherReports(src) })
	wg.Go(func() { raw.metadata, metaErr = load.SystemMetadata(src) })
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, err := range []error{boardsErr, mdErr, othersErr, metaErr} {
		if err != nil {
			return nil, err
		}
	}
	return &raw, nil
}

// mergeReports combines the two report streams into one flat list, tagging
// each record with its provenance.
func mergeReports(markdown, others []schema.Report) []schema.Report {
	merged := make([]schema.Report, 0, len(markdown)+len(others))
	for _, r := range markdown {
		r.Source = schema.ReportSource
		merged = append(merged, r)
	}
	for _, r := range others {
		r.Source = schema.OtherSource
		merged = append(merged, r)
	}
	return merged
}
