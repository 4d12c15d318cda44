package core

import (
	"context"
	"sync"
	"time"

	"github.com/panglars/VeRForTe/internal/contract"
	"github.com/panglars/VeRForTe/schema"
)

// inflight carries the result of a load in progress. Late callers block on
// done and share the same outcome as the caller that started the load.
type inflight struct {
	done chan struct{}
	data *schema.SiteData
	err  error
}

// SiteStore caches one aggregated load of a content source. The first Get
// runs the pipeline; concurrent callers during that load coalesce onto the
// single execution, and every later Get returns the cached result. A
// failed load leaves the store empty so the next Get retries.
type SiteStore struct {
	src contract.ContentSource

	mu       sync.Mutex
	cached   *schema.SiteData
	cachedAt time.Time
	loading  *inflight
}

var _ contract.SiteProvider = (*SiteStore)(nil)

// NewSiteStore returns an empty store over the given source.
func NewSiteStore(src contract.ContentSource) *SiteStore {
	return &SiteStore{src: src}
}

// Get returns the cached site data, loading it on first use.
func (s *SiteStore) Get(ctx context.Context) (*schema.SiteData, error) {
	s.mu.Lock()
	if s.cached != nil {
		data := s.cached
		s.mu.Unlock()
		return data, nil
	}
	if fl := s.loading; fl != nil {
		s.mu.Unlock()
		select {
		case <-fl.done:
			return fl.data, fl.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	fl := &inflight{done: make(chan struct{})}
	s.loading = fl
	s.mu.Unlock()

	fl.data, fl.err = LoadSiteData(ctx, s.src)

	s.mu.Lock()
	if fl.err == nil {
		s.cached = fl.data
		s.cachedAt = time.Now().UTC()
	}
	s.loading = nil
	s.mu.Unlock()

	close(fl.done)
	return fl.data, fl.err
}

// Reset discards the cached data. A load in progress is unaffected and
// will still populate the cache when it completes.
func (s *SiteStore) Reset() {
	s.mu.Lock()
	s.cached = nil
	s.cachedAt = time.Time{}
	s.mu.Unlock()
}

// Stats reports the store's lifecycle state for the debug surface.
func (s *SiteStore) Stats() schema.DebugStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := schema.DebugStats{
		IsCached:  s.cached != nil,
		IsLoading: s.loading != nil,
	}
	if s.cached != nil {
		ts := s.cachedAt
		stats.CacheTimestamp = &ts
		stats.TotalBoards = len(s.cached.Boards)
		stats.TotalReports = len(s.cached.AllReports)
	}
	return stats
}
