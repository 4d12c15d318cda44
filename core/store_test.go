package core

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panglars/VeRForTe/internal/contract"
)

// countingSource wraps a MapSource and counts Glob calls, so tests can
// prove how many loads actually ran.
type countingSource struct {
	contract.MapSource

	mu    sync.Mutex
	globs int
}

func (c *countingSource) Glob(pattern string) ([]string, error) {
	c.mu.Lock()
	c.globs++
	c.mu.Unlock()
	return c.MapSource.Glob(pattern)
}

func (c *countingSource) globCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.globs
}

func TestSiteStoreCachesLoad(t *testing.T) {
	src := &countingSource{MapSource: fixtureSource()}
	store := NewSiteStore(src)
	ctx := context.Background()

	first, err := store.Get(ctx)
	require.NoError(t, err)

	second, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Same(t, first, second, "later calls return the cached aggregate")

	// Three loaders glob; the metadata loader reads directly.
	assert.Equal(t, 3, src.globCount(), "the pipeline ran exactly once")
}

func TestSiteStoreCoalescesConcurrentLoads(t *testing.T) {
	src := &countingSource{MapSource: fixtureSource()}
	store := NewSiteStore(src)
	ctx := context.Background()

	const callers = 16
	var wg sync.WaitGroup
	results := make([]any, callers)
	for i := range callers {
		wg.Go(func() {
			data, err := store.Get(ctx)
			assert.NoError(t, err)
			results[i] = data
		})
	}
	wg.Wait()

	for i := 1; i < callers; i++ {
		assert.Same(t, results[0], results[i], "all callers share one result")
	}
	assert.Equal(t, 3, src.globCount(), "concurrent callers coalesce onto a single execution")
}

func TestSiteStoreResetForcesReload(t *testing.T) {
	src := &countingSource{MapSource: fixtureSource()}
	store := NewSiteStore(src)
	ctx := context.Background()

	_, err := store.Get(ctx)
	require.NoError(t, err)
	store.Reset()

	_, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, src.globCount())
}

func TestSiteStoreErrorLeavesStoreEmpty(t *testing.T) {
	src := fixtureSource()
	delete(src, "assets/metadata.yml")
	store := NewSiteStore(src)
	ctx := context.Background()

	_, err := store.Get(ctx)
	require.Error(t, err)
	assert.False(t, store.Stats().IsCached, "a failed load is not cached")

	// Restoring the metadata lets the next Get succeed.
	src["assets/metadata.yml"] = fixtureSource()["assets/metadata.yml"]
	data, err := store.Get(ctx)
	require.NoError(t, err)
	assert.NotNil(t, data)
}

func TestSiteStoreStats(t *testing.T) {
	store := NewSiteStore(fixtureSource())

	stats := store.Stats()
	assert.False(t, stats.IsCached)
	assert.False(t, stats.IsLoading)
	assert.Nil(t, stats.CacheTimestamp)

	_, err := store.Get(context.Background())
	require.NoError(t, err)

	stats = store.Stats()
	assert.True(t, stats.IsCached)
	require.NotNil(t, stats.CacheTimestamp)
	assert.Equal(t, 3, stats.TotalBoards)
	assert.Equal(t, 6, stats.TotalReports)
}
