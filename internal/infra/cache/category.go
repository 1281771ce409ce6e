package cache

import (
	"context"
	"sync"
	"time"

	"rentimade/internal/pkg/clock"
	"rentimade/internal/usecase/queries"
)

const DefaultCategoryTTL = time.Hour

// CategoryCache fronts the category read store with a time-based cache.
// Admin writes do not invalidate it; staleness is bounded by the TTL
// alone, which keeps the directory endpoint off the database on nearly
// every request.
//
// Concurrent misses may each hit the backing store; the last result
// wins. The directory is small and the fetch is cheap, so the cache
// does not single-flight.
type CategoryCache struct {
	source queries.CategoryReadStore
	clock  clock.Clock
	ttl    time.Duration

	mu        sync.Mutex
	entries   []*queries.CategoryView
	fetchedAt time.Time
	valid     bool
}

func NewCategoryCache(source queries.CategoryReadStore, clk clock.Clock, ttl time.Duration) *CategoryCache {
	if ttl <= 0 {
		ttl = DefaultCategoryTTL
	}
	return &CategoryCache{
		source: source,
		clock:  clk,
		ttl:    ttl,
	}
}

func (c *CategoryCache) FindAll(ctx context.Context) ([]*queries.CategoryView, error) {
	now := c.clock.Now()

	c.mu.Lock()
	if c.valid && now.Sub(c.fetchedAt) < c.ttl {
		cached := c.entries
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	// Fetch outside the lock so a slow load never blocks cache hits.
	fresh, err := c.source.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries = fresh
	c.fetchedAt = now
	c.valid = true
	c.mu.Unlock()

	return fresh, nil
}

// FindBySlug resolves from the cached directory rather than the
// database, so slug lookups share the same staleness bound as listings.
func (c *CategoryCache) FindBySlug(ctx context.Context, slug string) (*queries.CategoryView, error) {
	all, err := c.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, cv := range all {
		if cv.Slug == slug {
			return cv, nil
		}
	}
	return c.source.FindBySlug(ctx, slug)
}
