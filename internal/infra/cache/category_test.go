//go:build unit

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentimade/internal/pkg/clock"
	"rentimade/internal/pkg/errs"
	"rentimade/internal/usecase/queries"
)

type stubCategorySource struct {
	calls   int
	entries []*queries.CategoryView
	err     error
}

func (s *stubCategorySource) FindAll(_ context.Context) ([]*queries.CategoryView, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.entries, nil
}

func (s *stubCategorySource) FindBySlug(_ context.Context, slug string) (*queries.CategoryView, error) {
	for _, cv := range s.entries {
		if cv.Slug == slug {
			return cv, nil
		}
	}
	return nil, errs.New("category not found")
}

func categoryViews(names ...string) []*queries.CategoryView {
	views := make([]*queries.CategoryView, len(names))
	for i, name := range names {
		views[i] = &queries.CategoryView{ID: uuid.New(), Name: name, Slug: name}
	}
	return views
}

func TestCategoryCache_ServesWarmEntriesWithinTTL(t *testing.T) {
	source := &stubCategorySource{entries: categoryViews("lehenga", "saree")}
	clk := clock.NewMockClock(time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC))
	cache := NewCategoryCache(source, clk, time.Hour)

	first, err := cache.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, 1, source.calls)

	clk.Add(59 * time.Minute)

	second, err := cache.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, source.calls, "a warm cache must not refetch")
}

func TestCategoryCache_RefetchesAfterTTLExpires(t *testing.T) {
	source := &stubCategorySource{entries: categoryViews("lehenga")}
	clk := clock.NewMockClock(time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC))
	cache := NewCategoryCache(source, clk, time.Hour)

	_, err := cache.FindAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, source.calls)

	source.entries = categoryViews("lehenga", "sherwani")
	clk.Add(61 * time.Minute)

	refreshed, err := cache.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls)
	assert.Len(t, refreshed, 2)
}

func TestCategoryCache_WritesDoNotInvalidate(t *testing.T) {
	source := &stubCategorySource{entries: categoryViews("lehenga")}
	clk := clock.NewMockClock(time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC))
	cache := NewCategoryCache(source, clk, time.Hour)

	before, err := cache.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, before, 1)

	// Simulate an admin edit landing after the cache warmed.
	source.entries = categoryViews("lehenga", "gown")
	clk.Add(10 * time.Minute)

	after, err := cache.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, after, 1, "edits stay invisible until the TTL lapses")
	assert.Equal(t, 1, source.calls)
}

func TestCategoryCache_FetchErrorLeavesCacheCold(t *testing.T) {
	source := &stubCategorySource{err: errs.New("db down")}
	clk := clock.NewMockClock(time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC))
	cache := NewCategoryCache(source, clk, time.Hour)

	_, err := cache.FindAll(context.Background())
	require.Error(t, err)

	source.err = nil
	source.entries = categoryViews("saree")

	recovered, err := cache.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, recovered, 1)
	assert.Equal(t, 2, source.calls)
}

func TestCategoryCache_FindBySlugUsesCachedDirectory(t *testing.T) {
	source := &stubCategorySource{entries: categoryViews("lehenga", "saree")}
	clk := clock.NewMockClock(time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC))
	cache := NewCategoryCache(source, clk, time.Hour)

	cv, err := cache.FindBySlug(context.Background(), "saree")
	require.NoError(t, err)
	assert.Equal(t, "saree", cv.Name)
	assert.Equal(t, 1, source.calls)

	again, err := cache.FindBySlug(context.Background(), "lehenga")
	require.NoError(t, err)
	assert.Equal(t, "lehenga", again.Name)
	assert.Equal(t, 1, source.calls)
}
