package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, fake *fakeCatalog) *Service {
	t.Helper()
	return NewService(Options{
		BaseURL:  fake.url(),
		Timeout:  2 * time.Second,
		MaxNames: 1000,
	})
}

func TestSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("substring filter keeps index order", func(t *testing.T) {
		fake := newFakeCatalog(t, "charmander", "charmeleon", "bulbasaur")
		svc := newTestService(t, fake)

		page, err := svc.Search(ctx, "char", 1, 10)
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.Equal(t, "charmander", page.Items[0].Name)
		assert.Equal(t, "charmeleon", page.Items[1].Name)
		assert.Equal(t, 2, page.Total)
		assert.False(t, page.HasMore)
	})

	t.Run("filter is case-insensitive", func(t *testing.T) {
		fake := newFakeCatalog(t, "charmander", "bulbasaur")
		svc := newTestService(t, fake)

		page, err := svc.Search(ctx, "CHAR", 1, 10)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "charmander", page.Items[0].Name)
	})

	t.Run("no match yields empty page, not error", func(t *testing.T) {
		fake := newFakeCatalog(t, "charmander", "bulbasaur")
		svc := newTestService(t, fake)

		page, err := svc.Search(ctx, "zzz", 1, 10)
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, 0, page.Total)
		assert.False(t, page.HasMore)
	})

	t.Run("unresolvable names are dropped, not fatal", func(t *testing.T) {
		fake := newFakeCatalog(t, "abra", "kadabra", "alakazam")
		fake.fail("kadabra")
		svc := newTestService(t, fake)

		page, err := svc.Search(ctx, "", 1, 10)
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.Equal(t, "abra", page.Items[0].Name)
		assert.Equal(t, "alakazam", page.Items[1].Name)
	})

	t.Run("empty query matches the whole index", func(t *testing.T) {
		fake := newFakeCatalog(t, "a1", "b2", "c3")
		svc := newTestService(t, fake)

		page, err := svc.Search(ctx, "", 1, 10)
		require.NoError(t, err)
		assert.Len(t, page.Items, 3)
	})

	t.Run("repeat search reuses both caches", func(t *testing.T) {
		fake := newFakeCatalog(t, "eevee", "flareon")
		svc := newTestService(t, fake)

		_, err := svc.Search(ctx, "eevee", 1, 10)
		require.NoError(t, err)
		_, err = svc.Search(ctx, "eevee", 1, 10)
		require.NoError(t, err)

		assert.Equal(t, 1, fake.listCallCount())
		assert.Equal(t, 1, fake.entryCallCount("eevee"))
	})

	t.Run("pagination applies after resolution", func(t *testing.T) {
		fake := newFakeCatalog(t, "p1", "p2", "p3", "p4", "p5")
		svc := newTestService(t, fake)

		page, err := svc.Search(ctx, "p", 2, 2)
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.Equal(t, "p3", page.Items[0].Name)
		assert.Equal(t, "p4", page.Items[1].Name)
		assert.Equal(t, 5, page.Total)
		assert.True(t, page.HasMore)
	})
}

func TestServiceLookup(t *testing.T) {
	ctx := context.Background()
	fake := newFakeCatalog(t, "pikachu")
	svc := newTestService(t, fake)

	entry, err := svc.Lookup(ctx, "Pikachu")
	require.NoError(t, err)
	assert.Equal(t, "pikachu", entry.Name)

	// Cached: no second remote call even with different casing.
	_, err = svc.Lookup(ctx, "PIKACHU")
	require.NoError(t, err)
	assert.Equal(t, 1, fake.entryCallCount("pikachu"))

	// Point lookups fail visibly.
	_, err = svc.Lookup(ctx, "missingno")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServiceBrowse(t *testing.T) {
	ctx := context.Background()
	fake := newFakeCatalog(t, "b1", "b2", "b3", "b4", "b5")
	svc := newTestService(t, fake)

	t.Run("live page with remote total", func(t *testing.T) {
		page, err := svc.Browse(ctx, 2, 2)
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.Equal(t, "b3", page.Items[0].Name)
		assert.Equal(t, "b4", page.Items[1].Name)
		assert.Equal(t, 5, page.Total)
		assert.True(t, page.HasMore)
	})

	t.Run("last page has no more", func(t *testing.T) {
		page, err := svc.Browse(ctx, 3, 2)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.False(t, page.HasMore)
	})

	t.Run("failed resolutions are dropped", func(t *testing.T) {
		fake.fail("b1")
		page, err := svc.Browse(ctx, 1, 2)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "b2", page.Items[0].Name)
		// Remote total is untouched by local drops.
		assert.Equal(t, 5, page.Total)
	})
}
