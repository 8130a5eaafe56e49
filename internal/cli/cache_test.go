package cli

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingagustinmarcel/prop-flow/internal/services"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	cache, err := OpenCache(filepath.Join(t.TempDir(), "index.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func monthEntry(year int, month time.Month, value float64) services.IndexEntry {
	return services.IndexEntry{
		Month: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC),
		Value: value,
	}
}

func TestCache_SaveLoadRoundTrip(t *testing.T) {
	cache := openTestCache(t)

	saved := []services.IndexEntry{
		monthEntry(2025, time.March, 0.037),
		monthEntry(2025, time.January, 0.022),
		monthEntry(2025, time.February, 0.024),
	}
	require.NoError(t, cache.SaveEntries("serie-a", saved))

	loaded, err := cache.LoadEntries("serie-a")
	require.NoError(t, err)
	require.Len(t, loaded, 3)

	// Oldest month first regardless of insert order
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), loaded[0].Month)
	assert.Equal(t, 0.022, loaded[0].Value)
	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), loaded[1].Month)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), loaded[2].Month)
	assert.Equal(t, 0.037, loaded[2].Value)
}

func TestCache_SaveReplacesHistory(t *testing.T) {
	cache := openTestCache(t)

	require.NoError(t, cache.SaveEntries("serie-a", []services.IndexEntry{
		monthEntry(2025, time.January, 0.022),
		monthEntry(2025, time.February, 0.024),
		monthEntry(2025, time.March, 0.037),
	}))

	// A later sync carries a revised February and no March yet
	require.NoError(t, cache.SaveEntries("serie-a", []services.IndexEntry{
		monthEntry(2025, time.January, 0.022),
		monthEntry(2025, time.February, 0.025),
	}))

	loaded, err := cache.LoadEntries("serie-a")
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, 0.025, loaded[1].Value)
}

func TestCache_LoadEntries_UnknownSeriesIsEmpty(t *testing.T) {
	cache := openTestCache(t)

	loaded, err := cache.LoadEntries("serie-desconocida")
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestCache_SeriesAreIndependent(t *testing.T) {
	cache := openTestCache(t)

	require.NoError(t, cache.SaveEntries("serie-a", []services.IndexEntry{
		monthEntry(2025, time.January, 0.022),
	}))
	require.NoError(t, cache.SaveEntries("serie-b", []services.IndexEntry{
		monthEntry(2025, time.January, 0.031),
		monthEntry(2025, time.February, 0.028),
	}))

	a, err := cache.LoadEntries("serie-a")
	require.NoError(t, err)
	b, err := cache.LoadEntries("serie-b")
	require.NoError(t, err)

	assert.Len(t, a, 1)
	assert.Len(t, b, 2)
	assert.Equal(t, 0.022, a[0].Value)
}

func TestCache_LatestEntry(t *testing.T) {
	cache := openTestCache(t)

	_, ok, err := cache.LatestEntry("serie-a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.SaveEntries("serie-a", []services.IndexEntry{
		monthEntry(2024, time.December, 0.028),
		monthEntry(2025, time.January, 0.022),
	}))

	latest, ok, err := cache.LatestEntry("serie-a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), latest.Month)
	assert.Equal(t, 0.022, latest.Value)
}
