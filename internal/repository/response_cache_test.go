package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"sc2pulse-reports/internal/config"
	"sc2pulse-reports/internal/database"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*ResponseCache, *sql.DB) {
	t.Helper()
	cfg := &config.Config{
		DBPath:   filepath.Join(t.TempDir(), "cache.db"),
		CacheTTL: ttl,
	}
	db, err := database.New(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewResponseCache(db, cfg, zerolog.Nop()), db
}

func TestResponseCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, "https://api/character/1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Put(ctx, "https://api/character/1", []byte(`[{"id":1}]`)))

	body, ok, err := cache.Get(ctx, "https://api/character/1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`[{"id":1}]`), body)

	// other urls stay independent
	_, ok, err = cache.Get(ctx, "https://api/character/2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResponseCachePutRefreshes(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "https://api/season/list/all", []byte(`[1]`)))
	require.NoError(t, cache.Put(ctx, "https://api/season/list/all", []byte(`[2]`)))

	body, ok, err := cache.Get(ctx, "https://api/season/list/all")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`[2]`), body)
}

func TestResponseCacheExpiry(t *testing.T) {
	cache, db := newTestCache(t, 30*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "https://api/ladder", []byte(`{}`)))
	time.Sleep(60 * time.Millisecond)

	_, ok, err := cache.Get(ctx, "https://api/ladder")
	require.NoError(t, err)
	assert.False(t, ok)

	purged, err := cache.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	var rows int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM response_cache`).Scan(&rows))
	assert.Equal(t, 0, rows)
}
