package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/coachkit/draft-coach/internal/cache"
	"github.com/coachkit/draft-coach/internal/domain"
	"github.com/coachkit/draft-coach/internal/repository/memory"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T) (*cache.PoolCache, *miniredis.Miniredis, *repositoryHarness) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	next := &repositoryHarness{inner: memory.NewPlayerPoolRepository()}
	return cache.NewPoolCache(client, next, time.Minute), mr, next
}

// repositoryHarness counts calls that reach the backing store.
type repositoryHarness struct {
	inner interface {
		Upsert(ctx context.Context, playerID string, entries []domain.PoolEntry) error
		GetByPlayerID(ctx context.Context, playerID string) ([]domain.PoolEntry, error)
	}
	gets int
}

func (h *repositoryHarness) Upsert(ctx context.Context, playerID string, entries []domain.PoolEntry) error {
	return h.inner.Upsert(ctx, playerID, entries)
}

func (h *repositoryHarness) GetByPlayerID(ctx context.Context, playerID string) ([]domain.PoolEntry, error) {
	h.gets++
	return h.inner.GetByPlayerID(ctx, playerID)
}

func TestPoolCache_ReadThrough(t *testing.T) {
	c, _, next := newCache(t)
	ctx := context.Background()

	entries := []domain.PoolEntry{{ChampionID: "Jinx", GamesPlayed: 11, WinRate: 72.7}}
	require.NoError(t, next.Upsert(ctx, "p1", entries))

	got, err := c.GetByPlayerID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, entries, got)
	assert.Equal(t, 1, next.gets)

	// Second read is served from the cache.
	got, err = c.GetByPlayerID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, entries, got)
	assert.Equal(t, 1, next.gets, "second read should not hit the store")
}

func TestPoolCache_TTLExpiry(t *testing.T) {
	c, mr, next := newCache(t)
	ctx := context.Background()

	require.NoError(t, next.Upsert(ctx, "p1", []domain.PoolEntry{{ChampionID: "Ahri", GamesPlayed: 5, WinRate: 60}}))

	_, err := c.GetByPlayerID(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, 1, next.gets)

	mr.FastForward(2 * time.Minute)

	_, err = c.GetByPlayerID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, next.gets, "expired entry should refetch")
}

func TestPoolCache_CorruptEntryRefetches(t *testing.T) {
	c, mr, next := newCache(t)
	ctx := context.Background()

	entries := []domain.PoolEntry{{ChampionID: "Thresh", GamesPlayed: 22, WinRate: 59.1}}
	require.NoError(t, next.Upsert(ctx, "p1", entries))
	require.NoError(t, mr.Set("draftcoach:pool:p1", "{not json"))

	got, err := c.GetByPlayerID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, entries, got)
	assert.Equal(t, 1, next.gets)
}

func TestPoolCache_UpsertInvalidates(t *testing.T) {
	c, mr, next := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Upsert(ctx, "p1", []domain.PoolEntry{{ChampionID: "Ornn", GamesPlayed: 9, WinRate: 55}}))

	// Warm the cache, then overwrite through the cache.
	_, err := c.GetByPlayerID(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, mr.Exists("draftcoach:pool:p1"))

	updated := []domain.PoolEntry{{ChampionID: "Ornn", GamesPlayed: 12, WinRate: 58.3}}
	require.NoError(t, c.Upsert(ctx, "p1", updated))
	assert.False(t, mr.Exists("draftcoach:pool:p1"), "upsert must drop the cached pool")

	got, err := c.GetByPlayerID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, updated, got)
	assert.Equal(t, 2, next.gets)
}

func TestPoolCache_MissingPlayerPassesThrough(t *testing.T) {
	c, _, _ := newCache(t)

	got, err := c.GetByPlayerID(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, got)
}
