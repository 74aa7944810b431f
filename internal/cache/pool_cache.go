// Package cache fronts the player-pool repository with redis. Pool stats
// change on the provider's sync cadence, not per draft action, so a short
// TTL keeps sessions cheap to create without serving stale pools for long.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/coachkit/draft-coach/internal/domain"
	"github.com/coachkit/draft-coach/internal/repository"
	"github.com/redis/go-redis/v9"
)

const poolKeyPrefix = "draftcoach:pool:"

// PoolCache implements repository.PlayerPoolRepository by reading through
// redis. Cache failures fall back to the underlying repository; they are
// logged, never surfaced.
type PoolCache struct {
	client *redis.Client
	next   repository.PlayerPoolRepository
	ttl    time.Duration
}

var _ repository.PlayerPoolRepository = (*PoolCache)(nil)

func NewPoolCache(client *redis.Client, next repository.PlayerPoolRepository, ttl time.Duration) *PoolCache {
	return &PoolCache{client: client, next: next, ttl: ttl}
}

func (c *PoolCache) GetByPlayerID(ctx context.Context, playerID string) ([]domain.PoolEntry, error) {
	key := poolKeyPrefix + playerID

	raw, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var entries []domain.PoolEntry
		if err := json.Unmarshal([]byte(raw), &entries); err == nil {
			return entries, nil
		}
		log.Printf("WARN [cache.pool] corrupt cache entry for %s, refetching", playerID)
	} else if err != redis.Nil {
		log.Printf("WARN [cache.pool] redis get failed for %s: %v", playerID, err)
	}

	entries, err := c.next.GetByPlayerID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if blob, err := json.Marshal(entries); err == nil {
		if err := c.client.Set(ctx, key, blob, c.ttl).Err(); err != nil {
			log.Printf("WARN [cache.pool] redis set failed for %s: %v", playerID, err)
		}
	}
	return entries, nil
}

// Upsert writes through to the repository and invalidates the cached pool.
func (c *PoolCache) Upsert(ctx context.Context, playerID string, entries []domain.PoolEntry) error {
	if err := c.next.Upsert(ctx, playerID, entries); err != nil {
		return err
	}
	if err := c.client.Del(ctx, poolKeyPrefix+playerID).Err(); err != nil {
		return fmt.Errorf("pool upserted but cache invalidation failed: %w", err)
	}
	return nil
}
