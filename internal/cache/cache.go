// Package cache is the Redis pass-through cache for journal lists, AI
// narrations and nearby-places lookups. It memoizes strings only; the richer
// payload types are never cached. A nil *Cache is valid and caches nothing,
// so the service runs fine without Redis.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// NarrationTTL bounds staleness of cached AI narrations. Journals
	// change at most daily, so ten minutes never shows visibly stale
	// numbers.
	NarrationTTL = 10 * time.Minute
	JournalsTTL  = 10 * time.Minute
	NearbyTTL    = 24 * time.Hour
)

type Cache struct {
	rdb    *redis.Client
	logger *slog.Logger
}

func New(ctx context.Context, redisURL string, logger *slog.Logger) (*Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Cache{rdb: rdb, logger: logger}, nil
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}

// GetString returns the cached value and whether it was present. Redis
// errors count as a miss; the cache is never load-bearing.
func (c *Cache) GetString(ctx context.Context, key string) (string, bool) {
	if c == nil {
		return "", false
	}
	val, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		c.logger.Warn("cache get failed", "key", key, "error", err)
		return "", false
	}
	return val, true
}

func (c *Cache) SetString(ctx context.Context, key, value string, ttl time.Duration) {
	if c == nil {
		return
	}
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		c.logger.Warn("cache set failed", "key", key, "error", err)
	}
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("cache delete failed", "keys", keys, "error", err)
	}
}

// JournalsKey caches a user's full journal list.
func JournalsKey(userID uuid.UUID) string {
	return fmt.Sprintf("horizon:journals:%s", userID)
}

// OverviewKey caches the AI narration for a (user, time range) pair.
func OverviewKey(userID uuid.UUID, timeRange string) string {
	return fmt.Sprintf("ai-report-overview:%s:%s", userID, timeRange)
}

// NearbyKey buckets coordinates to three decimals (~100 m) so close lookups
// share a cache slot.
func NearbyKey(lat, lon float64) string {
	return fmt.Sprintf("nearby:%.3f:%.3f", lat, lon)
}

// UserKeys lists every cache entry invalidated when a user's journal
// changes.
func UserKeys(userID uuid.UUID) []string {
	return []string{
		JournalsKey(userID),
		OverviewKey(userID, "7d"),
		OverviewKey(userID, "30d"),
		OverviewKey(userID, "90d"),
	}
}
