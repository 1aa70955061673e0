// Package cache holds the Redis-backed read caches for the dashboard. The
// realtime bridge invalidates them on every order change so staff views
// re-fetch rather than patch state incrementally.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache wraps a Redis client. A nil Cache (or one built without Redis) is
// valid and behaves as a permanent miss, so the app runs without Redis.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New creates a cache over the given Redis client. rdb may be nil.
func New(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb, ttl: 5 * time.Minute}
}

func statsKey(cafeID uint) string  { return fmt.Sprintf("stats:%d", cafeID) }
func ordersKey(cafeID uint) string { return fmt.Sprintf("orders:%d", cafeID) }
func cafeKey(ownerID uint) string  { return fmt.Sprintf("cafe:owner:%d", ownerID) }

// GetJSON loads a cached value into dest. Returns false on miss or error.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		log.Println("cache unmarshal error:", err)
		return false
	}
	return true
}

// SetJSON stores a value under key with the default TTL. Errors are logged
// and swallowed; the cache is best-effort.
func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		log.Println("cache marshal error:", err)
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Println("cache set error:", err)
	}
}

func (c *Cache) del(ctx context.Context, keys ...string) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Println("cache delete error:", err)
	}
}

// StatsKey returns the dashboard statistics cache key for a cafe.
func (c *Cache) StatsKey(cafeID uint) string { return statsKey(cafeID) }

// OrdersKey returns the order list cache key for a cafe.
func (c *Cache) OrdersKey(cafeID uint) string { return ordersKey(cafeID) }

// CafeKey returns the per-owner cafe record cache key.
func (c *Cache) CafeKey(ownerID uint) string { return cafeKey(ownerID) }

// InvalidateStats drops the cached statistics aggregate for a cafe.
func (c *Cache) InvalidateStats(ctx context.Context, cafeID uint) {
	c.del(ctx, statsKey(cafeID))
}

// InvalidateOrders drops the cached order list for a cafe.
func (c *Cache) InvalidateOrders(ctx context.Context, cafeID uint) {
	c.del(ctx, ordersKey(cafeID))
}

// InvalidateCafe drops the cached cafe record for an owner, so a plan
// change is visible on the owner's next dashboard read.
func (c *Cache) InvalidateCafe(ctx context.Context, ownerID uint) {
	c.del(ctx, cafeKey(ownerID))
}
