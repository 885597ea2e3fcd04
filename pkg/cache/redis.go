package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is a thin wrapper around go-redis used for small hot counters
// (currently the per-user unread-notification count). All methods are
// nil-safe so the service runs fine without Redis configured; callers
// just fall through to the database.
type Client struct {
	rdb *redis.Client
}

// Connect dials Redis at addr. An empty addr or an unreachable server
// yields a nil client, which disables caching rather than failing boot.
func Connect(addr string) *Client {
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("Redis not reachable at %s, running without cache: %v", addr, err)
		return nil
	}

	log.Println("Successfully connected to Redis!")
	return &Client{rdb: rdb}
}

// NewWithRedis wraps an existing go-redis client (used by tests with miniredis).
func NewWithRedis(rdb *redis.Client) *Client {
	return &Client{rdb: rdb}
}

// GetInt64 returns the cached value and whether it was present.
func (c *Client) GetInt64(ctx context.Context, key string) (int64, bool) {
	if c == nil {
		return 0, false
	}
	n, err := c.rdb.Get(ctx, key).Int64()
	if err != nil {
		return 0, false
	}
	return n, true
}

func (c *Client) SetInt64(ctx context.Context, key string, value int64, ttl time.Duration) {
	if c == nil {
		return
	}
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Printf("cache set %s failed: %v", key, err)
	}
}

func (c *Client) Delete(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("cache delete failed: %v", err)
	}
}

// Close releases the underlying connection pool.
func (c *Client) Close() {
	if c == nil {
		return
	}
	if err := c.rdb.Close(); err != nil {
		log.Printf("Error closing Redis connection: %v", err)
	} else {
		log.Println("Redis connection closed.")
	}
}
