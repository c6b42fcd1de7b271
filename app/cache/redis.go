package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultCardTTL = 1 * time.Hour

// Cache wraps a Redis client for serving rendered cards without hitting the
// database. The service runs fine without it; callers treat a nil *Cache as
// disabled.
type Cache struct {
	client *redis.Client
	ctx    context.Context
}

func NewCache(addr string) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("Connected to Redis", "addr", addr)

	return &Cache{
		client: client,
		ctx:    ctx,
	}, nil
}

func cardKey(sku string) string {
	return fmt.Sprintf("card:%s", sku)
}

// GetCard returns the cached card JSON for a SKU; the second result reports a
// hit. Missing cache is silent, not an error.
func (c *Cache) GetCard(sku string) ([]byte, bool, error) {
	data, err := c.client.Get(c.ctx, cardKey(sku)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get card %s from cache: %w", sku, err)
	}
	return data, true, nil
}

// SetCard stores the rendered card JSON for a SKU with a TTL.
func (c *Cache) SetCard(sku string, payload []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultCardTTL
	}
	if err := c.client.Set(c.ctx, cardKey(sku), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache card %s: %w", sku, err)
	}
	return nil
}

// InvalidateCard drops the cached card after a rebuild.
func (c *Cache) InvalidateCard(sku string) error {
	if err := c.client.Del(c.ctx, cardKey(sku)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate card %s: %w", sku, err)
	}
	return nil
}

// Health reports cache reachability and key count.
func (c *Cache) Health() map[string]interface{} {
	health := map[string]interface{}{
		"status": "healthy",
		"type":   "redis",
	}

	if err := c.client.Ping(c.ctx).Err(); err != nil {
		health["status"] = "unhealthy"
		health["error"] = err.Error()
		return health
	}

	if dbSize, err := c.client.DBSize(c.ctx).Result(); err == nil {
		health["key_count"] = dbSize
	}

	return health
}

func (c *Cache) Close() error {
	return c.client.Close()
}
