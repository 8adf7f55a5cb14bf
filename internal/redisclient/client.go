package redisclient

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shop-service/internal/models"

	"github.com/go-redis/redis/v8"
)

// Client is a read-through cache for product lookups. It is an optional
// fast path: every method degrades to a cache miss on error, and the
// services run without a client at all when Redis is not configured.
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewClient creates a Redis-backed product cache
func NewClient(addr, password string, db int, ttl time.Duration) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{rdb: rdb, ttl: ttl}, nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

// GetProduct returns the cached product and whether it was present.
func (c *Client) GetProduct(ctx context.Context, id int64) (models.Product, bool) {
	raw, err := c.rdb.Get(ctx, productKey(id)).Bytes()
	if err != nil {
		return models.Product{}, false
	}

	var p models.Product
	if err := json.Unmarshal(raw, &p); err != nil {
		return models.Product{}, false
	}
	return p, true
}

// SetProduct caches a product with the configured TTL.
func (c *Client) SetProduct(ctx context.Context, p models.Product) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal product: %w", err)
	}
	return c.rdb.Set(ctx, productKey(p.ID), raw, c.ttl).Err()
}

// InvalidateProduct drops a product from the cache. Called whenever an
// order commit or review rollup mutates the product.
func (c *Client) InvalidateProduct(ctx context.Context, id int64) error {
	return c.rdb.Del(ctx, productKey(id)).Err()
}

func productKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}
