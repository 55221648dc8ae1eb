package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/platform/obs"
)

// DefaultResultTTL is how long optimization results stay cached. Entries
// are pure recomputable artifacts; expiry costs recomputation, not data.
const DefaultResultTTL = 30 * time.Minute

// Redis-backed cache for computed optimization results.
// Safe for concurrent use; values are JSON-encoded.
type RedisResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisResultCache(client *redis.Client, ttl time.Duration) *RedisResultCache {
	if ttl <= 0 {
		ttl = DefaultResultTTL
	}
	return &RedisResultCache{client: client, ttl: ttl}
}

// Get fetches the cached result for key. A missing key is a miss, not an error.
func (c *RedisResultCache) Get(ctx context.Context, key string) (_ *domain.OptimizationResult, _ bool, err error) {
	defer obs.Time(ctx, "cache.result.Get")(&err)

	if c.client == nil {
		return nil, false, errors.New("result cache: client is nil")
	}
	if key == "" {
		return nil, false, errors.New("get result cache: key must not be empty")
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get result cache: %w", err)
	}

	var result domain.OptimizationResult
	if err := json.Unmarshal(raw, &result); err != nil {
		// A corrupt entry is treated as a miss; it will be overwritten.
		return nil, false, nil
	}

	return &result, true, nil
}

// Put stores a result under key with the configured TTL.
func (c *RedisResultCache) Put(ctx context.Context, key string, result *domain.OptimizationResult) (err error) {
	defer obs.Time(ctx, "cache.result.Put")(&err)

	if c.client == nil {
		return errors.New("result cache: client is nil")
	}
	if key == "" {
		return errors.New("put result cache: key must not be empty")
	}
	if result == nil {
		return errors.New("put result cache: result must be non-nil")
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("put result cache: marshal: %w", err)
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("put result cache: %w", err)
	}

	return nil
}
