package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const distributionKey = "feedback:rating_distribution"

// DistributionCache stores the last computed rating distribution
type DistributionCache interface {
	Get(ctx context.Context) ([]int, bool, error)
	Set(ctx context.Context, counts []int) error
	Invalidate(ctx context.Context) error
}

type redisDistributionCache struct {
	client redis.Cmdable
	ttl    time.Duration
	log    *zap.Logger
}

func NewRedisDistributionCache(client redis.Cmdable, ttl time.Duration, log *zap.Logger) DistributionCache {
	return &redisDistributionCache{
		client: client,
		ttl:    ttl,
		log:    log.With(zap.String("cache", "distribution")),
	}
}

func (c *redisDistributionCache) Get(ctx context.Context) ([]int, bool, error) {
	raw, err := c.client.Get(ctx, distributionKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get cached distribution: %w", err)
	}

	var counts []int
	if err := json.Unmarshal(raw, &counts); err != nil {
		c.log.Warn("Discarding malformed cached distribution", zap.Error(err))
		return nil, false, nil
	}

	return counts, true, nil
}

func (c *redisDistributionCache) Set(ctx context.Context, counts []int) error {
	raw, err := json.Marshal(counts)
	if err != nil {
		return fmt.Errorf("encode distribution: %w", err)
	}

	if err := c.client.Set(ctx, distributionKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache distribution: %w", err)
	}
	return nil
}

func (c *redisDistributionCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, distributionKey).Err(); err != nil {
		return fmt.Errorf("invalidate distribution: %w", err)
	}
	return nil
}

// NoopDistributionCache is used when no redis is configured
type NoopDistributionCache struct{}

func (NoopDistributionCache) Get(context.Context) ([]int, bool, error) { return nil, false, nil }
func (NoopDistributionCache) Set(context.Context, []int) error          { return nil }
func (NoopDistributionCache) Invalidate(context.Context) error          { return nil }
