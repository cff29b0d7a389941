package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/autohaus/dealership/internal/core/domain"
	"github.com/autohaus/dealership/internal/core/ports"
)

const defaultRateTTL = time.Hour

// kv is the subset of redis.Cmdable the cache needs.
type kv interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// RateCache decorates a RateProvider with a Redis read-through cache.
// Key format: rate:<FROM>:<TO>
type RateCache struct {
	client kv
	next   ports.RateProvider
	ttl    time.Duration
	log    zerolog.Logger
}

func NewRateCache(client kv, next ports.RateProvider, ttl time.Duration, log zerolog.Logger) *RateCache {
	if ttl <= 0 {
		ttl = defaultRateTTL
	}
	return &RateCache{client: client, next: next, ttl: ttl, log: log}
}

// Rate serves a cached value when present. Cache failures never fail the
// lookup; they fall through to the wrapped provider.
func (c *RateCache) Rate(ctx context.Context, from, to string) (domain.Rate, error) {
	key := c.key(from, to)

	raw, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		if v, perr := strconv.ParseFloat(raw, 64); perr == nil && v > 0 {
			return domain.Rate{From: from, To: to, Value: v, Source: domain.RateCached, FetchedAt: time.Now().UTC()}, nil
		}
		c.log.Warn().Str("key", key).Str("value", raw).Msg("discarding malformed cached rate")
	case !errors.Is(err, redis.Nil):
		c.log.Warn().Err(err).Str("key", key).Msg("rate cache read failed")
	}

	rate, err := c.next.Rate(ctx, from, to)
	if err != nil {
		return domain.Rate{}, err
	}

	value := strconv.FormatFloat(rate.Value, 'f', -1, 64)
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("rate cache write failed")
	}
	return rate, nil
}

func (c *RateCache) key(from, to string) string {
	return fmt.Sprintf("rate:%s:%s", from, to)
}
