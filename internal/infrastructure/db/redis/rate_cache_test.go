package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autohaus/dealership/internal/core/domain"
)

type fakeKV struct {
	data    map[string]string
	ttls    map[string]time.Duration
	readErr error
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeKV) Get(_ context.Context, key string) *redis.StringCmd {
	if f.readErr != nil {
		return redis.NewStringResult("", f.readErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeKV) Set(_ context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	f.data[key] = value.(string)
	f.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

type countingProvider struct {
	value float64
	err   error
	calls int
}

func (p *countingProvider) Rate(_ context.Context, from, to string) (domain.Rate, error) {
	p.calls++
	if p.err != nil {
		return domain.Rate{}, p.err
	}
	return domain.Rate{From: from, To: to, Value: p.value, Source: domain.RateLive}, nil
}

func TestRateCache_MissThenHit(t *testing.T) {
	store := newFakeKV()
	next := &countingProvider{value: 0.92}
	cache := NewRateCache(store, next, 10*time.Minute, zerolog.Nop())
	ctx := context.Background()

	r, err := cache.Rate(ctx, "USD", "EUR")
	require.NoError(t, err)
	assert.Equal(t, domain.RateLive, r.Source)
	assert.Equal(t, "0.92", store.data["rate:USD:EUR"])
	assert.Equal(t, 10*time.Minute, store.ttls["rate:USD:EUR"])

	r, err = cache.Rate(ctx, "USD", "EUR")
	require.NoError(t, err)
	assert.Equal(t, domain.RateCached, r.Source)
	assert.InDelta(t, 0.92, r.Value, 1e-9)
	assert.Equal(t, 1, next.calls)
}

func TestRateCache_ReadFailureFallsThrough(t *testing.T) {
	store := newFakeKV()
	store.readErr = errors.New("connection reset")
	next := &countingProvider{value: 1.1}
	cache := NewRateCache(store, next, 0, zerolog.Nop())

	r, err := cache.Rate(context.Background(), "EUR", "USD")
	require.NoError(t, err)
	assert.Equal(t, domain.RateLive, r.Source)
	assert.Equal(t, defaultRateTTL, store.ttls["rate:EUR:USD"])
}

func TestRateCache_MalformedEntryIgnored(t *testing.T) {
	store := newFakeKV()
	store.data["rate:USD:GBP"] = "abc"
	next := &countingProvider{value: 0.79}
	cache := NewRateCache(store, next, time.Minute, zerolog.Nop())

	r, err := cache.Rate(context.Background(), "USD", "GBP")
	require.NoError(t, err)
	assert.InDelta(t, 0.79, r.Value, 1e-9)
	assert.Equal(t, "0.79", store.data["rate:USD:GBP"])
}

func TestRateCache_ProviderErrorNotCached(t *testing.T) {
	store := newFakeKV()
	next := &countingProvider{err: domain.ErrRateUnavailable}
	cache := NewRateCache(store, next, time.Minute, zerolog.Nop())

	_, err := cache.Rate(context.Background(), "USD", "JPY")
	assert.ErrorIs(t, err, domain.ErrRateUnavailable)
	assert.Empty(t, store.data)
}
