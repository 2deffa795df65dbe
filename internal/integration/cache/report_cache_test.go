package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Felipaof/My-Fluxo-Finance/config"
)

type summary struct {
	Total int    `json:"total"`
	Label string `json:"label"`
}

func newTestCache(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *redisReportCache) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return server, NewRedisReportCache(client, ttl).(*redisReportCache)
}

func TestRedisReportCacheRoundTrip(t *testing.T) {
	_, c := newTestCache(t, time.Minute)
	ctx := context.Background()
	userID := uuid.New()

	var miss summary
	found, err := c.Get(ctx, userID, "goals", &miss)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, userID, "goals", summary{Total: 3, Label: "metas"}))

	var hit summary
	found, err = c.Get(ctx, userID, "goals", &hit)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, summary{Total: 3, Label: "metas"}, hit)
}

func TestRedisReportCacheInvalidateIsPerUser(t *testing.T) {
	server, c := newTestCache(t, time.Minute)
	ctx := context.Background()
	ana := uuid.New()
	bruno := uuid.New()

	require.NoError(t, c.Set(ctx, ana, "goals", summary{Total: 1}))
	require.NoError(t, c.Set(ctx, ana, "financial:::", summary{Total: 2}))
	require.NoError(t, c.Set(ctx, bruno, "goals", summary{Total: 9}))

	require.NoError(t, c.Invalidate(ctx, ana))

	var dest summary
	found, err := c.Get(ctx, ana, "goals", &dest)
	require.NoError(t, err)
	assert.False(t, found)
	found, err = c.Get(ctx, ana, "financial:::", &dest)
	require.NoError(t, err)
	assert.False(t, found)
	assert.False(t, server.Exists(indexKey(ana)))

	found, err = c.Get(ctx, bruno, "goals", &dest)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 9, dest.Total)
}

func TestRedisReportCacheInvalidateEmpty(t *testing.T) {
	_, c := newTestCache(t, time.Minute)

	assert.NoError(t, c.Invalidate(context.Background(), uuid.New()))
}

func TestRedisReportCacheExpires(t *testing.T) {
	server, c := newTestCache(t, time.Minute)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, c.Set(ctx, userID, "goals", summary{Total: 1}))
	server.FastForward(2 * time.Minute)

	var dest summary
	found, err := c.Get(ctx, userID, "goals", &dest)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisReportCacheReadError(t *testing.T) {
	server, c := newTestCache(t, time.Minute)
	server.Close()

	var dest summary
	_, err := c.Get(context.Background(), uuid.New(), "goals", &dest)
	assert.Error(t, err)
}

func TestNewReportCache(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		c, closeFn := NewReportCache(ctx, &config.RedisConfig{Enabled: false})
		assert.IsType(t, noopReportCache{}, c)
		assert.NoError(t, closeFn())
	})

	t.Run("unreachable falls back to noop", func(t *testing.T) {
		c, closeFn := NewReportCache(ctx, &config.RedisConfig{Enabled: true, URL: "redis://127.0.0.1:1/0"})
		assert.IsType(t, noopReportCache{}, c)
		assert.NoError(t, closeFn())
	})

	t.Run("reachable", func(t *testing.T) {
		server := miniredis.RunT(t)
		c, closeFn := NewReportCache(ctx, &config.RedisConfig{
			Enabled:  true,
			URL:      "redis://" + server.Addr(),
			CacheTTL: time.Minute,
		})
		defer closeFn()
		assert.IsType(t, &redisReportCache{}, c)
	})
}

func TestNoopReportCache(t *testing.T) {
	c := NewNoopReportCache()
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, c.Set(ctx, userID, "goals", summary{Total: 1}))

	var dest summary
	found, err := c.Get(ctx, userID, "goals", &dest)
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, c.Invalidate(ctx, userID))
}
