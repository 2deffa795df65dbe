// Package cache implements the report cache on Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Felipaof/My-Fluxo-Finance/internal/application/adapter"
)

const keyPrefix = "report"

// redisReportCache stores each report under report:<user>:<key> and tracks the
// user's keys in the set report:<user>:keys so they can be dropped together.
type redisReportCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisReportCache creates a report cache backed by client.
func NewRedisReportCache(client redis.UniversalClient, ttl time.Duration) adapter.ReportCache {
	return &redisReportCache{
		client: client,
		ttl:    ttl,
	}
}

// Get loads the cached value for key into dest.
func (c *redisReportCache) Get(ctx context.Context, userID uuid.UUID, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, entryKey(userID, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read report cache: %w", err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("failed to decode cached report: %w", err)
	}
	return true, nil
}

// Set stores value under key for the user.
func (c *redisReportCache) Set(ctx context.Context, userID uuid.UUID, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	entry := entryKey(userID, key)
	index := indexKey(userID)

	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, entry, raw, c.ttl)
		pipe.SAdd(ctx, index, entry)
		pipe.Expire(ctx, index, c.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write report cache: %w", err)
	}
	return nil
}

// Invalidate drops every cached report of the user.
func (c *redisReportCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	index := indexKey(userID)

	entries, err := c.client.SMembers(ctx, index).Result()
	if err != nil {
		return fmt.Errorf("failed to list cached reports: %w", err)
	}

	keys := append(entries, index)
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate report cache: %w", err)
	}
	return nil
}

func entryKey(userID uuid.UUID, key string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, userID, key)
}

func indexKey(userID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:keys", keyPrefix, userID)
}

// noopReportCache never stores anything.
type noopReportCache struct{}

// NewNoopReportCache returns a cache that always misses.
func NewNoopReportCache() adapter.ReportCache {
	return noopReportCache{}
}

func (noopReportCache) Get(context.Context, uuid.UUID, string, any) (bool, error) {
	return false, nil
}

func (noopReportCache) Set(context.Context, uuid.UUID, string, any) error {
	return nil
}

func (noopReportCache) Invalidate(context.Context, uuid.UUID) error {
	return nil
}
