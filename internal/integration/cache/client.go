// Package cache implements the report cache on Redis.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Felipaof/My-Fluxo-Finance/config"
	"github.com/Felipaof/My-Fluxo-Finance/internal/application/adapter"
)

// NewRedisClient parses the configured URL and checks the server answers.
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// NewReportCache returns the Redis cache when it is enabled and reachable,
// and a no-op cache otherwise. The returned close func is never nil.
func NewReportCache(ctx context.Context, cfg *config.RedisConfig) (adapter.ReportCache, func() error) {
	noop := func() error { return nil }

	if !cfg.Enabled || cfg.URL == "" {
		slog.Info("Report cache disabled")
		return NewNoopReportCache(), noop
	}

	client, err := NewRedisClient(ctx, cfg)
	if err != nil {
		slog.Warn("Redis unavailable, report cache disabled", "error", err)
		return NewNoopReportCache(), noop
	}

	slog.Info("Report cache enabled", "ttl", cfg.CacheTTL.String())
	return NewRedisReportCache(client, cfg.CacheTTL), client.Close
}
