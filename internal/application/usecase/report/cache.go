// Package report contains read-only reporting use cases.
package report

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Felipaof/My-Fluxo-Finance/internal/application/adapter"
)

// cached serves dest from the cache when possible, else fills it with load and stores it.
// Cache failures are logged and fall through to load.
func cached[T any](ctx context.Context, cache adapter.ReportCache, userID uuid.UUID, key string, load func() (*T, error)) (*T, error) {
	if cache != nil {
		var hit T
		found, err := cache.Get(ctx, userID, key, &hit)
		if err != nil {
			slog.WarnContext(ctx, "Report cache read failed", "user_id", userID, "key", key, "error", err)
		} else if found {
			return &hit, nil
		}
	}

	value, err := load()
	if err != nil {
		return nil, err
	}

	if cache != nil {
		if err := cache.Set(ctx, userID, key, value); err != nil {
			slog.WarnContext(ctx, "Report cache write failed", "user_id", userID, "key", key, "error", err)
		}
	}

	return value, nil
}
