// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// ReportCache stores computed reports per user until that user mutates data.
type ReportCache interface {
	// Get loads the cached value for key into dest. It reports false on a miss.
	Get(ctx context.Context, userID uuid.UUID, key string, dest any) (bool, error)

	// Set stores value under key for the user.
	Set(ctx context.Context, userID uuid.UUID, key string, value any) error

	// Invalidate drops every cached report of the user.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
