// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Felipaof/My-Fluxo-Finance/internal/domain/entity"
)

// TokenClaims represents the claims contained in a JWT token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	Name      string
	ExpiresAt time.Time
}

// IssuedToken is a signed bearer credential with its expiry.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenService defines the interface for JWT token operations.
// Verification is stateless: expiry is the only invalidation.
type TokenService interface {
	// GenerateToken signs a token for the given user.
	GenerateToken(ctx context.Context, user *entity.User) (*IssuedToken, error)

	// ValidateToken validates a token and returns its claims.
	ValidateToken(ctx context.Context, token string) (*TokenClaims, error)
}
