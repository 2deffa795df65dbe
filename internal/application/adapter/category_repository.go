// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/Felipaof/My-Fluxo-Finance/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindVisible retrieves the system categories plus those owned by ownerID, when given.
	// A nil kind returns every kind.
	FindVisible(ctx context.Context, ownerID *uuid.UUID, kind *entity.CategoryKind) ([]*entity.Category, error)

	// FindByNameAndOwner retrieves a category by name and owner. A nil owner looks up system categories.
	// It returns nil without error when no category matches.
	FindByNameAndOwner(ctx context.Context, name string, ownerID *uuid.UUID) (*entity.Category, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountTransactions returns how many transactions reference the category.
	CountTransactions(ctx context.Context, id uuid.UUID) (int64, error)
}
