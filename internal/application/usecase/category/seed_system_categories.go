// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Felipaof/My-Fluxo-Finance/internal/application/adapter"
	"github.com/Felipaof/My-Fluxo-Finance/internal/domain/entity"
)

// SeedSystemCategoriesOutput represents the output of seeding.
type SeedSystemCategoriesOutput struct {
	Created int
}

// SeedSystemCategoriesUseCase creates the shared categories that are missing.
// Running it again creates nothing.
type SeedSystemCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewSeedSystemCategoriesUseCase creates a new SeedSystemCategoriesUseCase instance.
func NewSeedSystemCategoriesUseCase(categoryRepo adapter.CategoryRepository) *SeedSystemCategoriesUseCase {
	return &SeedSystemCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute seeds entity.SystemCategories.
func (uc *SeedSystemCategoriesUseCase) Execute(ctx context.Context) (*SeedSystemCategoriesOutput, error) {
	created := 0
	for _, sc := range entity.SystemCategories {
		existing, err := uc.categoryRepo.FindByNameAndOwner(ctx, sc.Name, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to look up system category %q: %w", sc.Name, err)
		}
		if existing != nil {
			continue
		}

		if err := uc.categoryRepo.Create(ctx, entity.NewCategory(sc.Name, sc.Kind, sc.Icon, nil)); err != nil {
			return nil, fmt.Errorf("failed to create system category %q: %w", sc.Name, err)
		}
		created++
	}

	if created > 0 {
		slog.InfoContext(ctx, "System categories seeded", "created", created)
	}

	return &SeedSystemCategoriesOutput{Created: created}, nil
}
