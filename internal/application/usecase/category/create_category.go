// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Felipaof/My-Fluxo-Finance/internal/application/adapter"
	"github.com/Felipaof/My-Fluxo-Finance/internal/domain/entity"
	domainerror "github.com/Felipaof/My-Fluxo-Finance/internal/domain/error"
)

const (
	// MinCategoryNameLength is the minimum allowed length for category names.
	MinCategoryNameLength = 2
	// MaxCategoryNameLength is the maximum allowed length for category names.
	MaxCategoryNameLength = 100
	// MaxIconLength is the maximum allowed length for icons.
	MaxIconLength = 50
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name    string
	Kind    entity.CategoryKind
	Icon    string // Optional, defaults to the kind's icon
	OwnerID uuid.UUID
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}

	if !input.Kind.IsValid() {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryKind,
			"category kind must be 'expense' or 'income'",
			domainerror.ErrInvalidCategoryKind,
		)
	}

	icon, err := validateIcon(input.Icon)
	if err != nil {
		return nil, err
	}
	if icon == "" {
		icon = input.Kind.DefaultIcon()
	}

	// Names are unique per owner only; a user may shadow a system category name
	ownerID := input.OwnerID
	existing, err := uc.categoryRepo.FindByNameAndOwner(ctx, name, &ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name existence: %w", err)
	}
	if existing != nil {
		return nil, nameExistsError()
	}

	category := entity.NewCategory(name, input.Kind, icon, &ownerID)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNameExists) {
			return nil, nameExistsError()
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}

// validateName trims the name and checks its length in characters.
func validateName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	length := len([]rune(name))
	if length < MinCategoryNameLength || length > MaxCategoryNameLength {
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryName,
			fmt.Sprintf("category name must have between %d and %d characters", MinCategoryNameLength, MaxCategoryNameLength),
			domainerror.ErrInvalidCategoryName,
		)
	}
	return name, nil
}

func validateIcon(raw string) (string, error) {
	icon := strings.TrimSpace(raw)
	if len([]rune(icon)) > MaxIconLength {
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryFields,
			fmt.Sprintf("icon must not exceed %d characters", MaxIconLength),
			nil,
		)
	}
	return icon, nil
}

func nameExistsError() error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeCategoryNameExists,
		"a category with this name already exists",
		domainerror.ErrCategoryNameExists,
	)
}

func notFoundError() error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeCategoryNotFound,
		"category not found",
		domainerror.ErrCategoryNotFound,
	)
}

func notAuthorizedError() error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeNotAuthorizedCategory,
		"not authorized to modify this category",
		domainerror.ErrNotAuthorizedToModifyCategory,
	)
}

// findOwned loads a category and checks that the caller owns it.
// System categories are read-only for every user.
func findOwned(ctx context.Context, repo adapter.CategoryRepository, id, callerID uuid.UUID) (*entity.Category, error) {
	category, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if !category.IsOwnedBy(callerID) {
		return nil, notAuthorizedError()
	}

	return category, nil
}
