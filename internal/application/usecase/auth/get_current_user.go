// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Felipaof/My-Fluxo-Finance/internal/application/adapter"
	"github.com/Felipaof/My-Fluxo-Finance/internal/domain/entity"
	domainerror "github.com/Felipaof/My-Fluxo-Finance/internal/domain/error"
)

// GetCurrentUserInput represents the input for loading the authenticated user.
type GetCurrentUserInput struct {
	UserID uuid.UUID
}

// GetCurrentUserOutput represents the output of loading the authenticated user.
type GetCurrentUserOutput struct {
	User *entity.User
}

// GetCurrentUserUseCase resolves the profile behind a verified token.
type GetCurrentUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetCurrentUserUseCase creates a new GetCurrentUserUseCase instance.
func NewGetCurrentUserUseCase(userRepo adapter.UserRepository) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{userRepo: userRepo}
}

// Execute loads the user. A token whose subject no longer exists is rejected.
func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, input GetCurrentUserInput) (*GetCurrentUserOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &GetCurrentUserOutput{User: user}, nil
}
