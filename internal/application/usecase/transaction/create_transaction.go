// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Felipaof/My-Fluxo-Finance/internal/application/adapter"
	"github.com/Felipaof/My-Fluxo-Finance/internal/domain/entity"
	domainerror "github.com/Felipaof/My-Fluxo-Finance/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
	MaxDescriptionLength = 255
	// AmountPlaces is the number of decimal places amounts are rounded to.
	AmountPlaces = 2
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal
	Direction   entity.Direction
	CategoryID  *uuid.UUID
	OccurredAt  *time.Time // Optional, defaults to now
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.TransactionWithCategory
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	reportCache     adapter.ReportCache
	clock           adapter.Clock
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	reportCache adapter.ReportCache,
	clock adapter.Clock,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		reportCache:     reportCache,
		clock:           clock,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	description, err := validateDescription(input.Description)
	if err != nil {
		return nil, err
	}

	amount, err := validateAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	if err := validateDirection(input.Direction); err != nil {
		return nil, err
	}

	var category *entity.Category
	if input.CategoryID != nil {
		category, err = findVisibleCategory(ctx, uc.categoryRepo, *input.CategoryID, input.UserID)
		if err != nil {
			return nil, err
		}
	}

	occurredAt := uc.clock.Now()
	if input.OccurredAt != nil {
		occurredAt = *input.OccurredAt
	}

	transaction := entity.NewTransaction(
		input.UserID,
		description,
		amount,
		input.Direction,
		input.CategoryID,
		occurredAt,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	invalidateReports(ctx, uc.reportCache, input.UserID)

	return &CreateTransactionOutput{
		Transaction: &entity.TransactionWithCategory{
			Transaction: transaction,
			Category:    category,
		},
	}, nil
}

// validateDescription trims the description and checks it is present and short enough.
func validateDescription(raw string) (string, error) {
	description := strings.TrimSpace(raw)
	if description == "" {
		return "", domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyDescription,
			"description is required",
			domainerror.ErrEmptyDescription,
		)
	}
	if len([]rune(description)) > MaxDescriptionLength {
		return "", domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}
	return description, nil
}

// validateAmount rounds to cents and rejects anything not strictly positive afterwards.
func validateAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	rounded := amount.Round(AmountPlaces)
	if !rounded.IsPositive() {
		return decimal.Zero, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if rounded.GreaterThan(entity.MaxAmount) {
		return decimal.Zero, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must not exceed "+entity.MaxAmount.StringFixed(2),
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	return rounded, nil
}

func validateDirection(direction entity.Direction) error {
	if !direction.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidDirection,
			"direction must be 'in' or 'out'",
			domainerror.ErrInvalidDirection,
		)
	}
	return nil
}

// findVisibleCategory resolves a category the caller may attach: a system category or one of their own.
// Categories owned by someone else are reported as missing.
func findVisibleCategory(ctx context.Context, repo adapter.CategoryRepository, id, userID uuid.UUID) (*entity.Category, error) {
	category, err := repo.FindByID(ctx, id)
	if err != nil && !errors.Is(err, domainerror.ErrCategoryNotFound) {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if err != nil || !category.IsVisibleTo(userID) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFoundForTransaction,
		)
	}
	return category, nil
}

// findOwned loads a transaction and checks that the caller owns it.
func findOwned(ctx context.Context, repo adapter.TransactionRepository, id, userID uuid.UUID) (*entity.Transaction, error) {
	transaction, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if transaction.UserID != userID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to access this transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	return transaction, nil
}

// invalidateReports drops the owner's cached reports. Cache failures never fail the mutation.
func invalidateReports(ctx context.Context, cache adapter.ReportCache, userID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, userID); err != nil {
		slog.WarnContext(ctx, "Failed to invalidate report cache", "user_id", userID, "error", err)
	}
}
