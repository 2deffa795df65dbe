// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Felipaof/My-Fluxo-Finance/internal/application/adapter"
	"github.com/Felipaof/My-Fluxo-Finance/internal/domain/entity"
)

// UpdateTransactionInput represents the input for transaction update.
// Nil fields keep their current value.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	Description   *string
	Amount        *decimal.Decimal
	Direction     *entity.Direction
	CategoryID    *uuid.UUID
	ClearCategory bool
	OccurredAt    *time.Time
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.TransactionWithCategory
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	reportCache     adapter.ReportCache
	clock           adapter.Clock
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	reportCache adapter.ReportCache,
	clock adapter.Clock,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		reportCache:     reportCache,
		clock:           clock,
	}
}

// Execute merges the given fields into the transaction and saves it.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := findOwned(ctx, uc.transactionRepo, input.TransactionID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Description != nil {
		description, err := validateDescription(*input.Description)
		if err != nil {
			return nil, err
		}
		transaction.Description = description
	}

	if input.Amount != nil {
		amount, err := validateAmount(*input.Amount)
		if err != nil {
			return nil, err
		}
		transaction.Amount = amount
	}

	if input.Direction != nil {
		if err := validateDirection(*input.Direction); err != nil {
			return nil, err
		}
		transaction.Direction = *input.Direction
	}

	if input.OccurredAt != nil {
		transaction.OccurredAt = input.OccurredAt.UTC()
	}

	var category *entity.Category
	switch {
	case input.ClearCategory:
		transaction.CategoryID = nil
	case input.CategoryID != nil:
		category, err = findVisibleCategory(ctx, uc.categoryRepo, *input.CategoryID, input.UserID)
		if err != nil {
			return nil, err
		}
		transaction.CategoryID = &category.ID
	default:
		category, err = loadCategory(ctx, uc.categoryRepo, transaction.CategoryID)
		if err != nil {
			return nil, err
		}
	}

	transaction.UpdatedAt = uc.clock.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	invalidateReports(ctx, uc.reportCache, input.UserID)

	return &UpdateTransactionOutput{
		Transaction: &entity.TransactionWithCategory{
			Transaction: transaction,
			Category:    category,
		},
	}, nil
}
