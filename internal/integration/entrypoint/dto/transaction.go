// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Felipaof/My-Fluxo-Finance/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
// Amount accepts a JSON number or a decimal string.
type CreateTransactionRequest struct {
	Description string           `json:"description" binding:"required"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Direction   string           `json:"direction" binding:"required,direction"`
	CategoryID  *string          `json:"category_id,omitempty"`
	OccurredAt  *string          `json:"occurred_at,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Description   *string          `json:"description,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Direction     *string          `json:"direction,omitempty" binding:"omitempty,direction"`
	CategoryID    *string          `json:"category_id,omitempty"`
	ClearCategory bool             `json:"clear_category,omitempty"`
	OccurredAt    *string          `json:"occurred_at,omitempty"`
}

// TransactionCategoryResponse represents category information in transaction response.
type TransactionCategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
	Kind string `json:"kind"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string                       `json:"id"`
	UserID      string                       `json:"user_id"`
	Description string                       `json:"description"`
	Amount      string                       `json:"amount"`
	Direction   string                       `json:"direction"`
	CategoryID  *string                      `json:"category_id"`
	Category    *TransactionCategoryResponse `json:"category"`
	OccurredAt  time.Time                    `json:"occurred_at"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

// ToTransactionResponse converts a transaction and its category to a TransactionResponse DTO.
func ToTransactionResponse(twc *entity.TransactionWithCategory) TransactionResponse {
	t := twc.Transaction
	response := TransactionResponse{
		ID:          t.ID.String(),
		UserID:      t.UserID.String(),
		Description: t.Description,
		Amount:      Money(t.Amount),
		Direction:   string(t.Direction),
		OccurredAt:  t.OccurredAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.CategoryID != nil {
		categoryID := t.CategoryID.String()
		response.CategoryID = &categoryID
	}
	if twc.Category != nil {
		response.Category = &TransactionCategoryResponse{
			ID:   twc.Category.ID.String(),
			Name: twc.Category.Name,
			Icon: twc.Category.Icon,
			Kind: string(twc.Category.Kind),
		}
	}
	return response
}

// ToTransactionListResponse converts transactions to their DTOs.
func ToTransactionListResponse(transactions []*entity.TransactionWithCategory) []TransactionResponse {
	response := make([]TransactionResponse, len(transactions))
	for i, twc := range transactions {
		response[i] = ToTransactionResponse(twc)
	}
	return response
}
