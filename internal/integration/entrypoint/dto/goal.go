// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Felipaof/My-Fluxo-Finance/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name         string           `json:"name" binding:"required"`
	TargetAmount *decimal.Decimal `json:"target_amount" binding:"required"`
	StartDate    string           `json:"start_date" binding:"required"`
	EndDate      string           `json:"end_date" binding:"required"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Name         *string          `json:"name,omitempty"`
	TargetAmount *decimal.Decimal `json:"target_amount,omitempty"`
	StartDate    *string          `json:"start_date,omitempty"`
	EndDate      *string          `json:"end_date,omitempty"`
	Completed    *bool            `json:"completed,omitempty"`
}

// GoalResponse represents a goal in API responses.
type GoalResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	TargetAmount string    `json:"target_amount"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Completed    bool      `json:"completed"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// GoalSettlementResponse is returned by operations that may complete a goal.
type GoalSettlementResponse struct {
	Goal  GoalResponse         `json:"goal"`
	Debit *TransactionResponse `json:"debit,omitempty"`
}

// ToGoalResponse converts a goal with its status to a GoalResponse DTO.
func ToGoalResponse(g *entity.GoalWithStatus) GoalResponse {
	return GoalResponse{
		ID:           g.Goal.ID.String(),
		UserID:       g.Goal.UserID.String(),
		Name:         g.Goal.Name,
		TargetAmount: Money(g.Goal.TargetAmount),
		StartDate:    g.Goal.StartDate,
		EndDate:      g.Goal.EndDate,
		Completed:    g.Goal.Completed,
		Status:       string(g.Status),
		CreatedAt:    g.Goal.CreatedAt,
		UpdatedAt:    g.Goal.UpdatedAt,
	}
}

// ToGoalListResponse converts goals to their DTOs.
func ToGoalListResponse(goals []*entity.GoalWithStatus) []GoalResponse {
	response := make([]GoalResponse, len(goals))
	for i, g := range goals {
		response[i] = ToGoalResponse(g)
	}
	return response
}

// ToGoalSettlementResponse pairs the goal with the debit recorded for it, if any.
// The debit carries only the id of the shared goals category.
func ToGoalSettlementResponse(g *entity.GoalWithStatus, debit *entity.Transaction) GoalSettlementResponse {
	response := GoalSettlementResponse{Goal: ToGoalResponse(g)}
	if debit != nil {
		tr := ToTransactionResponse(&entity.TransactionWithCategory{Transaction: debit})
		response.Debit = &tr
	}
	return response
}
