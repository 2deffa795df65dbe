// Package report contains read-only reporting use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Felipaof/My-Fluxo-Finance/internal/application/adapter"
	"github.com/Felipaof/My-Fluxo-Finance/internal/domain/entity"
)

// GetGoalSummaryInput represents the input for the goal summary.
type GetGoalSummaryInput struct {
	UserID uuid.UUID
}

// GoalItem is a goal with its derived status.
type GoalItem struct {
	ID           uuid.UUID         `json:"id"`
	Name         string            `json:"name"`
	TargetAmount decimal.Decimal   `json:"target_amount"`
	StartDate    time.Time         `json:"start_date"`
	EndDate      time.Time         `json:"end_date"`
	Completed    bool              `json:"completed"`
	Status       entity.GoalStatus `json:"status"`
}

// GetGoalSummaryOutput represents the output of the goal summary.
type GetGoalSummaryOutput struct {
	Total          int             `json:"total"`
	Active         int             `json:"active"`
	Completed      int             `json:"completed"`
	Expired        int             `json:"expired"`
	TargetTotal    decimal.Decimal `json:"target_total"`
	CompletedTotal decimal.Decimal `json:"completed_total"`
	// Percentage is the completed share of the summed targets, rounded to one decimal.
	Percentage float64    `json:"percentage"`
	Goals      []GoalItem `json:"goals"`
}

// GetGoalSummaryUseCase counts the user's goals by derived status.
type GetGoalSummaryUseCase struct {
	goalRepo    adapter.GoalRepository
	reportCache adapter.ReportCache
	clock       adapter.Clock
}

// NewGetGoalSummaryUseCase creates a new GetGoalSummaryUseCase instance.
func NewGetGoalSummaryUseCase(goalRepo adapter.GoalRepository, reportCache adapter.ReportCache, clock adapter.Clock) *GetGoalSummaryUseCase {
	return &GetGoalSummaryUseCase{
		goalRepo:    goalRepo,
		reportCache: reportCache,
		clock:       clock,
	}
}

// Execute builds the goal summary.
func (uc *GetGoalSummaryUseCase) Execute(ctx context.Context, input GetGoalSummaryInput) (*GetGoalSummaryOutput, error) {
	return cached(ctx, uc.reportCache, input.UserID, "goals", func() (*GetGoalSummaryOutput, error) {
		goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to list goals: %w", err)
		}
		return summarizeGoals(goals, uc.clock.Now()), nil
	})
}

func summarizeGoals(goals []*entity.Goal, now time.Time) *GetGoalSummaryOutput {
	output := &GetGoalSummaryOutput{
		Total:          len(goals),
		TargetTotal:    decimal.Zero,
		CompletedTotal: decimal.Zero,
		Goals:          make([]GoalItem, 0, len(goals)),
	}

	for _, goal := range goals {
		status := goal.StatusAt(now)
		output.TargetTotal = output.TargetTotal.Add(goal.TargetAmount)

		switch status {
		case entity.GoalStatusCompleted:
			output.Completed++
			output.CompletedTotal = output.CompletedTotal.Add(goal.TargetAmount)
		case entity.GoalStatusExpired:
			output.Expired++
		default:
			output.Active++
		}

		output.Goals = append(output.Goals, GoalItem{
			ID:           goal.ID,
			Name:         goal.Name,
			TargetAmount: goal.TargetAmount,
			StartDate:    goal.StartDate,
			EndDate:      goal.EndDate,
			Completed:    goal.Completed,
			Status:       status,
		})
	}

	output.Percentage = completionPercentage(output.CompletedTotal, output.TargetTotal)
	return output
}

// completionPercentage returns part/total*100 rounded to one decimal, or 0 for a zero total.
func completionPercentage(part, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	return part.Div(total).Mul(decimal.NewFromInt(100)).Round(1).InexactFloat64()
}
