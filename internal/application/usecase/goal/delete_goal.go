// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Felipaof/My-Fluxo-Finance/internal/application/adapter"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// DeleteGoalOutput represents the output of goal deletion.
type DeleteGoalOutput struct {
	Success bool
}

// DeleteGoalUseCase handles goal deletion logic.
// The debit recorded by a settlement stays in the ledger.
type DeleteGoalUseCase struct {
	goalRepo    adapter.GoalRepository
	reportCache adapter.ReportCache
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository, reportCache adapter.ReportCache) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo:    goalRepo,
		reportCache: reportCache,
	}
}

// Execute performs the goal deletion.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) (*DeleteGoalOutput, error) {
	goal, err := findOwned(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := uc.goalRepo.Delete(ctx, goal.ID); err != nil {
		return nil, fmt.Errorf("failed to delete goal: %w", err)
	}

	invalidateReports(ctx, uc.reportCache, input.UserID)

	return &DeleteGoalOutput{
		Success: true,
	}, nil
}
