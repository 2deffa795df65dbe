// Package goal contains goal-related use cases.
package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/Felipaof/My-Fluxo-Finance/internal/application/adapter"
	"github.com/Felipaof/My-Fluxo-Finance/internal/domain/entity"
)

// GetGoalInput represents the input for fetching one goal.
type GetGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// GetGoalOutput represents the output of fetching one goal.
type GetGoalOutput struct {
	Goal *entity.GoalWithStatus
}

// GetGoalUseCase handles fetching a single owned goal.
type GetGoalUseCase struct {
	goalRepo adapter.GoalRepository
	clock    adapter.Clock
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.GoalRepository, clock adapter.Clock) *GetGoalUseCase {
	return &GetGoalUseCase{
		goalRepo: goalRepo,
		clock:    clock,
	}
}

// Execute fetches the goal and derives its status.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	goal, err := findOwned(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetGoalOutput{
		Goal: withStatus(goal, uc.clock.Now()),
	}, nil
}
