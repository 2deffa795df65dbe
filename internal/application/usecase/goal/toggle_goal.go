// Package goal contains goal-related use cases.
package goal

import (
	"context"

	"github.com/google/uuid"

	domainerror "github.com/Felipaof/My-Fluxo-Finance/internal/domain/error"
)

// ToggleGoalInput represents the input for toggling a goal.
type ToggleGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// ToggleGoalUseCase flips a goal's completion. Only the false to true flip exists,
// so toggling an active goal settles it and toggling a completed goal is refused.
type ToggleGoalUseCase struct {
	settleGoal *SettleGoalUseCase
}

// NewToggleGoalUseCase creates a new ToggleGoalUseCase instance.
func NewToggleGoalUseCase(settleGoal *SettleGoalUseCase) *ToggleGoalUseCase {
	return &ToggleGoalUseCase{
		settleGoal: settleGoal,
	}
}

// Execute performs the toggle.
func (uc *ToggleGoalUseCase) Execute(ctx context.Context, input ToggleGoalInput) (*SettleGoalOutput, error) {
	goal, err := findOwned(ctx, uc.settleGoal.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	if goal.Completed {
		return nil, domainerror.NewIrreversibleStateError()
	}

	return uc.settleGoal.Execute(ctx, SettleGoalInput(input))
}
