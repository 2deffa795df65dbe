// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Felipaof/My-Fluxo-Finance/internal/application/adapter"
	"github.com/Felipaof/My-Fluxo-Finance/internal/domain/entity"
	domainerror "github.com/Felipaof/My-Fluxo-Finance/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update.
// Nil fields keep their current value.
type UpdateGoalInput struct {
	GoalID       uuid.UUID
	UserID       uuid.UUID
	Name         *string
	TargetAmount *decimal.Decimal
	StartDate    *time.Time
	EndDate      *time.Time
	Completed    *bool
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.GoalWithStatus
	// Debit is set when the update completed the goal.
	Debit *entity.Transaction
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo    adapter.GoalRepository
	uow         adapter.UnitOfWork
	reportCache adapter.ReportCache
	clock       adapter.Clock
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(
	goalRepo adapter.GoalRepository,
	uow adapter.UnitOfWork,
	reportCache adapter.ReportCache,
	clock adapter.Clock,
) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo:    goalRepo,
		uow:         uow,
		reportCache: reportCache,
		clock:       clock,
	}
}

// Execute merges the given fields into the goal. Passing completed=true settles it
// in the same store transaction as the field changes.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := findOwned(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	// Completion never goes back
	if input.Completed != nil && !*input.Completed && goal.Completed {
		return nil, domainerror.NewIrreversibleStateError()
	}

	if input.Name != nil {
		name, err := validateName(*input.Name)
		if err != nil {
			return nil, err
		}
		goal.Name = name
	}

	if input.TargetAmount != nil {
		target, err := validateTarget(*input.TargetAmount)
		if err != nil {
			return nil, err
		}
		// The debit for a completed goal already happened at the old target
		if goal.Completed && !target.Equal(goal.TargetAmount) {
			return nil, domainerror.NewIrreversibleStateError()
		}
		goal.TargetAmount = target
	}

	if input.StartDate != nil {
		goal.StartDate = input.StartDate.UTC()
	}
	if input.EndDate != nil {
		goal.EndDate = input.EndDate.UTC()
	}
	if !goal.HasValidWindow() {
		return nil, invalidWindowError()
	}

	now := uc.clock.Now()
	goal.UpdatedAt = now.UTC()
	completing := input.Completed != nil && *input.Completed && !goal.Completed

	var debit *entity.Transaction
	err = uc.uow.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		if err := repos.Goals.Update(ctx, goal); err != nil {
			return fmt.Errorf("failed to update goal: %w", err)
		}
		if completing {
			debit, err = settle(ctx, repos, goal, now)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidateReports(ctx, uc.reportCache, input.UserID)

	return &UpdateGoalOutput{
		Goal:  withStatus(goal, now),
		Debit: debit,
	}, nil
}
