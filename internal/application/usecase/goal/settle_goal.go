// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Felipaof/My-Fluxo-Finance/internal/application/adapter"
	"github.com/Felipaof/My-Fluxo-Finance/internal/domain/entity"
	domainerror "github.com/Felipaof/My-Fluxo-Finance/internal/domain/error"
)

// SettleGoalInput represents the input for goal settlement.
type SettleGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// SettleGoalOutput represents the output of goal settlement.
type SettleGoalOutput struct {
	Goal *entity.GoalWithStatus
	// Debit is nil when the goal was already completed.
	Debit *entity.Transaction
}

// SettleGoalUseCase completes a goal by debiting its target from the owner's balance.
type SettleGoalUseCase struct {
	goalRepo    adapter.GoalRepository
	uow         adapter.UnitOfWork
	reportCache adapter.ReportCache
	clock       adapter.Clock
}

// NewSettleGoalUseCase creates a new SettleGoalUseCase instance.
func NewSettleGoalUseCase(
	goalRepo adapter.GoalRepository,
	uow adapter.UnitOfWork,
	reportCache adapter.ReportCache,
	clock adapter.Clock,
) *SettleGoalUseCase {
	return &SettleGoalUseCase{
		goalRepo:    goalRepo,
		uow:         uow,
		reportCache: reportCache,
		clock:       clock,
	}
}

// Execute settles the goal. Settling a completed goal returns it unchanged.
func (uc *SettleGoalUseCase) Execute(ctx context.Context, input SettleGoalInput) (*SettleGoalOutput, error) {
	goal, err := findOwned(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	if goal.Completed {
		return &SettleGoalOutput{Goal: withStatus(goal, now)}, nil
	}

	var debit *entity.Transaction
	err = uc.uow.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		debit, err = settle(ctx, repos, goal, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	invalidateReports(ctx, uc.reportCache, input.UserID)

	return &SettleGoalOutput{
		Goal:  withStatus(goal, now),
		Debit: debit,
	}, nil
}

// settle runs the settlement steps against repositories bound to one store transaction.
// On success goal.Completed is set and the recorded debit is returned.
func settle(ctx context.Context, repos adapter.Repositories, goal *entity.Goal, now time.Time) (*entity.Transaction, error) {
	balance, err := repos.Transactions.GetBalance(ctx, goal.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute balance: %w", err)
	}

	if balance.LessThan(goal.TargetAmount) {
		slog.InfoContext(ctx, "Goal settlement refused",
			"goal_id", goal.ID,
			"balance", balance.StringFixed(2),
			"target", goal.TargetAmount.StringFixed(2),
		)
		return nil, domainerror.NewInsufficientBalanceError(balance, goal.TargetAmount)
	}

	category, err := goalsCategory(ctx, repos.Categories)
	if err != nil {
		return nil, err
	}

	debit := entity.NewTransaction(
		goal.UserID,
		goal.SettlementDescription(),
		goal.TargetAmount,
		entity.DirectionOut,
		&category.ID,
		now,
	)
	if err := repos.Transactions.Create(ctx, debit); err != nil {
		return nil, fmt.Errorf("failed to record settlement debit: %w", err)
	}

	changed, err := repos.Goals.MarkCompleted(ctx, goal.ID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to mark goal completed: %w", err)
	}
	if !changed {
		// Another settlement completed the goal first
		return nil, domainerror.NewIrreversibleStateError()
	}

	goal.Completed = true
	goal.UpdatedAt = now.UTC()

	slog.InfoContext(ctx, "Goal settled",
		"goal_id", goal.ID,
		"user_id", goal.UserID,
		"debit_id", debit.ID,
		"amount", debit.Amount.StringFixed(2),
	)

	return debit, nil
}

// goalsCategory finds or creates the shared expense category that holds settlement debits.
func goalsCategory(ctx context.Context, repo adapter.CategoryRepository) (*entity.Category, error) {
	category, err := repo.FindByNameAndOwner(ctx, entity.GoalsCategoryName, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to find goals category: %w", err)
	}
	if category != nil {
		return category, nil
	}

	category = entity.NewCategory(entity.GoalsCategoryName, entity.CategoryKindExpense, entity.GoalsCategoryIcon, nil)
	if err := repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create goals category: %w", err)
	}
	return category, nil
}
