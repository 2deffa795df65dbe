// Package goal contains goal-related use cases.
package goal

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

// MaxGoalNameLength is the maximum allowed length for goal names.
const MaxGoalNameLength = 100

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID       uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	StartDate    time.Time
	EndDate      time.Time
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.GoalWithStatus
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo    adapter.GoalRepository
	reportCache adapter.ReportCache
	clock       adapter.Clock
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, reportCache adapter.ReportCache, clock adapter.Clock) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo:    goalRepo,
		reportCache: reportCache,
		clock:       clock,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}

	target, err := validateTarget(input.TargetAmount)
	if err != nil {
		return nil, err
	}

	goal := entity.NewGoal(input.UserID, name, target, input.StartDate, input.EndDate)
	if !goal.HasValidWindow() {
		return nil, invalidWindowError()
	}

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	invalidateReports(ctx, uc.reportCache, input.UserID)

	return &CreateGoalOutput{
		Goal: withStatus(goal, uc.clock.Now()),
	}, nil
}

func validateName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" || len([]rune(name)) > MaxGoalNameLength {
		return "", domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalName,
			fmt.Sprintf("goal name is required and must not exceed %d characters", MaxGoalNameLength),
			domainerror.ErrInvalidGoalName,
		)
	}
	return name, nil
}

func validateTarget(amount decimal.Decimal) (decimal.Decimal, error) {
	rounded := amount.Round(2)
	if !rounded.IsPositive() {
		return decimal.Zero, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}
	if rounded.GreaterThan(entity.MaxAmount) {
		return decimal.Zero, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must not exceed "+entity.MaxAmount.StringFixed(2),
			domainerror.ErrInvalidTargetAmount,
		)
	}
	return rounded, nil
}

func invalidWindowError() error {
	return domainerror.NewGoalError(
		domainerror.ErrCodeInvalidGoalWindow,
		"end date must be after start date",
		domainerror.ErrInvalidGoalWindow,
	)
}

func withStatus(goal *entity.Goal, now time.Time) *entity.GoalWithStatus {
	return &entity.GoalWithStatus{
		Goal:   goal,
		Status: goal.StatusAt(now),
	}
}

// findOwned loads a goal and checks that the caller owns it.
func findOwned(ctx context.Context, repo adapter.GoalRepository, id, userID uuid.UUID) (*entity.Goal, error) {
	goal, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	if goal.UserID != userID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"not authorized to access this goal",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	return goal, nil
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
