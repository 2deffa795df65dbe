// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalStatus is the derived state of a goal. It is never persisted.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusExpired   GoalStatus = "expired"
)

// Label returns the export label of the status.
func (s GoalStatus) Label() string {
	switch s {
	case GoalStatusCompleted:
		return "Concluída"
	case GoalStatusExpired:
		return "Vencida"
	default:
		return "Ativa"
	}
}

// Goal represents a savings target within a time window.
type Goal struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	StartDate    time.Time
	EndDate      time.Time
	Completed    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewGoal creates a new, not yet completed Goal entity.
func NewGoal(userID uuid.UUID, name string, targetAmount decimal.Decimal, startDate, endDate time.Time) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         name,
		TargetAmount: targetAmount,
		StartDate:    startDate.UTC(),
		EndDate:      endDate.UTC(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// HasValidWindow reports whether the end of the window is strictly after its start.
func (g *Goal) HasValidWindow() bool {
	return g.EndDate.After(g.StartDate)
}

// StatusAt derives the goal status at the given instant.
func (g *Goal) StatusAt(now time.Time) GoalStatus {
	if g.Completed {
		return GoalStatusCompleted
	}
	if g.EndDate.Before(now) {
		return GoalStatusExpired
	}
	return GoalStatusActive
}

// SettlementDescription is the description of the debit recorded when the goal is met.
func (g *Goal) SettlementDescription() string {
	return "Meta concluída: " + g.Name
}

// GoalWithStatus pairs a goal with its status at read time.
type GoalWithStatus struct {
	Goal   *Goal
	Status GoalStatus
}
