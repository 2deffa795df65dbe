// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Direction represents whether money came in or went out.
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// IsValid reports whether the direction is one of the known values.
func (d Direction) IsValid() bool {
	return d == DirectionIn || d == DirectionOut
}

// Label returns the export label of the direction.
func (d Direction) Label() string {
	if d == DirectionIn {
		return "Receita"
	}
	return "Despesa"
}

// MaxAmount is the largest value the NUMERIC(12,2) amount columns hold.
var MaxAmount = decimal.RequireFromString("9999999999.99")

// Transaction represents a movement of money owned by a single user.
// Amount is always positive; Direction carries the sign.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal
	Direction   Direction
	CategoryID  *uuid.UUID // Optional, can be uncategorized
	OccurredAt  time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	description string,
	amount decimal.Decimal,
	direction Direction,
	categoryID *uuid.UUID,
	occurredAt time.Time,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Description: description,
		Amount:      amount,
		Direction:   direction,
		CategoryID:  categoryID,
		OccurredAt:  occurredAt.UTC(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SignedAmount returns the amount with the sign implied by the direction.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Direction == DirectionOut {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TransactionWithCategory represents a transaction with its associated category.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}

// TransactionFilter narrows a transaction listing.
type TransactionFilter struct {
	Direction  *Direction
	CategoryID *uuid.UUID
	From       *time.Time
	To         *time.Time // exclusive
}
