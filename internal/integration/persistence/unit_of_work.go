// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/Felipaof/My-Fluxo-Finance/internal/application/adapter"
)

// unitOfWork implements adapter.UnitOfWork on top of gorm transactions.
type unitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a new unit of work bound to db.
func NewUnitOfWork(db *gorm.DB) adapter.UnitOfWork {
	return &unitOfWork{
		db: db,
	}
}

// Do runs fn with repositories sharing one transaction. Any error from fn rolls it back.
func (u *unitOfWork) Do(ctx context.Context, fn func(ctx context.Context, repos adapter.Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, adapter.Repositories{
			Categories:   NewCategoryRepository(tx),
			Transactions: NewTransactionRepository(tx),
			Goals:        NewGoalRepository(tx),
		})
	})
}
