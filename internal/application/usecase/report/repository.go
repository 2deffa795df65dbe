// Package report contains read-only reporting use cases.
package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportRepository defines the aggregate queries used by the reports.
type ReportRepository interface {
	// GetCategoryTotals groups the user's transactions in the window by category.
	// Rows come ordered by total out desc, total in desc, category creation asc,
	// with the uncategorized row last among ties.
	GetCategoryTotals(ctx context.Context, userID uuid.UUID, window Window) ([]CategoryTotal, error)
}

// CategoryTotal represents one category row of the aggregate query.
// CategoryID and CategoryName are nil for uncategorized transactions.
type CategoryTotal struct {
	CategoryID   *uuid.UUID
	CategoryName *string
	CategoryIcon *string
	Count        int64
	TotalIn      decimal.Decimal
	TotalOut     decimal.Decimal
}
