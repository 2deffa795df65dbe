// Package report contains read-only reporting use cases.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Felipaof/My-Fluxo-Finance/internal/application/adapter"
	"github.com/Felipaof/My-Fluxo-Finance/internal/domain/entity"
)

// GetCategorySummaryInput represents the input for the category summary.
type GetCategorySummaryInput struct {
	UserID uuid.UUID
	Query  WindowQuery
}

// CategorySummaryItem holds the totals of one category.
type CategorySummaryItem struct {
	CategoryID *uuid.UUID      `json:"category_id"`
	Name       string          `json:"name"`
	Icon       string          `json:"icon"`
	Count      int64           `json:"count"`
	TotalIn    decimal.Decimal `json:"total_in"`
	TotalOut   decimal.Decimal `json:"total_out"`
	Net        decimal.Decimal `json:"net"`
}

// GetCategorySummaryOutput represents the output of the category summary.
type GetCategorySummaryOutput struct {
	Categories []CategorySummaryItem `json:"categories"`
}

// GetCategorySummaryUseCase lists per-category totals for a window.
type GetCategorySummaryUseCase struct {
	reportRepo  ReportRepository
	reportCache adapter.ReportCache
	clock       adapter.Clock
}

// NewGetCategorySummaryUseCase creates a new GetCategorySummaryUseCase instance.
func NewGetCategorySummaryUseCase(reportRepo ReportRepository, reportCache adapter.ReportCache, clock adapter.Clock) *GetCategorySummaryUseCase {
	return &GetCategorySummaryUseCase{
		reportRepo:  reportRepo,
		reportCache: reportCache,
		clock:       clock,
	}
}

// Execute builds the category summary in the repository's order.
func (uc *GetCategorySummaryUseCase) Execute(ctx context.Context, input GetCategorySummaryInput) (*GetCategorySummaryOutput, error) {
	window, err := ResolveWindow(input.Query, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	return cached(ctx, uc.reportCache, input.UserID, input.Query.CacheKey("categories"), func() (*GetCategorySummaryOutput, error) {
		totals, err := uc.reportRepo.GetCategoryTotals(ctx, input.UserID, window)
		if err != nil {
			return nil, fmt.Errorf("failed to get category totals: %w", err)
		}

		items := make([]CategorySummaryItem, 0, len(totals))
		for _, t := range totals {
			item := CategorySummaryItem{
				CategoryID: t.CategoryID,
				Name:       entity.UncategorizedName,
				Count:      t.Count,
				TotalIn:    t.TotalIn,
				TotalOut:   t.TotalOut,
				Net:        t.TotalIn.Sub(t.TotalOut),
			}
			if t.CategoryName != nil {
				item.Name = *t.CategoryName
			}
			if t.CategoryIcon != nil {
				item.Icon = *t.CategoryIcon
			}
			items = append(items, item)
		}

		return &GetCategorySummaryOutput{Categories: items}, nil
	})
}
