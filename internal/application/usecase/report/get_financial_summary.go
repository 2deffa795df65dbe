// Package report contains read-only reporting use cases.
package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/Felipaof/My-Fluxo-Finance/internal/application/adapter"
	"github.com/Felipaof/My-Fluxo-Finance/internal/domain/entity"
)

// RecentTransactionsLimit is the number of transactions listed in the financial summary.
const RecentTransactionsLimit = 10

// MonthLayout is the layout of the month breakdown keys.
const MonthLayout = "2006-01"

// GetFinancialSummaryInput represents the input for the financial summary.
type GetFinancialSummaryInput struct {
	UserID uuid.UUID
	Query  WindowQuery
}

// FinancialTotals holds the window totals.
type FinancialTotals struct {
	TotalIn          decimal.Decimal `json:"total_in"`
	TotalOut         decimal.Decimal `json:"total_out"`
	Net              decimal.Decimal `json:"net"`
	TransactionCount int64           `json:"transaction_count"`
}

// CategoryAmount is the sum and count of one category in one direction.
type CategoryAmount struct {
	Total decimal.Decimal `json:"total"`
	Count int64           `json:"count"`
}

// MonthTotals holds the in and out sums of a calendar month.
type MonthTotals struct {
	Month    string          `json:"month"`
	TotalIn  decimal.Decimal `json:"total_in"`
	TotalOut decimal.Decimal `json:"total_out"`
	Net      decimal.Decimal `json:"net"`
}

// TransactionItem is a flattened transaction with its category.
type TransactionItem struct {
	ID           uuid.UUID        `json:"id"`
	Description  string           `json:"description"`
	Amount       decimal.Decimal  `json:"amount"`
	Direction    entity.Direction `json:"direction"`
	CategoryID   *uuid.UUID       `json:"category_id"`
	CategoryName string           `json:"category_name"`
	CategoryIcon string           `json:"category_icon"`
	OccurredAt   time.Time        `json:"occurred_at"`
}

// GetFinancialSummaryOutput represents the output of the financial summary.
type GetFinancialSummaryOutput struct {
	Totals            FinancialTotals           `json:"totals"`
	IncomeByCategory  map[string]CategoryAmount `json:"income_by_category"`
	ExpenseByCategory map[string]CategoryAmount `json:"expense_by_category"`
	Months            []MonthTotals             `json:"months"`
	Recent            []TransactionItem         `json:"recent"`
}

// GetFinancialSummaryUseCase builds the totals and breakdowns of a window.
type GetFinancialSummaryUseCase struct {
	reportRepo      ReportRepository
	transactionRepo adapter.TransactionRepository
	reportCache     adapter.ReportCache
	clock           adapter.Clock
}

// NewGetFinancialSummaryUseCase creates a new GetFinancialSummaryUseCase instance.
func NewGetFinancialSummaryUseCase(
	reportRepo ReportRepository,
	transactionRepo adapter.TransactionRepository,
	reportCache adapter.ReportCache,
	clock adapter.Clock,
) *GetFinancialSummaryUseCase {
	return &GetFinancialSummaryUseCase{
		reportRepo:      reportRepo,
		transactionRepo: transactionRepo,
		reportCache:     reportCache,
		clock:           clock,
	}
}

// Execute builds the financial summary.
func (uc *GetFinancialSummaryUseCase) Execute(ctx context.Context, input GetFinancialSummaryInput) (*GetFinancialSummaryOutput, error) {
	window, err := ResolveWindow(input.Query, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	return cached(ctx, uc.reportCache, input.UserID, input.Query.CacheKey("financial"), func() (*GetFinancialSummaryOutput, error) {
		return uc.build(ctx, input.UserID, window)
	})
}

func (uc *GetFinancialSummaryUseCase) build(ctx context.Context, userID uuid.UUID, window Window) (*GetFinancialSummaryOutput, error) {
	var (
		totals       []CategoryTotal
		transactions []*entity.TransactionWithCategory
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totals, err = uc.reportRepo.GetCategoryTotals(gctx, userID, window)
		if err != nil {
			return fmt.Errorf("failed to get category totals: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		transactions, err = uc.transactionRepo.FindByUserID(gctx, userID, entity.TransactionFilter{
			From: window.From,
			To:   window.To,
		})
		if err != nil {
			return fmt.Errorf("failed to list transactions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	output := &GetFinancialSummaryOutput{
		Totals: FinancialTotals{
			TotalIn:  decimal.Zero,
			TotalOut: decimal.Zero,
		},
		IncomeByCategory:  make(map[string]CategoryAmount),
		ExpenseByCategory: make(map[string]CategoryAmount),
		Months:            monthBreakdown(transactions),
		Recent:            make([]TransactionItem, 0, RecentTransactionsLimit),
	}

	// Window totals come from the aggregate query
	for _, t := range totals {
		output.Totals.TotalIn = output.Totals.TotalIn.Add(t.TotalIn)
		output.Totals.TotalOut = output.Totals.TotalOut.Add(t.TotalOut)
		output.Totals.TransactionCount += t.Count
	}
	output.Totals.Net = output.Totals.TotalIn.Sub(output.Totals.TotalOut)

	// The per-direction split is keyed by name, so same-named categories merge
	for _, twc := range transactions {
		name := UncategorizedLabel(twc.Category)
		amount := twc.Transaction.Amount
		if twc.Transaction.Direction == entity.DirectionIn {
			output.IncomeByCategory[name] = addAmount(output.IncomeByCategory[name], amount)
		} else {
			output.ExpenseByCategory[name] = addAmount(output.ExpenseByCategory[name], amount)
		}
	}

	for i, twc := range transactions {
		if i == RecentTransactionsLimit {
			break
		}
		output.Recent = append(output.Recent, toTransactionItem(twc))
	}

	return output, nil
}

func addAmount(current CategoryAmount, amount decimal.Decimal) CategoryAmount {
	return CategoryAmount{
		Total: current.Total.Add(amount),
		Count: current.Count + 1,
	}
}

// monthBreakdown groups transactions by calendar month (UTC), ascending.
func monthBreakdown(transactions []*entity.TransactionWithCategory) []MonthTotals {
	byMonth := make(map[string]*MonthTotals)
	for _, twc := range transactions {
		key := twc.Transaction.OccurredAt.UTC().Format(MonthLayout)
		month, ok := byMonth[key]
		if !ok {
			month = &MonthTotals{Month: key, TotalIn: decimal.Zero, TotalOut: decimal.Zero, Net: decimal.Zero}
			byMonth[key] = month
		}
		if twc.Transaction.Direction == entity.DirectionIn {
			month.TotalIn = month.TotalIn.Add(twc.Transaction.Amount)
		} else {
			month.TotalOut = month.TotalOut.Add(twc.Transaction.Amount)
		}
		month.Net = month.Net.Add(twc.Transaction.SignedAmount())
	}

	months := make([]MonthTotals, 0, len(byMonth))
	for _, m := range byMonth {
		months = append(months, *m)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month < months[j].Month
	})
	return months
}

func toTransactionItem(twc *entity.TransactionWithCategory) TransactionItem {
	item := TransactionItem{
		ID:           twc.Transaction.ID,
		Description:  twc.Transaction.Description,
		Amount:       twc.Transaction.Amount,
		Direction:    twc.Transaction.Direction,
		CategoryID:   twc.Transaction.CategoryID,
		CategoryName: UncategorizedLabel(twc.Category),
		OccurredAt:   twc.Transaction.OccurredAt,
	}
	if twc.Category != nil {
		item.CategoryIcon = twc.Category.Icon
	}
	return item
}

// UncategorizedLabel returns the category name, or the uncategorized label when there is none.
func UncategorizedLabel(category *entity.Category) string {
	if category == nil {
		return entity.UncategorizedName
	}
	return category.Name
}
