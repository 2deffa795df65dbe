// Package report contains read-only reporting use cases.
package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Felipaof/My-Fluxo-Finance/internal/application/adapter"
	"github.com/Felipaof/My-Fluxo-Finance/internal/domain/entity"
	domainerror "github.com/Felipaof/My-Fluxo-Finance/internal/domain/error"
)

// ExportType selects the rows to export.
type ExportType string

const (
	ExportTransactions ExportType = "transactions"
	ExportGoals        ExportType = "goals"
)

// ExportFormat selects the serialization of the export.
type ExportFormat string

const (
	ExportFormatJSON ExportFormat = "json"
	ExportFormatCSV  ExportFormat = "csv"
)

// ParseExportType accepts the English names and their Portuguese aliases.
func ParseExportType(raw string) (ExportType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "transactions", "transacoes", "transações":
		return ExportTransactions, nil
	case "goals", "metas":
		return ExportGoals, nil
	default:
		return "", domainerror.NewReportError(
			domainerror.ErrCodeInvalidExportType,
			"export type must be 'transactions' or 'goals'",
			domainerror.ErrInvalidExportType,
		)
	}
}

// ParseExportFormat defaults to JSON.
func ParseExportFormat(raw string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "json":
		return ExportFormatJSON, nil
	case "csv":
		return ExportFormatCSV, nil
	default:
		return "", domainerror.NewReportError(
			domainerror.ErrCodeInvalidExportFormat,
			"export format must be 'json' or 'csv'",
			domainerror.ErrInvalidExportFormat,
		)
	}
}

// ExportDataInput represents the input for the export.
type ExportDataInput struct {
	UserID uuid.UUID
	Type   string
	Format string
	Query  WindowQuery
}

// TransactionRow is an exported transaction.
type TransactionRow struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	Amount      string `json:"amount"`
}

// GoalRow is an exported goal.
type GoalRow struct {
	Name      string `json:"name"`
	Target    string `json:"target"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
}

// ExportDataOutput represents the output of the export. Only the slice matching Type is set.
type ExportDataOutput struct {
	Type         ExportType
	Format       ExportFormat
	Transactions []TransactionRow
	Goals        []GoalRow
}

// Table returns the header and rows of the export for tabular encoders.
func (o *ExportDataOutput) Table() ([]string, [][]string) {
	if o.Type == ExportGoals {
		rows := make([][]string, 0, len(o.Goals))
		for _, g := range o.Goals {
			rows = append(rows, []string{g.Name, g.Target, g.StartDate, g.EndDate, g.Status})
		}
		return []string{"name", "target", "start_date", "end_date", "status"}, rows
	}

	rows := make([][]string, 0, len(o.Transactions))
	for _, t := range o.Transactions {
		rows = append(rows, []string{t.Date, t.Description, t.Category, t.Type, t.Amount})
	}
	return []string{"date", "description", "category", "type", "amount"}, rows
}

// ExportDataUseCase flattens transactions or goals for download.
type ExportDataUseCase struct {
	transactionRepo adapter.TransactionRepository
	goalRepo        adapter.GoalRepository
	clock           adapter.Clock
}

// NewExportDataUseCase creates a new ExportDataUseCase instance.
func NewExportDataUseCase(
	transactionRepo adapter.TransactionRepository,
	goalRepo adapter.GoalRepository,
	clock adapter.Clock,
) *ExportDataUseCase {
	return &ExportDataUseCase{
		transactionRepo: transactionRepo,
		goalRepo:        goalRepo,
		clock:           clock,
	}
}

// Execute builds the export rows. Goals ignore the window.
func (uc *ExportDataUseCase) Execute(ctx context.Context, input ExportDataInput) (*ExportDataOutput, error) {
	exportType, err := ParseExportType(input.Type)
	if err != nil {
		return nil, err
	}

	format, err := ParseExportFormat(input.Format)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	output := &ExportDataOutput{
		Type:   exportType,
		Format: format,
	}

	if exportType == ExportGoals {
		goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to list goals: %w", err)
		}
		output.Goals = make([]GoalRow, 0, len(goals))
		for _, g := range goals {
			output.Goals = append(output.Goals, GoalRow{
				Name:      g.Name,
				Target:    g.TargetAmount.StringFixed(2),
				StartDate: g.StartDate.UTC().Format(DateLayout),
				EndDate:   g.EndDate.UTC().Format(DateLayout),
				Status:    g.StatusAt(now).Label(),
			})
		}
		return output, nil
	}

	window, err := ResolveWindow(input.Query, now)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindByUserID(ctx, input.UserID, entity.TransactionFilter{
		From: window.From,
		To:   window.To,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	output.Transactions = make([]TransactionRow, 0, len(transactions))
	for _, twc := range transactions {
		output.Transactions = append(output.Transactions, TransactionRow{
			Date:        twc.Transaction.OccurredAt.UTC().Format(DateLayout),
			Description: twc.Transaction.Description,
			Category:    UncategorizedLabel(twc.Category),
			Type:        twc.Transaction.Direction.Label(),
			Amount:      twc.Transaction.Amount.StringFixed(2),
		})
	}

	return output, nil
}
