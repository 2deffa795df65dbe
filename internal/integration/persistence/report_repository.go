// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Felipaof/My-Fluxo-Finance/internal/application/usecase/report"
	"github.com/Felipaof/My-Fluxo-Finance/internal/domain/entity"
)

// reportRepository implements the report.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance.
func NewReportRepository(db *gorm.DB) report.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

type categoryTotalRow struct {
	CategoryID       *uuid.UUID
	CategoryName     *string
	CategoryIcon     *string
	TransactionCount int64
	TotalIn          decimal.Decimal
	TotalOut         decimal.Decimal
}

// GetCategoryTotals groups the user's transactions in the window by category.
func (r *reportRepository) GetCategoryTotals(ctx context.Context, userID uuid.UUID, window report.Window) ([]report.CategoryTotal, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT
			c.id AS category_id,
			c.name AS category_name,
			c.icon AS category_icon,
			COUNT(t.id) AS transaction_count,
			COALESCE(SUM(CASE WHEN t.direction = ? THEN t.amount ELSE 0 END), 0) AS total_in,
			COALESCE(SUM(CASE WHEN t.direction = ? THEN t.amount ELSE 0 END), 0) AS total_out
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = ?`)
	args := []any{string(entity.DirectionIn), string(entity.DirectionOut), userID}

	if window.From != nil {
		sb.WriteString(" AND t.occurred_at >= ?")
		args = append(args, window.From.UTC())
	}
	if window.To != nil {
		sb.WriteString(" AND t.occurred_at < ?")
		args = append(args, window.To.UTC())
	}

	sb.WriteString(`
		GROUP BY c.id, c.name, c.icon, c.created_at
		ORDER BY total_out DESC, total_in DESC,
			CASE WHEN c.id IS NULL THEN 1 ELSE 0 END ASC,
			c.created_at ASC`)

	var rows []categoryTotalRow
	if err := r.db.WithContext(ctx).Raw(sb.String(), args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	totals := make([]report.CategoryTotal, len(rows))
	// SQLite sums NUMERIC columns as floats
	for i, row := range rows {
		totals[i] = report.CategoryTotal{
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
			CategoryIcon: row.CategoryIcon,
			Count:        row.TransactionCount,
			TotalIn:      row.TotalIn.Round(2),
			TotalOut:     row.TotalOut.Round(2),
		}
	}
	return totals, nil
}
