// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Felipaof/My-Fluxo-Finance/internal/application/usecase/report"
	domainerror "github.com/Felipaof/My-Fluxo-Finance/internal/domain/error"
	"github.com/Felipaof/My-Fluxo-Finance/internal/integration/entrypoint/dto"
)

// ReportController handles report endpoints.
type ReportController struct {
	financialUseCase *report.GetFinancialSummaryUseCase
	goalUseCase      *report.GetGoalSummaryUseCase
	categoryUseCase  *report.GetCategorySummaryUseCase
	exportUseCase    *report.ExportDataUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	financialUseCase *report.GetFinancialSummaryUseCase,
	goalUseCase *report.GetGoalSummaryUseCase,
	categoryUseCase *report.GetCategorySummaryUseCase,
	exportUseCase *report.ExportDataUseCase,
) *ReportController {
	return &ReportController{
		financialUseCase: financialUseCase,
		goalUseCase:      goalUseCase,
		categoryUseCase:  categoryUseCase,
		exportUseCase:    exportUseCase,
	}
}

// Financial handles GET /reports/financial requests.
func (c *ReportController) Financial(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.financialUseCase.Execute(ctx.Request.Context(), report.GetFinancialSummaryInput{
		UserID: userID,
		Query:  windowQuery(ctx),
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// Goals handles GET /reports/goals and its /reports/metas alias.
func (c *ReportController) Goals(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.goalUseCase.Execute(ctx.Request.Context(), report.GetGoalSummaryInput{UserID: userID})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// Categories handles GET /reports/categories requests.
func (c *ReportController) Categories(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.categoryUseCase.Execute(ctx.Request.Context(), report.GetCategorySummaryInput{
		UserID: userID,
		Query:  windowQuery(ctx),
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// Export handles GET /reports/export requests.
func (c *ReportController) Export(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), report.ExportDataInput{
		UserID: userID,
		Type:   ctx.Query("type"),
		Format: ctx.Query("format"),
		Query:  windowQuery(ctx),
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	if output.Format == report.ExportFormatCSV {
		c.writeCSV(ctx, output)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExportResponse(output))
}

func (c *ReportController) writeCSV(ctx *gin.Context, output *report.ExportDataOutput) {
	header, rows := output.Table()
	filename := fmt.Sprintf("%s-%s.csv", output.Type, time.Now().UTC().Format("20060102"))

	ctx.Header("Content-Type", "text/csv; charset=utf-8")
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Status(http.StatusOK)

	w := csv.NewWriter(ctx.Writer)
	if err := w.Write(header); err != nil {
		_ = ctx.Error(err)
		return
	}
	if err := w.WriteAll(rows); err != nil {
		_ = ctx.Error(err)
	}
}

func windowQuery(ctx *gin.Context) report.WindowQuery {
	return report.WindowQuery{
		DateFrom: ctx.Query("dateFrom"),
		DateTo:   ctx.Query("dateTo"),
		Period:   ctx.Query("period"),
	}
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) && reportErr.Code != domainerror.ErrCodeReportInternalError {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	internalError(ctx, err)
}
