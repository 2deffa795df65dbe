// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Felipaof/My-Fluxo-Finance/internal/application/usecase/transaction"
	"github.com/Felipaof/My-Fluxo-Finance/internal/domain/entity"
	domainerror "github.com/Felipaof/My-Fluxo-Finance/internal/domain/error"
	"github.com/Felipaof/My-Fluxo-Finance/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	getUseCase    *transaction.GetTransactionUseCase
	createUseCase *transaction.CreateTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /transactions/user/:userId requests.
func (c *TransactionController) List(ctx *gin.Context) {
	callerID, ok := requireUser(ctx)
	if !ok {
		return
	}

	ownerID, ok := parseID(ctx, "userId", "user")
	if !ok {
		return
	}

	filter, err := parseTransactionFilter(ctx)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{
		CallerID: callerID,
		OwnerID:  ownerID,
		Filter:   filter,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Get handles GET /transactions/:id requests.
func (c *TransactionController) Get(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	transactionID, ok := parseID(ctx, "id", "transaction")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), transaction.GetTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.handleBindError(ctx, err)
		return
	}

	input := transaction.CreateTransactionInput{
		UserID:      userID,
		Description: req.Description,
		Amount:      *req.Amount,
		Direction:   entity.Direction(req.Direction),
	}

	categoryID, err := parseOptionalUUID(req.CategoryID)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}
	input.CategoryID = categoryID

	if req.OccurredAt != nil {
		occurredAt, err := parseOccurredAt(*req.OccurredAt)
		if err != nil {
			c.handleTransactionError(ctx, err)
			return
		}
		input.OccurredAt = &occurredAt
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	transactionID, ok := parseID(ctx, "id", "transaction")
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.handleBindError(ctx, err)
		return
	}

	input := transaction.UpdateTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
		Description:   req.Description,
		Amount:        req.Amount,
		ClearCategory: req.ClearCategory,
	}

	if req.Direction != nil {
		direction := entity.Direction(*req.Direction)
		input.Direction = &direction
	}

	categoryID, err := parseOptionalUUID(req.CategoryID)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}
	input.CategoryID = categoryID

	if req.OccurredAt != nil {
		occurredAt, err := parseOccurredAt(*req.OccurredAt)
		if err != nil {
			c.handleTransactionError(ctx, err)
			return
		}
		input.OccurredAt = &occurredAt
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	transactionID, ok := parseID(ctx, "id", "transaction")
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	}); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction deleted successfully"})
}

func (c *TransactionController) handleBindError(ctx *gin.Context, err error) {
	code := domainerror.ErrCodeMissingTransactionFields
	if dto.FailedTag(err, "direction") {
		code = domainerror.ErrCodeInvalidDirection
	}
	badRequestBody(ctx, string(code), err)
}

// parseTransactionFilter reads the optional listing filters from the query string.
// dateTo covers its whole day.
func parseTransactionFilter(ctx *gin.Context) (entity.TransactionFilter, error) {
	var filter entity.TransactionFilter

	if raw := ctx.Query("direction"); raw != "" {
		direction := entity.Direction(raw)
		filter.Direction = &direction
	}

	if raw := ctx.Query("categoryId"); raw != "" {
		categoryID, err := parseOptionalUUID(&raw)
		if err != nil {
			return filter, err
		}
		filter.CategoryID = categoryID
	}

	if raw := ctx.Query("dateFrom"); raw != "" {
		from, err := time.Parse(dto.DateLayout, raw)
		if err != nil {
			return filter, invalidDateError(err)
		}
		filter.From = &from
	}

	if raw := ctx.Query("dateTo"); raw != "" {
		to, err := time.Parse(dto.DateLayout, raw)
		if err != nil {
			return filter, invalidDateError(err)
		}
		to = to.AddDate(0, 0, 1)
		filter.To = &to
	}

	return filter, nil
}

func parseOptionalUUID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotFound,
			"Invalid category ID format",
			domainerror.ErrCategoryNotFoundForTransaction,
		)
	}
	return &id, nil
}

func parseOccurredAt(raw string) (time.Time, error) {
	t, err := dto.ParseDateTime(raw)
	if err != nil {
		return time.Time{}, invalidDateError(err)
	}
	return t, nil
}

func invalidDateError(err error) error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeInvalidTransactionDate,
		"Invalid date, expected RFC 3339 or YYYY-MM-DD",
		err,
	)
}

// handleTransactionError handles transaction errors and returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(c.getStatusCodeForTransactionError(txnErr.Code), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	internalError(ctx, err)
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound,
		domainerror.ErrCodeTxnCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedTransaction:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidDirection,
		domainerror.ErrCodeInvalidTransactionDate,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeEmptyDescription,
		domainerror.ErrCodeDescriptionTooLong,
		domainerror.ErrCodeMissingTransactionFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
