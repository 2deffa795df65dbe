// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Felipaof/My-Fluxo-Finance/internal/application/usecase/goal"
	domainerror "github.com/Felipaof/My-Fluxo-Finance/internal/domain/error"
	"github.com/Felipaof/My-Fluxo-Finance/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase   *goal.ListGoalsUseCase
	getUseCase    *goal.GetGoalUseCase
	createUseCase *goal.CreateGoalUseCase
	updateUseCase *goal.UpdateGoalUseCase
	toggleUseCase *goal.ToggleGoalUseCase
	deleteUseCase *goal.DeleteGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	getUseCase *goal.GetGoalUseCase,
	createUseCase *goal.CreateGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	toggleUseCase *goal.ToggleGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		toggleUseCase: toggleUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /goals/user/:userId requests.
func (c *GoalController) List(ctx *gin.Context) {
	callerID, ok := requireUser(ctx)
	if !ok {
		return
	}

	ownerID, ok := parseID(ctx, "userId", "user")
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), goal.ListGoalsInput{
		CallerID: callerID,
		OwnerID:  ownerID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	goalID, ok := parseID(ctx, "id", "goal")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{
		GoalID: goalID,
		UserID: userID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequestBody(ctx, string(domainerror.ErrCodeMissingGoalFields), err)
		return
	}

	startDate, err := parseGoalDate(req.StartDate)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}
	endDate, err := parseGoalDate(req.EndDate)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), goal.CreateGoalInput{
		UserID:       userID,
		Name:         req.Name,
		TargetAmount: *req.TargetAmount,
		StartDate:    startDate,
		EndDate:      endDate,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// Update handles PUT /goals/:id requests.
// Sending completed=true settles the goal in the same request.
func (c *GoalController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	goalID, ok := parseID(ctx, "id", "goal")
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequestBody(ctx, string(domainerror.ErrCodeMissingGoalFields), err)
		return
	}

	input := goal.UpdateGoalInput{
		GoalID:       goalID,
		UserID:       userID,
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		Completed:    req.Completed,
	}

	if req.StartDate != nil {
		startDate, err := parseGoalDate(*req.StartDate)
		if err != nil {
			c.handleGoalError(ctx, err)
			return
		}
		input.StartDate = &startDate
	}
	if req.EndDate != nil {
		endDate, err := parseGoalDate(*req.EndDate)
		if err != nil {
			c.handleGoalError(ctx, err)
			return
		}
		input.EndDate = &endDate
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalSettlementResponse(output.Goal, output.Debit))
}

// Toggle handles PATCH /goals/:id/toggle requests.
func (c *GoalController) Toggle(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	goalID, ok := parseID(ctx, "id", "goal")
	if !ok {
		return
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), goal.ToggleGoalInput{
		GoalID: goalID,
		UserID: userID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalSettlementResponse(output.Goal, output.Debit))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	goalID, ok := parseID(ctx, "id", "goal")
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{
		GoalID: goalID,
		UserID: userID,
	}); err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Goal deleted successfully"})
}

func parseGoalDate(raw string) (time.Time, error) {
	t, err := dto.ParseDateTime(raw)
	if err != nil {
		return time.Time{}, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"Invalid date, expected RFC 3339 or YYYY-MM-DD",
			err,
		)
	}
	return t, nil
}

// handleGoalError handles goal errors and returns appropriate HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		ctx.JSON(c.getStatusCodeForGoalError(goalErr.Code), dto.ErrorResponse{
			Error:   goalErr.Message,
			Code:    string(goalErr.Code),
			Details: detailsOrNil(goalErr.Details),
		})
		return
	}

	internalError(ctx, err)
}

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func (c *GoalController) getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedGoalAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidTargetAmount,
		domainerror.ErrCodeInvalidGoalWindow,
		domainerror.ErrCodeInvalidGoalName,
		domainerror.ErrCodeMissingGoalFields,
		domainerror.ErrCodeInsufficientBalance,
		domainerror.ErrCodeIrreversibleState:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
