// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/Felipaof/My-Fluxo-Finance/internal/domain/error"
	"github.com/Felipaof/My-Fluxo-Finance/internal/integration/entrypoint/dto"
	"github.com/Felipaof/My-Fluxo-Finance/internal/integration/entrypoint/middleware"
)

// requireUser returns the authenticated user or writes a 401.
func requireUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// parseID parses a UUID path parameter or writes a 400.
func parseID(ctx *gin.Context, param, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(param))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + label + " ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// internalError logs the cause and writes a generic 500.
func internalError(ctx *gin.Context, err error) {
	slog.ErrorContext(ctx.Request.Context(), "request failed",
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"error", err,
	)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// badRequestBody writes the 400 returned when a body fails to bind.
func badRequestBody(ctx *gin.Context, code string, err error) {
	response := dto.ErrorResponse{
		Error: "Invalid request body",
		Code:  code,
	}
	if details := dto.ValidationDetails(err); details != nil {
		response.Details = details
	}
	ctx.JSON(http.StatusBadRequest, response)
}

// detailsOrNil keeps empty detail maps out of the response.
func detailsOrNil(details map[string]any) any {
	if len(details) == 0 {
		return nil
	}
	return details
}
