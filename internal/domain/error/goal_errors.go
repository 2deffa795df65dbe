// Package error defines domain-specific errors for the application.
package error

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidTargetAmount is returned when the target amount is zero or negative.
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrUnauthorizedGoalAccess is returned when user is not authorized to access a goal.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")

	// ErrInvalidGoalWindow is returned when the window end is not after its start.
	ErrInvalidGoalWindow = errors.New("goal end date must be after start date")

	// ErrInvalidGoalName is returned when the goal name is blank or too long.
	ErrInvalidGoalName = errors.New("invalid goal name")

	// ErrInsufficientBalance is returned when the balance cannot cover the goal target.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrIrreversibleGoalState is returned when a completed goal would be reopened or altered.
	ErrIrreversibleGoalState = errors.New("completed goals cannot be reverted")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound           GoalErrorCode = "GOL-010001"
	ErrCodeInvalidTargetAmount    GoalErrorCode = "GOL-010003"
	ErrCodeUnauthorizedGoalAccess GoalErrorCode = "GOL-010006"
	ErrCodeInvalidGoalWindow      GoalErrorCode = "GOL-010007"
	ErrCodeMissingGoalFields      GoalErrorCode = "GOL-010008"
	ErrCodeInvalidGoalName        GoalErrorCode = "GOL-010009"

	// Business rule errors (02XXXX)
	ErrCodeInsufficientBalance GoalErrorCode = "GOL-020001"
	ErrCodeIrreversibleState   GoalErrorCode = "GOL-020002"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
	Details map[string]any
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewInsufficientBalanceError creates the settlement failure carrying the balance figures.
func NewInsufficientBalanceError(current, required decimal.Decimal) *GoalError {
	return &GoalError{
		Code:    ErrCodeInsufficientBalance,
		Message: "Insufficient balance to complete the goal",
		Err:     ErrInsufficientBalance,
		Details: map[string]any{
			"current":   current.StringFixed(2),
			"required":  required.StringFixed(2),
			"shortfall": required.Sub(current).StringFixed(2),
		},
	}
}

// NewIrreversibleStateError creates the error returned when a completed goal would change.
func NewIrreversibleStateError() *GoalError {
	return NewGoalError(ErrCodeIrreversibleState, "Completed goals cannot be reverted", ErrIrreversibleGoalState)
}
