// Package error defines domain-specific errors for the application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameExists is returned when the owner already has a category with that name.
	ErrCategoryNameExists = errors.New("category name already exists")

	// ErrInvalidCategoryName is returned when the category name is too short or too long.
	ErrInvalidCategoryName = errors.New("invalid category name")

	// ErrNotAuthorizedToModifyCategory is returned when the caller does not own the category.
	ErrNotAuthorizedToModifyCategory = errors.New("not authorized to modify category")

	// ErrInvalidCategoryKind is returned when the kind is neither income nor expense.
	ErrInvalidCategoryKind = errors.New("invalid category kind")

	// ErrCategoryInUse is returned when transactions still reference the category.
	ErrCategoryInUse = errors.New("category is in use")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidCategoryName   CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNotFound      CategoryErrorCode = "CAT-010004"
	ErrCodeCategoryNameExists    CategoryErrorCode = "CAT-010005"
	ErrCodeNotAuthorizedCategory CategoryErrorCode = "CAT-010006"
	ErrCodeInvalidCategoryKind   CategoryErrorCode = "CAT-010007"
	ErrCodeMissingCategoryFields CategoryErrorCode = "CAT-010008"

	// Business rule errors (02XXXX)
	ErrCodeCategoryInUse CategoryErrorCode = "CAT-020001"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
	Details map[string]any
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewCategoryInUseError creates the error returned when count transactions reference a category.
func NewCategoryInUseError(count int64) *CategoryError {
	return &CategoryError{
		Code:    ErrCodeCategoryInUse,
		Message: "Category cannot be deleted while transactions reference it",
		Err:     ErrCategoryInUse,
		Details: map[string]any{"count": count},
	}
}
