// Package error defines domain-specific errors for the application.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidDateRange is returned when dateTo is before dateFrom.
	ErrInvalidDateRange = errors.New("dateTo must not be before dateFrom")

	// ErrInvalidDateFormat is returned when a date query parameter cannot be parsed.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidExportType is returned when the export type is unknown.
	ErrInvalidExportType = errors.New("invalid export type")

	// ErrInvalidExportFormat is returned when the export format is unknown.
	ErrInvalidExportFormat = errors.New("invalid export format")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDateRange    ReportErrorCode = "RPT-010001"
	ErrCodeInvalidDateFormat   ReportErrorCode = "RPT-010002"
	ErrCodeInvalidExportType   ReportErrorCode = "RPT-010003"
	ErrCodeInvalidExportFormat ReportErrorCode = "RPT-010004"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
