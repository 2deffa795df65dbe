// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/Felipaof/My-Fluxo-Finance/internal/application/usecase/report"
)

// ExportResponse is the JSON form of an export. Rows holds transaction or goal rows.
type ExportResponse struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
	Rows  any    `json:"rows"`
}

// ToExportResponse converts an export to its JSON response.
func ToExportResponse(output *report.ExportDataOutput) ExportResponse {
	if output.Type == report.ExportGoals {
		return ExportResponse{Type: string(output.Type), Count: len(output.Goals), Rows: output.Goals}
	}
	return ExportResponse{Type: string(output.Type), Count: len(output.Transactions), Rows: output.Transactions}
}
