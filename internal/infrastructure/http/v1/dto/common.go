// Package dto provides Data Transfer Objects for API requests/responses.
package dto

// IDResponse for create operations.
type IDResponse struct {
	ID string `json:"id"`
}

// SuccessResponse for operations without data.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse for error details.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// PeriodQuery selects a date range. Dates are inclusive on the from side and
// exclusive after the to day.
type PeriodQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}
