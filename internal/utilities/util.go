// Package utilities contain utility code that use across the package
package utilities

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the error envelope returned by every failing endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the confirmation envelope for operations without a body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse carries per-field details for schema violations.
type ValidationErrorResponse struct {
	Error   string                  `json:"error"`
	Details []ValidationErrorDetail `json:"details"`
}

// ValidationErrorDetail describes a single failed field.
type ValidationErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewValidationErrorResponse converts a binding error into the
// {"error": "Validation error", "details": [...]} envelope. Non-validator
// errors (e.g. malformed JSON) get a single detail entry.
func NewValidationErrorResponse(err error) ValidationErrorResponse {
	resp := ValidationErrorResponse{Error: "Validation error"}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			resp.Details = append(resp.Details, ValidationErrorDetail{
				Field:   fe.Field(),
				Message: fe.Tag(),
			})
		}
		return resp
	}

	resp.Details = append(resp.Details, ValidationErrorDetail{
		Field:   "request",
		Message: err.Error(),
	})
	return resp
}
