// Package dto holds wire types shared by HTTP handlers and middleware.
package dto

import (
	"net/http"
	"strings"
)

// Error codes returned in the "code" field of error bodies
const (
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeInvalidInput    = "INVALID_INPUT"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeTooLarge        = "REQUEST_TOO_LARGE"
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeUnavailable     = "SERVICE_UNAVAILABLE"
	invalidFieldCodePrefix = "INVALID_"
)

// InternalErrorMessage replaces the message of every 500 response
const InternalErrorMessage = "An unexpected error occurred"

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeTooLarge:     http.StatusRequestEntityTooLarge,
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeUnavailable:  http.StatusServiceUnavailable,
}

// GetHTTPStatus returns the status for code. Field-level domain codes
// (INVALID_VALUE, INVALID_DATE, ...) are 400; anything unknown is 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, invalidFieldCodePrefix) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// ValidationDetail describes one rejected field
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Message   string             `json:"message"`
	Code      string             `json:"code"`
	RequestID string             `json:"request_id,omitempty"`
	Details   []ValidationDetail `json:"details,omitempty"`
}

// NewErrorResponse builds an error body
func NewErrorResponse(code, message, requestID string) ErrorResponse {
	return ErrorResponse{Message: message, Code: code, RequestID: requestID}
}

// NewValidationErrorResponse builds a 400 body listing the rejected fields
func NewValidationErrorResponse(message, requestID string, details []ValidationDetail) ErrorResponse {
	return ErrorResponse{
		Message:   message,
		Code:      ErrCodeValidation,
		RequestID: requestID,
		Details:   details,
	}
}

// MessageResponse is the body of delete confirmations
type MessageResponse struct {
	Message string `json:"message"`
}
