package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/proptoken/proptoken-backend/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeConflict         ErrorCode = "conflict"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeUpstreamError ErrorCode = "upstream_error"
	ErrCodeIndeterminate ErrorCode = "indeterminate_state"
)

// APIError represents a structured API error that carries error code and details.
// Details is a field map for validation failures and a string otherwise.
type APIError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Stack   string      `json:"stack,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Envelope wraps every API response
type Envelope struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *APIError   `json:"error,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// Success wraps data in a success envelope
func Success(data interface{}) Envelope {
	return Envelope{
		Success:   true,
		Data:      data,
		Timestamp: now(),
	}
}

// Failure wraps an error in a failure envelope
func Failure(apiErr *APIError) Envelope {
	return Envelope{
		Success:   false,
		Error:     apiErr,
		Timestamp: now(),
	}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func details(d []string) interface{} {
	if len(d) == 0 {
		return nil
	}
	return strings.Join(d, ", ")
}

// Error constructors for common error types
func NewBadRequestError(message string, d ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: details(d),
	}
}

func NewNotFoundError(message string, d ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: details(d),
	}
}

func NewValidationError(message string, fields map[string]string) *APIError {
	e := &APIError{
		Code:    ErrCodeValidationFailed,
		Message: message,
	}
	if len(fields) > 0 {
		e.Details = fields
	}
	return e
}

func NewUnauthorizedError(message string, d ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: details(d),
	}
}

func NewInternalError(message string, d ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: details(d),
	}
}

// FromError maps a domain error to an HTTP status and API error.
// The stack is attached only when withStack is set.
func FromError(err error, withStack bool) (int, *APIError) {
	status, apiErr := classify(err)
	if withStack && status >= http.StatusInternalServerError {
		apiErr.Stack = string(debug.Stack())
	}
	return status, apiErr
}

func classify(err error) (int, *APIError) {
	var (
		validationErr    *domain.ValidationError
		notFoundErr      *domain.NotFoundError
		conflictErr      *domain.ConflictError
		indeterminateErr *domain.IndeterminateStateError
		upstreamErr      *domain.UpstreamError
		apiErr           *APIError
	)

	switch {
	case errors.As(err, &apiErr):
		return statusFor(apiErr.Code), apiErr
	// checked first: an indeterminate sale unwraps to its original failure
	case errors.As(err, &indeterminateErr):
		return http.StatusInternalServerError, &APIError{
			Code:    ErrCodeIndeterminate,
			Message: "Sale outcome is indeterminate and needs manual reconciliation",
			Details: map[string]string{
				"saleId":       indeterminateErr.SaleID,
				"cause":        indeterminateErr.Cause.Error(),
				"statusUpdate": indeterminateErr.StatusErr.Error(),
			},
		}
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, NewValidationError(validationErr.Message, validationErr.Fields)
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, NewNotFoundError(notFoundErr.Error())
	case errors.As(err, &conflictErr):
		return http.StatusConflict, &APIError{Code: ErrCodeConflict, Message: conflictErr.Error()}
	case errors.As(err, &upstreamErr):
		return http.StatusInternalServerError, &APIError{
			Code:    ErrCodeUpstreamError,
			Message: upstreamErr.Service + " request failed",
			Details: upstreamErr.Error(),
		}
	case errors.Is(err, domain.ErrTreasuryCredentialMissing):
		return http.StatusInternalServerError, NewInternalError("Token treasury credential is missing", err.Error())
	default:
		return http.StatusInternalServerError, NewInternalError("Internal server error", err.Error())
	}
}

func statusFor(code ErrorCode) int {
	switch code {
	case ErrCodeBadRequest, ErrCodeValidationFailed:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
