package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kiliclub/clubdesk/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodePlayerNotFound     = "PLAYER_NOT_FOUND"
	CodePaymentNotFound    = "PAYMENT_NOT_FOUND"
	CodeLocationNotFound   = "LOCATION_NOT_FOUND"
	CodeRoleNotFound       = "ROLE_NOT_FOUND"
	CodeRoleNameExists     = "ROLE_NAME_EXISTS"
	CodeDefaultRoleLocked  = "DEFAULT_ROLE_LOCKED"
	CodeInvalidPaymentType = "INVALID_PAYMENT_TYPE"
	CodePlayerRequired     = "PLAYER_REQUIRED"
	CodeNotesTooLong       = "NOTES_TOO_LONG"
	CodeZeroAmount         = "ZERO_AMOUNT"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrPaymentNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePaymentNotFound, "Payment not found"}}
	case errors.Is(err, model.ErrLocationNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeLocationNotFound, "Location not found"}}
	case errors.Is(err, model.ErrRoleNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRoleNotFound, "Role not found"}}
	case errors.Is(err, model.ErrRoleNameExists):
		return &httpError{http.StatusConflict, APIError{CodeRoleNameExists, "A role with this name already exists"}}
	case errors.Is(err, model.ErrDefaultRoleLocked):
		return &httpError{http.StatusForbidden, APIError{CodeDefaultRoleLocked, "Default roles cannot be modified or deleted"}}
	case errors.Is(err, model.ErrInvalidPaymentType):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPaymentType, "Payment type must be player, court or others"}}
	case errors.Is(err, model.ErrPlayerRequired):
		return &httpError{http.StatusBadRequest, APIError{CodePlayerRequired, "Player payments require a player id"}}
	case errors.Is(err, model.ErrNotesTooLong):
		return &httpError{http.StatusBadRequest, APIError{CodeNotesTooLong, "Notes exceed the maximum length"}}
	case errors.Is(err, model.ErrZeroAmount):
		return &httpError{http.StatusBadRequest, APIError{CodeZeroAmount, "Payment amount must be non-zero"}}
	}

	// Default to internal server error
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
