package apperror

import (
	"errors"
	"net/http"
)

// FieldError ties a validation message to the input field that caused it
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is an error that carries the HTTP status it should surface as.
// Services return these; the response layer maps anything else to a 500.
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Sentinels for conditions that carry no extra context
var (
	ErrNotFound           = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrForbidden          = &AppError{Code: http.StatusForbidden, Message: "Forbidden"}
	ErrInvalidCredentials = &AppError{Code: http.StatusUnauthorized, Message: "Invalid email or password"}
	ErrInvalidToken       = &AppError{Code: http.StatusUnauthorized, Message: "Invalid token"}
)

// NewNotFoundError reports a missing resource by name, e.g. "Premise not found"
func NewNotFoundError(resource string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: resource + " not found"}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message}
}

func NewUnprocessableError(message string) *AppError {
	return &AppError{Code: http.StatusUnprocessableEntity, Message: message}
}

// NewValidationError bundles per-field messages under a 422
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// FromError returns err as an *AppError. Unknown errors become a generic 500
// so internal details never reach the client.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{Code: http.StatusInternalServerError, Message: "Something went wrong"}
}
