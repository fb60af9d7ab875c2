package apperror

import (
	"errors"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	Cause   error        `json:"-"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Detail returns the underlying message reported in the "error" field of a response.
func (e *AppError) Detail() string {
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Message
}

// ErrUnauthorized is returned when a request carries no user identity
var ErrUnauthorized = &AppError{Code: http.StatusUnauthorized, Message: "Unauthorized"}

// NewFieldError creates a validation error for a single field. The message is
// reported as the error message itself.
func NewFieldError(field, message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
		Errors:  []FieldError{{Field: field, Message: message}},
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: message,
	}
}

// NewConflictError creates a conflict error with a custom message
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// Wrap turns an unexpected failure into a 500 with a user-facing message.
// An AppError passes through untouched.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if IsAppError(err) {
		return err
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: message,
		Cause:   err,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
		Cause:   err,
	}
}
