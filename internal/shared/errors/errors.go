// Package errors provides the single typed failure carried from use cases to the HTTP layer.
// Every AppError has an HTTP status, an optional machine code and an optional user-facing message.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// CodeUnauthorized is the code attached to every 401 response.
const CodeUnauthorized = "E4010"

// AppError represents an application error with an HTTP status.
type AppError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code,omitempty"`
	Message    string `json:"message,omitempty"`
	cause      error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%d %s: %v", e.StatusCode, e.Message, e.cause)
	}
	return fmt.Sprintf("%d %s", e.StatusCode, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// WithCause keeps the underlying error for logs; it is never serialized.
func (e *AppError) WithCause(err error) *AppError {
	cp := *e
	cp.cause = err
	return &cp
}

func New(status int, code, message string) *AppError {
	return &AppError{StatusCode: status, Code: code, Message: message}
}

// NewValidationError creates a 400 with a message only.
func NewValidationError(message string) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Message: message}
}

// NewBadRequestError is used for state conflicts such as an already-used ticketbook.
func NewBadRequestError(message string) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Message: message}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{StatusCode: http.StatusForbidden, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{StatusCode: http.StatusNotFound, Message: message}
}

func NewTooManyRequestsError(message string) *AppError {
	return &AppError{StatusCode: http.StatusTooManyRequests, Message: message}
}

func NewUnavailableError(message string) *AppError {
	return &AppError{StatusCode: http.StatusServiceUnavailable, Message: message}
}

func NewInternalError(message string) *AppError {
	return &AppError{StatusCode: http.StatusInternalServerError, Message: message}
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func IsAppError(err error) bool {
	return GetAppError(err) != nil
}

// HasStatus reports whether err is an AppError with the given status.
func HasStatus(err error, status int) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.StatusCode == status
}

func IsNotFound(err error) bool {
	return HasStatus(err, http.StatusNotFound)
}

// Is and As re-export the standard helpers so callers need a single import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}
