// internal/model/error.go
package model

import (
	"errors"
	"fmt"
)

// Application errors
var (
	ErrNotFound              = errors.New("resource not found")
	ErrInvalidInput          = errors.New("invalid input")
	ErrInvalidStage          = errors.New("stage out of range")
	ErrRepositoryUnavailable = errors.New("repository unavailable")
	ErrInternalServer        = errors.New("internal server error")
	ErrConflict              = errors.New("resource conflict")
)

// AppError carries a machine readable code and a user facing message on top
// of one of the sentinel errors above.
type AppError struct {
	Code    string
	Message string
	Field   string
	Err     error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{Code: code, Message: message, Field: field, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Detail returns the part of the error that is safe to show to clients.
func (e *AppError) Detail() ErrorDetail {
	return ErrorDetail{Code: e.Code, Message: e.Message, Field: e.Field}
}

// ErrorDetail is the error body of API responses.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse wraps ErrorDetail for JSON responses.
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
