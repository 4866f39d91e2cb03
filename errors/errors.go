package errors

import (
	"errors"
	"fmt"
)

// ErrorCode phân loại lỗi của ứng dụng.
type ErrorCode string

const (
	// Request/field level
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Business rules
	ErrCodeConflict ErrorCode = "CONFLICT"
	ErrCodeState    ErrorCode = "INVALID_STATE"

	// Lookup / access
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"

	// Infrastructure
	ErrCodeDBError  ErrorCode = "DB_ERROR"
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// AppError is the error type every business-rule failure is reported as.
// Controllers map the code to an HTTP status and the message to the
// response envelope.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới.
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation creates a 400-class field/form error.
func Validation(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, nil)
}

// Conflict creates a business-rule conflict error (overlapping booking,
// room under maintenance, duplicate name, ...).
func Conflict(message string) *AppError {
	return NewAppError(ErrCodeConflict, message, nil)
}

// State creates an invalid state-transition error.
func State(message string) *AppError {
	return NewAppError(ErrCodeState, message, nil)
}

// NotFound creates a missing-entity error.
func NotFound(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, nil)
}

// Forbidden creates an ownership-violation error.
func Forbidden(message string) *AppError {
	return NewAppError(ErrCodeForbidden, message, nil)
}

// Internal wraps an unexpected failure. The message stays generic so the
// caller never leaks internals.
func Internal(err error) *AppError {
	return NewAppError(ErrCodeInternal, "An unexpected error occurred", err)
}

// IsAppError kiểm tra error có phải AppError không.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError extracts the AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
