package errors

import (
	"errors"
	"fmt"
)

const (
	StatusOK                  = 200
	StatusNoContent           = 204
	StatusBadRequest          = 400
	StatusNotFound            = 404
	StatusMethodNotAllowed    = 405
	StatusRequestTimeout      = 408
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
)

const (
	ErrorTypeStoreError          = "STORE_ERROR"
	ErrorTypeMailError           = "MAIL_ERROR"
	ErrorTypeMirrorError         = "MIRROR_ERROR"
	ErrorTypeInvalidRequest      = "INVALID_REQUEST"
	ErrorTypeNotFound            = "NOT_FOUND"
	ErrorTypeTooManyRequests     = "TOO_MANY_REQUESTS"
	ErrorTypeRequestTimeout      = "REQUEST_TIMEOUT"
	ErrorTypeMethodNotAllowed    = "METHOD_NOT_ALLOWED"
	ErrorTypeInternalServerError = "INTERNAL_SERVER_ERROR"
	ErrorTypeUnknown             = "UNKNOWN_ERROR"
)

type AppError struct {
	Type    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(errType, message string, err error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

// NewInvalidRequestError wraps a validation or malformed-input failure.
// Message is user-facing and returned verbatim in the response body.
func NewInvalidRequestError(message string, err error) *AppError {
	return NewAppError(ErrorTypeInvalidRequest, message, err)
}

// NewStoreError wraps a durable-log failure (corrupt file, failed write).
// Fatal for the current request; never retried.
func NewStoreError(message string, err error) *AppError {
	return NewAppError(ErrorTypeStoreError, message, err)
}

// NewMailError wraps a mail-relay failure (connection, auth, rejected
// recipient). Fatal for the current request; never retried or queued.
func NewMailError(message string, err error) *AppError {
	return NewAppError(ErrorTypeMailError, message, err)
}

// NewMirrorError wraps an external document-store failure. Mirror errors
// are advisory only: callers log them and never surface them to clients.
func NewMirrorError(message string, err error) *AppError {
	return NewAppError(ErrorTypeMirrorError, message, err)
}

func NewNotFoundError(message string, err error) *AppError {
	return NewAppError(ErrorTypeNotFound, message, err)
}

func NewInternalServerError(message string, err error) *AppError {
	return NewAppError(ErrorTypeInternalServerError, message, err)
}

func GetErrorType(err error) string {
	if err == nil {
		return ""
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}

	return ErrorTypeUnknown
}
