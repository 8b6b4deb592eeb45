package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// Request/domain errors
	ErrorTypeValidation   ErrorType = "VALIDATION"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"

	// Application errors
	ErrorTypeInternal ErrorType = "INTERNAL"

	// Stream-processing errors. MalformedEvent and Persistence are
	// recoverable per record; CatalogLoad fails the whole batch because
	// no record can be scored without the catalog.
	ErrorTypeMalformedEvent ErrorType = "MALFORMED_EVENT"
	ErrorTypeCatalogLoad    ErrorType = "CATALOG_LOAD"
	ErrorTypePersistence    ErrorType = "PERSISTENCE"
)

// AppError represents an application-specific error
type AppError struct {
	Type       ErrorType              `json:"type"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Cause      error                  `json:"-"`
	HTTPStatus int                    `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetails adds error details
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

// WithCause wraps an underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// NewValidationError creates a validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError(message string) *AppError {
	if message == "" {
		message = "unauthorized"
	}
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewInternalError creates an internal error
func NewInternalError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewMalformedEventError marks a stream record that cannot be scored
// (missing user ID, missing answers, unusable image).
func NewMalformedEventError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeMalformedEvent,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewCatalogLoadError marks a failed question-catalog fetch.
func NewCatalogLoadError(err error) *AppError {
	return &AppError{
		Type:       ErrorTypeCatalogLoad,
		Message:    "failed to load question catalog",
		Cause:      err,
		HTTPStatus: http.StatusServiceUnavailable,
	}
}

// NewPersistenceError marks a failed write-back of a scored result.
func NewPersistenceError(err error) *AppError {
	return &AppError{
		Type:       ErrorTypePersistence,
		Message:    "failed to persist classification",
		Cause:      err,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// TypeOf extracts the ErrorType from an error chain, or ErrorTypeInternal
// for plain errors.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// IsBatchFatal reports whether the error must abort the whole batch and
// surface to the invocation boundary so upstream redelivery applies.
// Only a catalog load failure qualifies.
func IsBatchFatal(err error) bool {
	return TypeOf(err) == ErrorTypeCatalogLoad
}

// IsRecordSkippable reports whether the error is recovered per record:
// log, drop the record, continue the batch.
func IsRecordSkippable(err error) bool {
	switch TypeOf(err) {
	case ErrorTypeMalformedEvent, ErrorTypePersistence, ErrorTypeValidation:
		return true
	}
	return false
}

// IsNotFound reports whether the error chain contains a not-found error.
func IsNotFound(err error) bool {
	return TypeOf(err) == ErrorTypeNotFound
}
