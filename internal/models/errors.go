package models

import (
	"time"
)

// Operation failures are returned as typed values instead of being matched by
// message text. Services produce them; the handlers package owns the single
// translation to transport status codes.

// ValidationError reports input fields that failed validation
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "Validation failed for fields"
}

// NewValidationError wraps a non-empty field -> message map
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// NotFoundError reports a referenced entity that does not exist
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ConflictError reports a uniqueness or referential-integrity conflict
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// ForbiddenError reports a caller lacking permission for the target operation
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// UnauthorizedError reports failed authentication
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}

// ErrorResponse is the uniform JSON error body shared by every failure path
type ErrorResponse struct {
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Path      string            `json:"path"`
	Fields    map[string]string `json:"fields,omitempty"`
}
