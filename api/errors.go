// File: api/errors.go
//
// Common error types and error handling utilities for the library.

package api

import "fmt"

// Common errors used across the library.
var (
	// ErrInvalidIndex signals a block index outside [0, NumBlocks).
	// Always a caller bug; never swallowed.
	ErrInvalidIndex = fmt.Errorf("block index out of range")

	// ErrUnknownIndex signals a double return or a return of a block that
	// was never checked out. Raised only by pools in strict mode; the
	// default policy is an idempotent no-op.
	ErrUnknownIndex = fmt.Errorf("block not currently allocated")

	// ErrPoolClosed signals use of a pool after Close.
	ErrPoolClosed = fmt.Errorf("block pool is closed")

	// ErrInvalidArgument signals rejected construction parameters.
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeInvalidIndex
	ErrCodeUnknownIndex
	ErrCodePoolClosed
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
	wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap exposes the sentinel this error was built from, so callers can
// match with errors.Is.
func (e *Error) Unwrap() error { return e.wrapped }

// NewError creates a new structured error wrapping a sentinel.
func NewError(code ErrorCode, sentinel error, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
		wrapped: sentinel,
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
