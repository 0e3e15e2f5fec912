package sparseset

import (
	"errors"
	"fmt"
)

// Common sparse set errors
var (
	// ErrNotFound indicates the identifier has no live entry
	ErrNotFound = errors.New("identifier not found")

	// ErrOutOfRange indicates the identifier is outside the supported capacity
	ErrOutOfRange = errors.New("identifier out of range")
)

// IDError wraps a failed operation with the offending identifier.
// The identifier is widened to uint64 so one error type serves every ID width.
type IDError struct {
	ID  uint64
	Err error
}

// Error implements the error interface
func (e *IDError) Error() string {
	return fmt.Sprintf("sparseset: id %d: %v", e.ID, e.Err)
}

// Unwrap returns the underlying error
func (e *IDError) Unwrap() error {
	return e.Err
}
