// Package errors provides standardized error types for vectorized kernel
// construction and evaluation. It defines KernelError for consistent error
// handling across all public APIs, with operation context and error wrapping
// support.
package errors

import (
	"fmt"
)

// KernelError represents standardized errors across kernel construction and
// batch evaluation.
type KernelError struct {
	Op      string // Operator name (e.g., "equalto", "lessthan")
	Type    string // Argument type name if applicable
	Message string // Human-readable error description
	Cause   error  // Underlying error cause
}

// Error implements the error interface
func (e *KernelError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("%s failed for type %s: %s", e.Op, e.Type, e.Message)
	}
	return fmt.Sprintf("%s failed: %s", e.Op, e.Message)
}

// Unwrap returns the underlying cause for error wrapping support
func (e *KernelError) Unwrap() error {
	return e.Cause
}

// Is implements error equality checking for errors.Is()
func (e *KernelError) Is(target error) bool {
	if ke, ok := target.(*KernelError); ok {
		return e.Op == ke.Op && e.Type == ke.Type && e.Message == ke.Message
	}
	return false
}

// Common error constructors for consistent error creation

// NewSignatureError creates an error for invalid argument signatures passed
// to a kernel constructor (wrong arity, mismatched argument types).
func NewSignatureError(op, message string) *KernelError {
	return &KernelError{
		Op:      op,
		Message: message,
	}
}

// NewUnsupportedTypeError creates an error for element kinds outside the
// comparison allow-list.
func NewUnsupportedTypeError(op, typeName string) *KernelError {
	return &KernelError{
		Op:      op,
		Type:    typeName,
		Message: "not supported for this type",
	}
}

// NewInvalidInputError creates an error for invalid evaluation inputs
func NewInvalidInputError(op, message string) *KernelError {
	return &KernelError{
		Op:      op,
		Message: message,
	}
}

// NewInternalError creates an error for internal operation failures
func NewInternalError(op string, cause error) *KernelError {
	return &KernelError{
		Op:      op,
		Message: "internal error occurred",
		Cause:   cause,
	}
}

// Predefined error variables for common cases
var (
	// ErrMismatchedLength indicates row-count mismatches between argument columns
	ErrMismatchedLength = &KernelError{
		Op:      "validation",
		Message: "argument columns must have the same length",
	}

	// ErrInvalidIndex indicates out-of-bounds row access
	ErrInvalidIndex = &KernelError{
		Op:      "indexing",
		Message: "row index out of bounds",
	}

	// ErrNilResult indicates a missing result buffer slot
	ErrNilResult = &KernelError{
		Op:      "validation",
		Message: "result slot must not be nil",
	}
)
