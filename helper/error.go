package helper

import "fmt"

// Error wraps an underlying error with the operation that produced it.
type Error struct {
	Operation string
	Err       error
}

// NewError creates a new Error wrapping err with the given operation context.
func NewError(operation string, err error) *Error {
	return &Error{
		Operation: operation,
		Err:       err,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("error %s: %v", e.Operation, e.Err)
}

// Unwrap returns the wrapped error for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.Err
}
