package router

import (
	"errors"
	"fmt"
)

var (
	// Registration errors
	ErrInvalidPattern = errors.New("invalid route pattern")
	ErrInvalidVerb    = errors.New("invalid route verb")
	ErrInvalidTarget  = errors.New("invalid route target")
	ErrNilHandler     = errors.New("nil handler")
	ErrNilRouter      = errors.New("nil router")
	ErrNoTargets      = errors.New("no route targets")

	// Dispatch errors, logged and converted to responses
	ErrCoerce = errors.New("cannot convert handler result to a response")
)

// PanicError is implemented by errors wrapping a panic recovered during
// dispatch. It gives loggers access to the original value and stack.
type PanicError interface {
	error
	// Value returns the original panic value.
	Value() any
	// Stack returns the stack trace captured at the panic point.
	Stack() []byte
}

type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

func (e *panicError) Value() any {
	return e.value
}

func (e *panicError) Stack() []byte {
	return e.stack
}

// Unwrap allows errors.Is/As to see a panicked error value.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
