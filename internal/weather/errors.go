package weather

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by Service wraps exactly one of them.
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("not found")
	ErrUpstream       = errors.New("upstream error")
	ErrIncompleteData = errors.New("incomplete data")
)

// Error carries a client-facing message alongside its kind and cause
type Error struct {
	Kind    error
	Message string
	Err     error
}

func newError(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
