// Package apperr defines the error type shared across quave packages
package apperr

import (
	"fmt"
)

// Error is a user-facing error. Package-level values act as templates: Fmt
// and Wrap return copies that still match the template with errors.Is.
type Error struct {
	Cause   error
	base    *Error
	Message string
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

// Fmt formats the error message with the given arguments.
func (e *Error) Fmt(v ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, v...),
		Cause:   e.Cause,
		base:    e.root(),
	}
}

// Wrap attaches an underlying cause to the error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Cause:   err,
		base:    e.root(),
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e == t || e.root() == t
}

func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}
