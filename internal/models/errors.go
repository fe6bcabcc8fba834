package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies recoverable validation and lookup failures so
// command handlers can decide how to report them.
type ErrorKind string

const (
	ErrInvalidFormat      ErrorKind = "invalid_format"
	ErrNotFound           ErrorKind = "not_found"
	ErrInvalidArgument    ErrorKind = "invalid_argument"
	ErrPreconditionFailed ErrorKind = "precondition_failed"
)

// Error is the single error type the model layer returns. Message is
// user-facing and printed verbatim.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func NewError(kind ErrorKind, message string, cause error) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

func NewInvalidFormatError(message string) *Error {
	return NewError(ErrInvalidFormat, message, nil)
}

func NewNotFoundError(what, key string) *Error {
	return NewError(ErrNotFound, fmt.Sprintf("%s '%s' not found", what, key), nil)
}

func NewInvalidArgumentError(message string) *Error {
	return NewError(ErrInvalidArgument, message, nil)
}

func NewPreconditionError(message string) *Error {
	return NewError(ErrPreconditionFailed, message, nil)
}

// KindOf extracts the kind from err, reporting whether err is (or
// wraps) a model Error.
func KindOf(err error) (ErrorKind, bool) {
	var modelErr *Error
	if errors.As(err, &modelErr) {
		return modelErr.Kind, true
	}
	return "", false
}

// IsKind reports whether err is a model Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	got, ok := KindOf(err)
	return ok && got == kind
}
