package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies every failure the service can surface. Handlers never hand
// an unclassified error to the transport layer.
type Kind int

const (
	AuthFailure Kind = iota + 1
	NotFound
	ValidationFailure
	UpstreamFailure
)

func (k Kind) String() string {
	switch k {
	case AuthFailure:
		return "auth_failure"
	case NotFound:
		return "not_found"
	case ValidationFailure:
		return "validation_failure"
	case UpstreamFailure:
		return "upstream_failure"
	}
	return "unknown"
}

// Error carries a kind, a message and an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new classified error.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a new classified error with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying error. Returns nil for a nil cause.
func Wrap(kind Kind, err error, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of err; errors that were never classified are
// treated as upstream failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return UpstreamFailure
}
