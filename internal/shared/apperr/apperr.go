// Package apperr defines the closed set of failure kinds the application
// reports across layer boundaries. The HTTP layer maps each kind to exactly
// one response shape.
package apperr

import (
	"errors"
	"strings"
)

// Kind classifies a failure.
type Kind int

const (
	// KindInternal is any failure that is not one of the recognised kinds.
	KindInternal Kind = iota
	// KindValidation is a field-level rejection of a write. It may carry several messages.
	KindValidation
	// KindUniqueness is a unique constraint violation in the store.
	KindUniqueness
	// KindNotFound means the addressed resource does not exist.
	KindNotFound
	// KindUnauthorized means the request carried no usable credentials.
	KindUnauthorized
	// KindForbidden means the caller is authenticated but not allowed to act.
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUniqueness:
		return "uniqueness"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	default:
		return "internal"
	}
}

// Error is a classified failure. Messages are safe to show to clients;
// Cause is kept for logging and errors.Is/As only.
type Error struct {
	Kind     Kind
	Messages []string
	Cause    error
}

// New returns an Error of the given kind with client-facing messages.
func New(kind Kind, messages ...string) *Error {
	return &Error{Kind: kind, Messages: messages}
}

// Wrap returns an Error of the given kind that keeps cause in its chain.
func Wrap(kind Kind, cause error, messages ...string) *Error {
	return &Error{Kind: kind, Messages: messages, Cause: cause}
}

func (e *Error) Error() string {
	msg := strings.Join(e.Messages, "; ")
	switch {
	case msg == "" && e.Cause != nil:
		return e.Cause.Error()
	case msg == "":
		return e.Kind.String()
	case e.Cause != nil:
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// Message returns the first client-facing message, or fallback when none is set.
func (e *Error) Message(fallback string) string {
	if len(e.Messages) == 0 {
		return fallback
	}
	return e.Messages[0]
}

// KindOf reports the kind of the first *Error in err's chain.
// Unclassified errors are KindInternal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// As extracts the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
