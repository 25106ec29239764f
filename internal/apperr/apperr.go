// Package apperr defines the service-level error taxonomy.
//
// Every error a service returns across its boundary carries a Kind that the
// transport layer maps to a caller-visible status. Store-level errors other
// than "not found" are wrapped as Internal and propagate; nothing is
// silently swallowed at the service boundary.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a service error.
type Kind int

const (
	// Internal is an unexpected failure (store I/O, signing, hashing).
	Internal Kind = iota
	// NotFound means the addressed entity is absent.
	NotFound
	// Conflict means a duplicate identity (e.g. email already registered).
	Conflict
	// Forbidden means an authorization or ownership mismatch, or an
	// unverified account.
	Forbidden
	// Unauthorized means bad credentials or an invalid/expired token.
	Unauthorized
	// InvalidInput means a malformed value or a bad transition target.
	InvalidInput
	// InvalidState means the entity cannot accept the operation in its
	// current state (e.g. joining a closed session).
	InvalidState
	// Expired means a time-bounded credential (reset OTP) has lapsed.
	Expired
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	case Forbidden:
		return "forbidden"
	case Unauthorized:
		return "unauthorized"
	case InvalidInput:
		return "invalid_input"
	case InvalidState:
		return "invalid_state"
	case Expired:
		return "expired"
	default:
		return "internal"
	}
}

// HTTPStatus returns the status code this kind maps to at the transport
// boundary.
func (k Kind) HTTPStatus() int {
	switch k {
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case Forbidden:
		return http.StatusForbidden
	case Unauthorized:
		return http.StatusUnauthorized
	case InvalidInput, InvalidState, Expired:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified service error.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New returns a classified error with the given message.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf returns a classified error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying error.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the Kind from err, walking the wrap chain.
// Unclassified errors are Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
