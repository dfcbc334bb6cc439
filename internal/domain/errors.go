package domain

import "errors"

// ErrorKind is the closed set of failure categories the API exposes.
// Clients switch on the kind, never on message text.
type ErrorKind string

const (
	ErrorInvalid      ErrorKind = "invalid"
	ErrorUnauthorized ErrorKind = "unauthorized"
	ErrorForbidden    ErrorKind = "forbidden"
	ErrorNotFound     ErrorKind = "not_found"
	ErrorConflict     ErrorKind = "conflict"
	ErrorInternal     ErrorKind = "internal"
)

// Error is the application error type carried from services to the HTTP layer.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func Invalid(msg string) error      { return &Error{Kind: ErrorInvalid, Message: msg} }
func Unauthorized(msg string) error { return &Error{Kind: ErrorUnauthorized, Message: msg} }
func Forbidden(msg string) error    { return &Error{Kind: ErrorForbidden, Message: msg} }
func NotFound(msg string) error     { return &Error{Kind: ErrorNotFound, Message: msg} }
func Conflict(msg string) error     { return &Error{Kind: ErrorConflict, Message: msg} }

// Internal wraps an unexpected error without leaking its text to clients.
func Internal(msg string, err error) error {
	return &Error{Kind: ErrorInternal, Message: msg, Err: err}
}

// AsError extracts a *Error from an error chain.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// KindOf returns the kind of err, or ErrorInternal for untyped errors.
func KindOf(err error) ErrorKind {
	if de, ok := AsError(err); ok {
		return de.Kind
	}
	return ErrorInternal
}
