// Package apperr defines the error kinds returned by domain services and
// their mapping onto HTTP responses.
package apperr

import (
	"errors"
	"net/http"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrConflict          = errors.New("conflict")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrUnavailable       = errors.New("unavailable")
	ErrInternal          = errors.New("internal error")
)

const internalMessage = "internal server error"

// Error carries a kind sentinel, a message safe to show to the caller and
// an optional underlying cause that is only logged.
type Error struct {
	Kind    error
	Message string
	Cause   error
	// Details are extra response fields, e.g. the client action hint.
	Details map[string]string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

// With returns a copy of e with an extra response field.
func (e *Error) With(key, value string) *Error {
	cp := *e
	cp.Details = make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		cp.Details[k] = v
	}
	cp.Details[key] = value
	return &cp
}

func newError(kind error, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Validation(msg string) *Error        { return newError(ErrValidation, msg) }
func Conflict(msg string) *Error          { return newError(ErrConflict, msg) }
func Unauthenticated(msg string) *Error   { return newError(ErrUnauthenticated, msg) }
func InvalidCredential(msg string) *Error { return newError(ErrInvalidCredential, msg) }
func Forbidden(msg string) *Error         { return newError(ErrForbidden, msg) }
func NotFound(msg string) *Error          { return newError(ErrNotFound, msg) }
func Unavailable(msg string) *Error       { return newError(ErrUnavailable, msg) }

// Internal wraps an unexpected failure. The cause is never shown to callers.
func Internal(msg string, cause error) *Error {
	return &Error{Kind: ErrInternal, Message: msg, Cause: cause}
}

// HTTPStatus maps err onto a response status code.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidCredential):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// Message returns the caller-facing text for err. Internal and unknown
// errors always produce a generic message.
func Message(err error) string {
	var e *Error
	if !errors.As(err, &e) || errors.Is(e.Kind, ErrInternal) {
		return internalMessage
	}
	return e.Message
}

// Details returns the extra response fields attached to err, if any.
func Details(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Details
	}
	return nil
}

// IsInternal reports whether err maps to a 500 response.
func IsInternal(err error) bool {
	return HTTPStatus(err) == http.StatusInternalServerError
}
