package domain

import (
	"errors"
	"fmt"
)

// Kind classifies an error so the transport layer can pick a status code
// without inspecting messages.
type Kind string

const (
	KindValidation      Kind = "validation"
	KindUnauthenticated Kind = "unauthenticated"
	KindForbidden       Kind = "forbidden"
	KindNotFound        Kind = "not_found"
	KindConflict        Kind = "conflict"
	KindUnavailable     Kind = "unavailable"
	KindInternal        Kind = "internal"
)

// Error is the typed error returned by services and repositories.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Validation builds a 400-class error.
func Validation(format string, args ...any) error {
	return newError(KindValidation, format, args...)
}

// NotFound builds a 404-class error for the named resource.
func NotFound(resource string) error {
	return newError(KindNotFound, "%s not found", resource)
}

// Conflict builds a 409-class error.
func Conflict(format string, args ...any) error {
	return newError(KindConflict, format, args...)
}

// Internal wraps an unexpected failure.
func Internal(err error) error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// MessageOf returns the client-safe message of err. Internal errors never
// expose their cause.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) && de.Kind != KindInternal {
		return de.Message
	}
	return "internal server error"
}

// Sentinels shared across services and repositories.
var (
	ErrInvalidCredentials = newError(KindUnauthenticated, "invalid credentials")
	ErrUnauthenticated    = newError(KindUnauthenticated, "authentication required")
	ErrAccountNotFound    = newError(KindNotFound, "account not found")
	ErrAccountExists      = newError(KindConflict, "account already exists")

	ErrCarNotFound      = newError(KindNotFound, "car not found")
	ErrBrandNotFound    = newError(KindNotFound, "brand not found")
	ErrBrandExists      = newError(KindConflict, "brand already exists")
	ErrBrandInUse       = newError(KindConflict, "brand is referenced by cars")
	ErrClientNotFound   = newError(KindNotFound, "client not found")
	ErrAgreementExists  = newError(KindConflict, "agreement number already exists")
	ErrOrderNotFound    = newError(KindNotFound, "order not found")
	ErrDocumentNotFound = newError(KindNotFound, "document not found")
	ErrTrackingExists   = newError(KindConflict, "tracking code already exists")

	ErrRateUnavailable = newError(KindUnavailable, "exchange rate unavailable")
)
