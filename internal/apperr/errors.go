// Package apperr defines the error kinds surfaced to API callers.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	KindValidation   Kind = iota + 1 // bad or missing input
	KindNotFound                     // referenced id does not exist
	KindConflict                     // row still referenced elsewhere
	KindIntegrity                    // cascade could not complete
	KindUnauthorized                 // wrong or missing PIN
)

// Error is the error type returned by services.
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

func (e *Error) Unwrap() error { return e.Err }

// Validation builds a ValidationError.
func Validation(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFound builds a NotFoundError for an entity kind and id.
func NotFound(entity, id string) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s not found (id: %s)", entity, id)}
}

// Conflict builds an error for a write rejected by a foreign key.
func Conflict(msg string, cause error) error {
	return &Error{Kind: KindConflict, Message: msg, Err: cause}
}

// Integrity builds an IntegrityError wrapping the failed statement.
func Integrity(msg string, cause error) error {
	return &Error{Kind: KindIntegrity, Message: msg, Err: cause}
}

// Unauthorized builds an error for a rejected PIN.
func Unauthorized(msg string) error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

// KindOf returns the kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool { return KindOf(err) == KindValidation }

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsIntegrity reports whether err is an IntegrityError.
func IsIntegrity(err error) bool { return KindOf(err) == KindIntegrity }

// IsConflict reports whether err is a write rejected by a foreign key.
func IsConflict(err error) bool { return KindOf(err) == KindConflict }

// IsUnauthorized reports whether err is a rejected PIN.
func IsUnauthorized(err error) bool { return KindOf(err) == KindUnauthorized }

// Status maps err to an HTTP status code.
func Status(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the caller-facing message for err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Kind == KindIntegrity || e.Kind == KindConflict {
			return e.Message
		}
		return e.Error()
	}
	return "internal server error"
}
