package core

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure for the API error envelope. The label is what
// callers see in the `error` field of error responses.
type Kind string

const (
	KindUnauthenticated Kind = "Unauthenticated"
	KindForbidden       Kind = "Forbidden"
	KindValidation      Kind = "ValidationError"
	KindNotFound        Kind = "NotFound"
	KindConflict        Kind = "Conflict"
	KindUpstream        Kind = "UpstreamError"
	KindInternal        Kind = "InternalError"
)

// Status maps the kind to its HTTP status code.
func (k Kind) Status() int {
	switch k {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUpstream, KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Error is the failure value passed between components. Each component
// resolves its own kind at the point the failure is detected; nothing relies
// on panics or central inspection of causes.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates an error of the given kind.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError creates an error of the given kind wrapping a cause.
func WrapError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Unauthenticatedf builds an Unauthenticated error.
func Unauthenticatedf(format string, args ...any) *Error {
	return &Error{Kind: KindUnauthenticated, Message: fmt.Sprintf(format, args...)}
}

// Forbiddenf builds a Forbidden error.
func Forbiddenf(format string, args ...any) *Error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

// Validationf builds a ValidationError.
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a NotFound error.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflictf builds a Conflict error.
func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Upstreamf builds an UpstreamError wrapping the remote failure.
func Upstreamf(err error, format string, args ...any) *Error {
	return &Error{Kind: KindUpstream, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the kind from an error chain. Errors that carry no kind
// are unanticipated and classified as InternalError.
func KindOf(err error) Kind {
	var coreErr *Error
	if errors.As(err, &coreErr) {
		return coreErr.Kind
	}
	return KindInternal
}

// MessageOf extracts the user-facing message from an error chain. For
// unclassified errors the raw error text is used; handlers rely on the
// responder to log the cause before it is surfaced.
func MessageOf(err error) string {
	var coreErr *Error
	if errors.As(err, &coreErr) {
		return coreErr.Message
	}
	return err.Error()
}

// IsKind reports whether the error chain carries the given kind.
func IsKind(err error, kind Kind) bool {
	var coreErr *Error
	if errors.As(err, &coreErr) {
		return coreErr.Kind == kind
	}
	return false
}
