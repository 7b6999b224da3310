// Package apperrors defines the typed error taxonomy shared by the
// repository, service and handler layers. Services raise an *Error at the
// point a business rule is violated; handlers translate the Kind into an
// HTTP status and expose the Code string to clients.
package apperrors

import "errors"

// Kind classifies a domain error.
type Kind int

const (
	KindUnexpected Kind = iota
	KindNotFound
	KindBadRequest
	KindConflict
	KindPaymentRequired
	KindAccessDenied
	KindValidation
)

// Error is a domain error with a stable machine-readable code. The wrapped
// error, if any, is internal detail and must not be sent to clients.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound reports that a referenced entity does not resolve.
func NotFound(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

// BadRequest reports structurally valid but semantically invalid input.
func BadRequest(code, message string) *Error {
	return &Error{Kind: KindBadRequest, Code: code, Message: message}
}

// Conflict reports a violated uniqueness invariant.
func Conflict(code, message string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

// PaymentRequired reports an insufficient balance for a purchase.
func PaymentRequired(code, message string) *Error {
	return &Error{Kind: KindPaymentRequired, Code: code, Message: message}
}

// AccessDenied reports a failed authorization or authentication check.
func AccessDenied(code, message string) *Error {
	return &Error{Kind: KindAccessDenied, Code: code, Message: message}
}

// Validation reports malformed field-level input.
func Validation(code, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

// Unexpected wraps an uncategorized internal error.
func Unexpected(message string, err error) *Error {
	return &Error{Kind: KindUnexpected, Code: "internal_error", Message: message, Err: err}
}

// KindOf returns the Kind of err, or KindUnexpected when err is not a
// domain error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// CodeOf returns the machine-readable code of err, or "internal_error"
// when err is not a domain error.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return "internal_error"
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
