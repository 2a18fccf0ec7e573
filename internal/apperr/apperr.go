// Package apperr defines the request-scoped error taxonomy. Errors carry a
// code and a user-facing message; mapping to HTTP status happens only at the
// handler boundary.
package apperr

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeValidation Code = "VALIDATION"
	CodeNotFound   Code = "NOT_FOUND"
	CodeUpstream   Code = "UPSTREAM"
)

// Error is the single error type crossing the service/handler boundary.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Validation builds a 400-class error with a user-facing message.
func Validation(message string) *Error {
	return &Error{Code: CodeValidation, Message: message}
}

// NotFound builds a 404-class error.
func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

// Upstream wraps an external-call failure. The raw error message is exposed to
// the caller, matching the lookup endpoint's contract.
func Upstream(err error) *Error {
	return &Error{Code: CodeUpstream, Message: err.Error(), Err: err}
}

// CodeOf extracts the taxonomy code from err, or "" if err is not an *Error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
