// Package errs defines the application error type shared by services and
// controllers. Every error carries an HTTP status code so handlers can map
// failures to responses without inspecting error strings.
package errs

import (
	"fmt"
	"net/http"
)

// Error represents an application error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error.
func New(code int, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// NotFound reports a missing product, supplier, or price record.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message, nil)
}

// Validation reports rejected input (negative price, bad stock status, ...).
func Validation(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

// Conflict reports a detected concurrent-submission race.
func Conflict(message string) *Error {
	return New(http.StatusConflict, message, nil)
}

// Forbidden reports an unauthorized supplier/product pairing.
func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message, nil)
}

// Internal wraps an unexpected store or driver failure.
func Internal(err error) *Error {
	return New(http.StatusInternalServerError, "Internal server error", err)
}

// Status returns the HTTP status and message for err, defaulting to a 500
// for errors that are not application errors.
func Status(err error) (int, string) {
	if e, ok := err.(*Error); ok {
		return e.Code, e.Message
	}
	return http.StatusInternalServerError, "Internal server error"
}
