// Package errs defines the failure taxonomy shared by the ledger core and the
// HTTP layer. Every error that crosses a package boundary carries a Kind so
// callers never have to inspect storage-level failures directly.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure for callers.
type Kind uint8

const (
	// Unknown covers failures that have not been classified.
	Unknown Kind = iota
	// InvalidAmount indicates a string that is not a valid decimal numeral.
	InvalidAmount
	// InvalidArgument indicates a request that is well formed but not allowed:
	// negative amounts, self transfers, overdrafts, unrecognized enum values.
	InvalidArgument
	// NotFound indicates a referenced account does not exist.
	NotFound
	// Conflict indicates an identifier collision at creation time.
	Conflict
	// Unavailable indicates the operation could not complete after bounded
	// retries, typically due to transaction contention or an expired deadline.
	Unavailable
)

// String returns the kind's wire-friendly name.
func (k Kind) String() string {
	switch k {
	case InvalidAmount:
		return "invalid_amount"
	case InvalidArgument:
		return "invalid_argument"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	case Unavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Error is a classified failure with a human-readable reason.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

// Unwrap exposes the wrapped cause for errors.Is/As.
func (e *Error) Unwrap() error { return e.Err }

// E builds a classified error from a reason string.
func E(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Ef builds a classified error from a format string.
func Ef(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying failure without discarding it.
func Wrap(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the Kind from an error chain, or Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// HTTPStatus maps an error chain to the status code the facade should return.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case InvalidAmount, InvalidArgument:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
