// Package apperr defines the error taxonomy shared by every handler and maps
// each kind to its HTTP status
package apperr

import "net/http"

type Kind int

const (
	ValidationFailed Kind = iota
	InvalidIdentifier
	NotFound
	Forbidden
	Conflict
	UpstreamFailure
	Internal
)

func (k Kind) Status() int {
	switch k {
	case ValidationFailed, InvalidIdentifier:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Forbidden:
		return http.StatusForbidden
	case Conflict:
		return http.StatusConflict
	case UpstreamFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case ValidationFailed:
		return "validation_failed"
	case InvalidIdentifier:
		return "invalid_identifier"
	case NotFound:
		return "not_found"
	case Forbidden:
		return "forbidden"
	case Conflict:
		return "conflict"
	case UpstreamFailure:
		return "upstream_failure"
	default:
		return "internal"
	}
}

// Error carries a user-facing message and an optional wrapped cause. The cause
// is logged, never serialized.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ", " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(k Kind, msg string) *Error {
	return &Error{Kind: k, Message: msg}
}

func Wrap(k Kind, msg string, err error) *Error {
	return &Error{Kind: k, Message: msg, Err: err}
}

// From normalizes any error into an *Error. Unknown errors become Internal
// with a generic message so no failure detail leaks to the caller.
func From(err error) *Error {
	if err == nil {
		return nil
	}

	if e, ok := err.(*Error); ok {
		return e
	}

	return &Error{Kind: Internal, Message: "Internal server error", Err: err}
}
