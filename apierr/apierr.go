package apierr

import (
	"net/http"

	"github.com/pkg/errors"
)

// Error is the taxonomy every failure in the service collapses into before it
// reaches a client. Message is stable and safe to return; Err carries the
// internal cause for logging only.
type Error struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Err        error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func InvalidArgument(message string) *Error {
	return &Error{Code: "invalid_argument", Message: message, StatusCode: http.StatusBadRequest}
}

func Unauthenticated(message string) *Error {
	return &Error{Code: "unauthenticated", Message: message, StatusCode: http.StatusUnauthorized}
}

func Forbidden(message string) *Error {
	return &Error{Code: "forbidden", Message: message, StatusCode: http.StatusForbidden}
}

func NotFound(message string) *Error {
	return &Error{Code: "not_found", Message: message, StatusCode: http.StatusNotFound}
}

// Upstream marks a failed call to the document store or the completion
// service. The wrapped cause is logged, never returned to the client.
func Upstream(message string, err error) *Error {
	return &Error{
		Code:       "upstream_failure",
		Message:    message,
		StatusCode: http.StatusBadGateway,
		Err:        errors.Wrap(err, message),
	}
}

func Internal(err error) *Error {
	return &Error{
		Code:       "internal",
		Message:    "something went wrong",
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// From normalizes an arbitrary error into an *Error. Unknown errors become
// Internal so their detail stays out of responses.
func From(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Internal(err)
}
