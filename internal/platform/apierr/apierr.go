package apierr

import (
	"fmt"
	"net/http"
)

// Error is the request-scoped error carried from services up to the HTTP layer.
// Fields is non-nil only for validation failures and maps a payload field to
// the messages describing what is wrong with it.
type Error struct {
	Status int
	Code   string
	Fields map[string][]string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Code: "not_found", Err: fmt.Errorf("%s", msg)}
}

func Forbidden(msg string) *Error {
	return &Error{Status: http.StatusForbidden, Code: "permission_denied", Err: fmt.Errorf("%s", msg)}
}

func Validation(fields map[string][]string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: "validation_failed", Fields: fields}
}
