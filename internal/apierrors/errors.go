// Package apierrors defines the request-terminal error taxonomy: bad request,
// unauthenticated, not found. Anything else surfaces as a generic 500 at the
// handler edge.
package apierrors

import (
	"errors"
	"net/http"
)

type apiError struct {
	status int
	msg    string
}

func (e *apiError) Error() string { return e.msg }
func (e *apiError) Status() int   { return e.status }

func BadRequest(msg string) error {
	return &apiError{status: http.StatusBadRequest, msg: msg}
}

func Unauthenticated(msg string) error {
	return &apiError{status: http.StatusUnauthorized, msg: msg}
}

func NotFound(msg string) error {
	return &apiError{status: http.StatusNotFound, msg: msg}
}

// Status maps an error to its HTTP status. Unrecognized errors are internal.
func Status(err error) int {
	var ae *apiError
	if errors.As(err, &ae) {
		return ae.status
	}
	return http.StatusInternalServerError
}

// Message returns the client-facing message for err, hiding internals behind
// a generic line for anything outside the taxonomy.
func Message(err error) string {
	var ae *apiError
	if errors.As(err, &ae) {
		return ae.msg
	}
	return "Something went wrong, please try again later"
}
