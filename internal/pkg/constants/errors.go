package constants

import "net/http"

// CodedError is an error that carries the http status the api layer should
// answer with. The error handler unwraps until it finds one.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound        = NewCodedError(http.StatusNotFound, "not found")
	ErrUnauthorized      = NewCodedError(http.StatusUnauthorized, "unauthorized")
	ErrMissingAuthCookie = NewCodedError(http.StatusUnauthorized, "missing auth cookie")
	ErrInvalidPassword   = NewCodedError(http.StatusUnauthorized, "invalid password")
	ErrTooManyAttempts   = NewCodedError(http.StatusTooManyRequests, "too many failed attempts, try again later")
	ErrBadRequest        = NewCodedError(http.StatusBadRequest, "bad request")
)
