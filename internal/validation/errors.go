// Package validation checks the shape of inbound quiz and grade requests
// before they reach the quiz builder or the grading engine.
package validation

import "errors"

var (
	ErrInvalidJSON    = errors.New("invalid json")
	ErrInvalidRequest = errors.New("invalid request")
)

// RequestError carries a client-facing message. Err is ErrInvalidJSON or
// ErrInvalidRequest.
type RequestError struct {
	Err     error
	Message string
}

func (e *RequestError) Error() string { return e.Err.Error() + ": " + e.Message }
func (e *RequestError) Unwrap() error { return e.Err }

func invalid(msg string) error {
	return &RequestError{Err: ErrInvalidRequest, Message: msg}
}
