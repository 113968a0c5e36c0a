package api

import "fmt"

// Error is a server-rejected request: the HTTP status plus the envelope
// message, wrapping a sentinel so callers can branch with errors.Is.
type Error struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}
