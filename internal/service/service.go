package service

import (
	"github.com/climateassistant/backend/internal/domain"
)

// LookupRepository is re-exported from domain for convenience
type LookupRepository = domain.LookupRepository

// Error is a user-facing weather service failure. Its message is safe to
// return to API clients verbatim.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(msg string, err error) *Error {
	return &Error{Message: msg, Err: err}
}
