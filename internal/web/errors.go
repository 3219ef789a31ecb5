package web

import (
	"errors"
	"fmt"
)

// Status line messages
const (
	MsgEmptyCity    = "Please enter a city name."
	MsgLoading      = "Loading…"
	MsgNetworkError = "Network error. Please try again."
)

// ErrSuperseded is returned by a submission whose response arrived after a
// newer submission started. Such responses never reach the view.
var ErrSuperseded = errors.New("web: submission superseded by a newer one")

// ValidationError rejects a submission before any request is made
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// APIError is a non-2xx answer from the weather endpoint
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("weather api: %d: %s", e.StatusCode, e.Message)
}

// TransportError means the request never produced a usable response
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "weather api: transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
