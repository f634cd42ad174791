package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidVote    = errors.New("invalid vote")
	ErrInvalidDevice  = errors.New("invalid device")
	ErrDeviceNotFound = errors.New("device not found")
)

// TransportError reports a request that never produced an HTTP response.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RejectionError is returned when the API answers with an unexpected status.
type RejectionError struct {
	StatusCode int
	Body       string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}
