package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthentication marks a remote 401; the local token has
	// already been invalidated by the time callers see it.
	ErrAuthentication = errors.New("authentication rejected")

	// ErrNotAuthenticated guards operations that need a live session.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// DeserializationError reports malformed persisted data under a
// storage key. Callers treat the value as absent.
type DeserializationError struct {
	Key string
	Err error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("deserialize stored %q: %v", e.Key, e.Err)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}

// RemoteRequestError reports a non-2xx remote response other than 401.
type RemoteRequestError struct {
	Status     int
	StatusText string
}

func (e *RemoteRequestError) Error() string {
	return fmt.Sprintf("remote request failed: %d %s", e.Status, e.StatusText)
}

// TransportError reports a network or decode failure on a single
// attempt; there is no retry behind it.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
