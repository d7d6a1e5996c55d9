package chatsweep

import (
	"errors"
	"fmt"
)

var (
	ErrEntityNotFound = errors.New("entity not found")
	ErrRunNotActive   = errors.New("run is not active")
	ErrNoChannels     = errors.New("no channel to sweep")
	ErrEmptyTarget    = errors.New("target user is required")
)

// APIError is returned by a ChannelClient when the chat API answers with an
// unexpected status.
type APIError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *APIError) Error() string {
	// errors returned by the HTTP layer already carry the status
	if e.Err != nil {
		return e.Err.Error()
	}

	if e.Body != "" {
		return fmt.Sprintf("HTTP/%d: %s", e.StatusCode, e.Body)
	}

	return fmt.Sprintf("HTTP/%d", e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.Err
}
