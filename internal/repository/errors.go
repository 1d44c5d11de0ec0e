package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport reports that no response could be obtained from upstream.
	ErrTransport = errors.New("release lookup transport failure")
	// ErrUnexpectedStatus reports a non-2xx status other than 404.
	ErrUnexpectedStatus = errors.New("unexpected release lookup status")
	// ErrMalformedResponse reports a body that is not a release object.
	ErrMalformedResponse = errors.New("malformed release response")
)

// StatusError carries the status of a rejected release lookup.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d from %s", ErrUnexpectedStatus, e.StatusCode, e.URL)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

// Temporary reports whether the status is worth retrying.
func (e *StatusError) Temporary() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}
