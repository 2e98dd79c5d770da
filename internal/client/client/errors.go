package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrMalformedResponse = errors.New("malformed response")
)

// RemoteError is a failure reported by the auth backend, either through the
// "error" field of the response body or through a non-2xx status.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string { return e.Message }

// Is matches ErrUnauthorized for 401 and 403 responses.
func (e *RemoteError) Is(target error) bool {
	return target == ErrUnauthorized &&
		(e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden)
}

// TransportError wraps a failure to reach the backend or to read its answer.
// Its message is the message of the underlying error.
type TransportError struct {
	Err error

	unavailable bool
}

func (e *TransportError) Error() string { return e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

// Is matches ErrUnavailable when the request never got a response.
func (e *TransportError) Is(target error) bool {
	return target == ErrUnavailable && e.unavailable
}

func unavailable(err error) error {
	return &TransportError{Err: err, unavailable: true}
}

func malformed(err error) error {
	return &TransportError{Err: fmt.Errorf("%w: %w", ErrMalformedResponse, err)}
}

func statusError(status int) error {
	msg := http.StatusText(status)
	if msg == "" {
		msg = fmt.Sprintf("unexpected status %d", status)
	}
	return &RemoteError{Status: status, Message: msg}
}
