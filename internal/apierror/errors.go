// Package apierror defines the error taxonomy shared by the session store,
// the API client and the resource repositories. Callers classify failures
// with errors.Is / errors.As; no layer swallows or rewraps these into
// anything less specific.
package apierror

import (
	"errors"
	"fmt"
)

// ErrAuthRequired is returned when an authenticated operation is attempted
// without a stored session. No network call is made in that case.
var ErrAuthRequired = errors.New("authentication required")

// ErrNotFound is returned when a direct lookup resolves to a 404.
var ErrNotFound = errors.New("not found")

// ValidationError reports a client-side precondition failure. The request
// is rejected before any network traffic.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Message)
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
}

// RemoteError reports a request the server rejected. Message carries the
// server's structured detail field when present.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("server rejected request (status %d): %s", e.Status, e.Message)
}

// NetworkError reports a transport-level failure: timeout, DNS, refused
// connection, cancelled context.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// StorageError reports a local persistence failure in the session store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("session storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// SchemaError reports a response payload that did not match the expected
// wire schema. Malformed data never propagates past the client boundary.
type SchemaError struct {
	Path string
	Err  error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("malformed response from %s: %v", e.Path, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }
