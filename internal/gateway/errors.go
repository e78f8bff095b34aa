package gateway

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated is returned by every gateway call when no session is
// active. Surfaced to the caller, never retried.
var ErrUnauthenticated = errors.New("user not authenticated")

// RemoteReadError wraps a transport or query failure against the store.
// The triggering operation aborts as a whole; retrying is the caller's call.
type RemoteReadError struct {
	Op         string
	Collection string
	Err        error
}

func (e *RemoteReadError) Error() string {
	return fmt.Sprintf("remote read failed: %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *RemoteReadError) Unwrap() error { return e.Err }

// IsRemoteRead reports whether err is (or wraps) a RemoteReadError.
func IsRemoteRead(err error) bool {
	var rre *RemoteReadError
	return errors.As(err, &rre)
}
