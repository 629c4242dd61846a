package catalog

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two remote failure modes callers branch on.
var (
	// ErrNotFound means the key does not exist in the remote catalog.
	ErrNotFound = errors.New("catalog: entry not found")

	// ErrTimeout means a remote call exceeded its fixed deadline.
	ErrTimeout = errors.New("catalog: remote call timed out")
)

// RemoteError reports a non-success response from the catalog service that
// is neither a 404 nor a timeout.
type RemoteError struct {
	StatusCode int
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("catalog: remote service returned status %d", e.StatusCode)
}
