// internal/providers/errors.go
package providers

import (
	"errors"
	"fmt"
)

// CallError wraps a failed provider call with its failure class. Transient
// failures (timeouts, rate limits, unparsable responses) are absorbed per
// chunk or per term by the pipeline; permanent failures (bad credentials,
// missing model) abort the whole run since no later call will succeed.
type CallError struct {
	Role      string // "extract" or "define"
	Permanent bool
	Err       error
}

func (e *CallError) Error() string {
	class := "transient"
	if e.Permanent {
		class = "permanent"
	}
	return fmt.Sprintf("%s call failed (%s): %v", e.Role, class, e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }

// Transient wraps err as an absorbable per-item failure.
func Transient(role string, err error) error {
	return &CallError{Role: role, Err: err}
}

// Permanent wraps err as a run-aborting failure.
func Permanent(role string, err error) error {
	return &CallError{Role: role, Permanent: true, Err: err}
}

// IsPermanent reports whether err carries a permanent provider failure
// anywhere in its chain.
func IsPermanent(err error) bool {
	var callErr *CallError
	return errors.As(err, &callErr) && callErr.Permanent
}
