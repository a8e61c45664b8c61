package domain

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrConfiguration marks fatal configuration problems, surfaced before any
// crawl work begins. Per-page failures never wrap it.
var ErrConfiguration = errors.New("invalid configuration")

// NavigationError describes why a page failed to load. Renderers return it so
// the crawler can record the failure on the PageVisit and keep going.
type NavigationError struct {
	Reason     LoadFailure
	StatusCode int
	Err        error
}

func (e *NavigationError) Error() string {
	if e.Reason == LoadFailureHTTP {
		return fmt.Sprintf("navigation failed: http status %d", e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("navigation failed (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("navigation failed (%s)", e.Reason)
}

func (e *NavigationError) Unwrap() error { return e.Err }

// ClassifyNavigationError wraps an arbitrary renderer error into a
// NavigationError, sorting timeouts and DNS failures into their own buckets.
func ClassifyNavigationError(err error) *NavigationError {
	var nav *NavigationError
	if errors.As(err, &nav) {
		return nav
	}
	var dnsErr *net.DNSError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &NavigationError{Reason: LoadFailureTimeout, Err: err}
	case errors.As(err, &dnsErr):
		return &NavigationError{Reason: LoadFailureDNS, Err: err}
	default:
		return &NavigationError{Reason: LoadFailureUnknown, Err: err}
	}
}
