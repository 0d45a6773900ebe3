package api

import (
	"fmt"
	"net/http"
)

// Kind classifies a fetch failure.
type Kind int

const (
	// KindTransport covers network failures, non-2xx statuses and bodies
	// that could not be decoded.
	KindTransport Kind = iota
	// KindApplication covers 2xx bodies reporting success=false.
	KindApplication
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindApplication:
		return "application"
	default:
		return "unknown"
	}
}

// FetchError is returned by every Client method on failure.
type FetchError struct {
	Op     string // "list recipes" or "get recipe"
	Kind   Kind
	Status int // HTTP status, 0 when no response was received
	Reason string
	Err    error
}

func (e *FetchError) Error() string {
	switch {
	case e.Status != 0 && e.Reason != "":
		return fmt.Sprintf("%s: %d %s: %s", e.Op, e.Status, http.StatusText(e.Status), e.Reason)
	case e.Status != 0:
		return fmt.Sprintf("%s: %d %s", e.Op, e.Status, http.StatusText(e.Status))
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Reason, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Reason)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Transport reports whether the request failed before a usable body arrived.
func (e *FetchError) Transport() bool {
	return e.Kind == KindTransport
}
