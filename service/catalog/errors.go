package catalog

import (
	"errors"
	"fmt"
)

// Reasons a catalog document could not be loaded. Match with errors.Is.
var (
	ErrUnreachable = errors.New("catalog document unreachable")
	ErrBadStatus   = errors.New("catalog document bad status")
	ErrEmpty       = errors.New("catalog document empty")
	ErrMalformed   = errors.New("catalog document malformed")
)

// LoadError describes a failed load of one catalog document.
type LoadError struct {
	Resource string
	Reason   error
	Status   int
	Err      error
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("load %s: %v", e.Resource, e.Reason)
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Reason}
	}
	return []error{e.Reason, e.Err}
}

func loadError(resource string, reason error, err error) *LoadError {
	return &LoadError{Resource: resource, Reason: reason, Err: err}
}
