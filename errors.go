package clist

import (
	"github.com/pkg/errors"
)

var (
	// ErrAllocation is returned when an element could not be copied into the list.
	ErrAllocation = errors.New("clist: unable to allocate element")
	// ErrClosed is returned when inserting into a destroyed list.
	ErrClosed = errors.New("clist: list is destroyed")
)

// AllocationError describes a failed element copy.
// errors.Is(err, ErrAllocation) reports true for it, and errors.Cause returns the copier's error.
type AllocationError struct {
	Err error
}

func newAllocationError(err error) error {
	return errors.WithStack(&AllocationError{Err: err})
}

func (e *AllocationError) Error() string {
	return ErrAllocation.Error() + ": " + e.Err.Error()
}

func (e *AllocationError) Is(target error) bool {
	return target == ErrAllocation
}

func (e *AllocationError) Unwrap() error {
	return e.Err
}

func (e *AllocationError) Cause() error {
	return e.Err
}
