package clist

import (
	"cmp"
)

// Comparator decides the position of a new element during sorted insertion.
// It reports whether candidate belongs after current.
//
// Insert scans from the head and places candidate immediately before the first element for which the comparator
// returns false, or at the tail if there is none. A comparator that returns true for equal elements
// (such as Ascending) therefore keeps equal elements in insertion order, while a strict one places a new element
// before the elements it compares equal to.
//
// The comparator must be deterministic, must not modify its arguments, and must not call back into the list.
type Comparator[T any] func(current, candidate *T) bool

// Copier returns a copy of src owned by the list.
type Copier[T any] func(src *T) (*T, error)

// Ascending returns a comparator that keeps the list in ascending order.
// Equal elements keep their insertion order.
func Ascending[T cmp.Ordered]() Comparator[T] {
	return func(current, candidate *T) bool {
		return cmp.Compare(*current, *candidate) <= 0
	}
}

// Descending returns a comparator that keeps the list in descending order.
// Equal elements keep their insertion order.
func Descending[T cmp.Ordered]() Comparator[T] {
	return func(current, candidate *T) bool {
		return cmp.Compare(*current, *candidate) >= 0
	}
}

// CopyBytes is a Copier that copies the contents of a byte slice, not only its header.
func CopyBytes(src *[]byte) (*[]byte, error) {
	dst := make([]byte, len(*src))
	copy(dst, *src)
	return &dst, nil
}

func shallowCopy[T any](src *T) (*T, error) {
	dst := new(T)
	*dst = *src
	return dst, nil
}
