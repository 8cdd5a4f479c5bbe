// Package clist provides a generic goroutine-safe doubly linked list.
//
// A List holds pointers to elements, either the caller's own (the default) or copies made by the list on insertion.
// Elements can be inserted at either end or in an order given by a Comparator, traversed in both directions,
// and removed by identity or from either end. Every operation is serialized by a single lock per list.
package clist
