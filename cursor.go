package clist

import (
	"github.com/motoki317/clist/internal/chain"
)

// Cursor is a traversal position over a List, owned by the caller.
// Unlike the list's built-in cursor, each Cursor moves independently of the others.
//
// A Cursor is not safe to be shared between goroutines, but any number of Cursors may be used on one list concurrently.
// If the element under a Cursor is removed from the list, the Cursor becomes exhausted and every movement
// returns nil until it is repositioned with Head or Tail.
type Cursor[T any] struct {
	l  *List[T]
	at *chain.Element[*T]
}

// Cursor returns a new Cursor over l, positioned nowhere.
// Call Head or Tail to start the traversal.
func (l *List[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{l: l}
}

// Head moves the cursor to the head of the list and returns the element there, or nil if the list is empty.
func (c *Cursor[T]) Head() *T {
	c.l.mu.Lock()
	defer c.l.mu.Unlock()
	c.at = c.l.elems.Front()
	return payload(c.at)
}

// Tail moves the cursor to the tail of the list and returns the element there, or nil if the list is empty.
func (c *Cursor[T]) Tail() *T {
	c.l.mu.Lock()
	defer c.l.mu.Unlock()
	c.at = c.l.elems.Back()
	return payload(c.at)
}

// Next moves the cursor one element towards the tail and returns the element there, or nil past the tail.
func (c *Cursor[T]) Next() *T {
	c.l.mu.Lock()
	defer c.l.mu.Unlock()
	if c.valid() {
		c.at = c.at.Next()
	}
	return payload(c.at)
}

// Prev moves the cursor one element towards the head and returns the element there, or nil past the head.
func (c *Cursor[T]) Prev() *T {
	c.l.mu.Lock()
	defer c.l.mu.Unlock()
	if c.valid() {
		c.at = c.at.Prev()
	}
	return payload(c.at)
}

// Value returns the element under the cursor without moving it.
func (c *Cursor[T]) Value() *T {
	c.l.mu.Lock()
	defer c.l.mu.Unlock()
	c.valid()
	return payload(c.at)
}

// valid drops the position if its element left the list.
// Callers must hold c.l.mu.
func (c *Cursor[T]) valid() bool {
	if c.at != nil && !c.l.elems.Contains(c.at) {
		c.at = nil
	}
	return c.at != nil
}
