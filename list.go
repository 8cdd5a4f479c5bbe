package clist

import (
	"sync"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/motoki317/clist/internal/chain"
)

// New creates a new empty list.
// By default, the list stores the caller's pointers without copying and appends on Insert.
func New[T any](options ...ListOption[T]) (*List[T], error) {
	config := defaultConfig[T]()
	for _, option := range options {
		option(&config)
	}

	if config.ownsCopies && config.copier == nil {
		return nil, errors.New("copier cannot be nil")
	}

	var idx index[T]
	switch config.index {
	case indexNone:
	case indexMap:
		idx = newMapIndex[T]()
	case indexLRU:
		if config.indexCapacity <= 0 {
			return nil, errors.New("capacity needs to be greater than 0 for LRU index")
		}
		idx = newLRUIndex[T](config.indexCapacity)
	default:
		return nil, errors.New("unknown index type")
	}

	return &List[T]{
		elems:      chain.New[*T](),
		ownsCopies: config.ownsCopies,
		copier:     config.copier,
		comparator: config.comparator,
		index:      idx,
	}, nil
}

// List is a doubly linked list of *T.
// All methods are safe to be called from multiple goroutines; each call holds the list's lock for its whole duration.
//
// Elements are addressed by identity: Remove finds an element by pointer equality, never by content.
// In copy mode (WithCopies, WithCopier) the identity of an element is the pointer to the list's copy,
// as returned by PeekHead, Advance and friends.
//
// The list has a single built-in cursor shared by PeekHead, PeekTail, Advance and Retreat.
// Goroutines traversing the list concurrently should use their own Cursor instead.
type List[T any] struct {
	mu         sync.Mutex // mu protects all fields below
	elems      *chain.Chain[*T]
	cursor     *chain.Element[*T]
	ownsCopies bool
	copier     Copier[T]
	comparator Comparator[T]
	index      index[T]
	opStats    OpStats
	indexStats IndexStats
	closed     bool
}

type position int

const (
	positionSorted position = iota
	positionHead
	positionTail
)

// Insert adds e to the list.
// If a comparator is configured, e is placed according to it, otherwise it is appended at the tail.
// Inserting into an empty list also moves the built-in cursor to the new element.
func (l *List[T]) Insert(e *T) error {
	return l.insert(e, positionSorted)
}

// InsertHead adds e at the head of the list, regardless of the comparator.
func (l *List[T]) InsertHead(e *T) error {
	return l.insert(e, positionHead)
}

// InsertTail adds e at the tail of the list, regardless of the comparator.
func (l *List[T]) InsertTail(e *T) error {
	return l.insert(e, positionTail)
}

func (l *List[T]) insert(e *T, pos position) error {
	if e == nil {
		panic("clist: nil element")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrClosed
	}

	p := e
	if l.ownsCopies {
		var err error
		if p, err = l.copier(e); err == nil && p == nil {
			err = errors.New("copier returned nil")
		}
		if err != nil {
			glog.V(1).Infof("clist: insert: %v", err)
			return newAllocationError(err)
		}
	}

	wasEmpty := l.elems.Len() == 0

	var el *chain.Element[*T]
	switch {
	case pos == positionHead:
		el = l.elems.PushFront(p)
	case pos == positionSorted && l.comparator != nil:
		for mark := l.elems.Front(); mark != nil; mark = mark.Next() {
			l.opStats.Comparisons++
			if !l.comparator(mark.Value, p) {
				el = l.elems.InsertBefore(p, mark)
				break
			}
		}
		if el == nil {
			el = l.elems.PushBack(p)
		}
	default:
		el = l.elems.PushBack(p)
	}

	if wasEmpty {
		l.cursor = el
	}
	if l.index != nil {
		l.index.Set(p, el)
	}
	l.opStats.Inserts++
	return nil
}

// Count returns the number of elements in the list.
func (l *List[T]) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.elems.Len()
}

// PeekHead moves the built-in cursor to the head and returns the head element, or nil if the list is empty.
func (l *List[T]) PeekHead() *T {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cursor = l.elems.Front()
	return payload(l.cursor)
}

// PeekTail moves the built-in cursor to the tail and returns the tail element, or nil if the list is empty.
func (l *List[T]) PeekTail() *T {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cursor = l.elems.Back()
	return payload(l.cursor)
}

// Advance moves the built-in cursor one element towards the tail and returns the element there.
// It returns nil once the cursor moves past the tail, and keeps returning nil until PeekHead or PeekTail is called.
func (l *List[T]) Advance() *T {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cursor != nil {
		l.cursor = l.cursor.Next()
	}
	return payload(l.cursor)
}

// Retreat is like Advance, but moves towards the head.
func (l *List[T]) Retreat() *T {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cursor != nil {
		l.cursor = l.cursor.Prev()
	}
	return payload(l.cursor)
}

// Remove removes the element whose identity is e, and returns the element that followed it,
// or nil if it was the tail or if e is not in the list.
// If the built-in cursor was on the removed element, it moves to the removed element's predecessor.
//
// In copy mode, the list's copy is released: its contents are reset to the zero value of T.
func (l *List[T]) Remove(e *T) *T {
	l.mu.Lock()
	defer l.mu.Unlock()

	el := l.lookup(e)
	if el == nil {
		return nil
	}

	next := el.Next()
	p := l.unlink(el, el.Prev())
	l.release(p)
	return payload(next)
}

// RemoveHead removes the head element and returns it, or nil if the list is empty.
// If the built-in cursor was on the head, it moves to the new head.
//
// In copy mode, the returned pointer is the list's former copy, which now belongs to the caller.
func (l *List[T]) RemoveHead() *T {
	l.mu.Lock()
	defer l.mu.Unlock()

	el := l.elems.Front()
	if el == nil {
		return nil
	}
	return l.unlink(el, el.Next())
}

// RemoveTail removes the tail element and returns it, or nil if the list is empty.
// If the built-in cursor was on the tail, it moves to the new tail.
//
// In copy mode, the returned pointer is the list's former copy, which now belongs to the caller.
func (l *List[T]) RemoveTail() *T {
	l.mu.Lock()
	defer l.mu.Unlock()

	el := l.elems.Back()
	if el == nil {
		return nil
	}
	return l.unlink(el, el.Prev())
}

// Destroy removes all elements and marks the list as destroyed.
// Further insertions fail with ErrClosed, and reads behave as on an empty list.
// In copy mode, every remaining copy is released.
//
// Destroy is a no-op on a nil or already destroyed list.
func (l *List[T]) Destroy() {
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}

	n := l.elems.Len()
	for el := l.elems.Front(); el != nil; el = el.Next() {
		l.release(el.Value)
	}
	l.elems.Init()
	l.cursor = nil
	if l.index != nil {
		l.index.Purge()
	}
	l.closed = true

	glog.V(2).Infof("clist: destroyed list, released %d elements", n)
}

// Close destroys the list; see Destroy.
// It always returns nil.
func (l *List[T]) Close() error {
	l.Destroy()
	return nil
}

// Values returns the elements from head to tail.
// It does not move the built-in cursor.
func (l *List[T]) Values() []*T {
	l.mu.Lock()
	defer l.mu.Unlock()

	values := make([]*T, 0, l.elems.Len())
	for el := l.elems.Front(); el != nil; el = el.Next() {
		values = append(values, el.Value)
	}
	return values
}

// Range calls f for each element from head to tail. If f returns false, Range stops the iteration.
// The list's lock is held during the iteration, so f must not call back into the list.
func (l *List[T]) Range(f func(e *T) bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for el := l.elems.Front(); el != nil; el = el.Next() {
		if !f(el.Value) {
			return
		}
	}
}

// lookup finds the node holding identity e.
// Callers must hold l.mu.
func (l *List[T]) lookup(e *T) *chain.Element[*T] {
	if l.index != nil {
		if el, ok := l.index.Get(e); ok && l.elems.Contains(el) && el.Value == e {
			l.indexStats.Hits++
			return el
		}
	}

	l.indexStats.Misses++
	for el := l.elems.Front(); el != nil; el = el.Next() {
		if el.Value == e {
			return el
		}
	}
	return nil
}

// unlink removes el from the list, moving the built-in cursor to cursorTo if it was on el.
// Callers must hold l.mu.
func (l *List[T]) unlink(el, cursorTo *chain.Element[*T]) *T {
	if l.cursor == el {
		l.cursor = cursorTo
	}
	p := l.elems.Remove(el)
	if l.index != nil {
		l.index.Delete(p)
	}
	l.opStats.Removals++
	return p
}

// release drops the list's copy p.
// Callers must hold l.mu.
func (l *List[T]) release(p *T) {
	if !l.ownsCopies {
		return
	}
	var zero T
	*p = zero
}

func payload[T any](el *chain.Element[*T]) *T {
	if el == nil {
		return nil
	}
	return el.Value
}
