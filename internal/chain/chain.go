package chain

// Element is an element in a chain.
type Element[T any] struct {
	prev, next *Element[T]
	chain      *Chain[T]

	Value T
}

// Next returns the next element, or nil if e is the last element.
func (e *Element[T]) Next() *Element[T] {
	return e.next
}

// Prev returns the previous element, or nil if e is the first element.
func (e *Element[T]) Prev() *Element[T] {
	return e.prev
}

// Chain implements a generic nil-terminated doubly linked list.
// Chain is not goroutine-safe; callers serialize access.
//
// The zero value is an empty chain ready to use.
type Chain[T any] struct {
	head, tail *Element[T]
	len        int
}

// New creates a new empty chain.
func New[T any]() *Chain[T] {
	return &Chain[T]{}
}

// Init removes all elements from the chain.
// Removed elements are detached so that Contains reports false for them.
func (c *Chain[T]) Init() {
	for e := c.head; e != nil; {
		next := e.next
		e.detach()
		e = next
	}
	c.head = nil
	c.tail = nil
	c.len = 0
}

// Len is the number of elements in the chain.
func (c *Chain[T]) Len() int {
	return c.len
}

// Front returns the first element of the chain, or nil if empty.
func (c *Chain[T]) Front() *Element[T] {
	return c.head
}

// Back returns the last element of the chain, or nil if empty.
func (c *Chain[T]) Back() *Element[T] {
	return c.tail
}

// Contains reports whether e is currently linked into c.
func (c *Chain[T]) Contains(e *Element[T]) bool {
	return e != nil && e.chain == c
}

// PushFront adds a new value to the front of the chain.
func (c *Chain[T]) PushFront(value T) *Element[T] {
	e := &Element[T]{Value: value, chain: c}
	if c.head == nil {
		c.tail = e
	} else {
		e.next = c.head
		c.head.prev = e
	}
	c.head = e
	c.len++
	return e
}

// PushBack adds a new value to the back of the chain.
func (c *Chain[T]) PushBack(value T) *Element[T] {
	e := &Element[T]{Value: value, chain: c}
	if c.tail == nil {
		c.head = e
	} else {
		e.prev = c.tail
		c.tail.next = e
	}
	c.tail = e
	c.len++
	return e
}

// InsertBefore adds a new value immediately before mark.
// mark must be an element of c.
func (c *Chain[T]) InsertBefore(value T, mark *Element[T]) *Element[T] {
	if !c.Contains(mark) {
		panic("chain: mark is not an element of the chain")
	}
	e := &Element[T]{Value: value, chain: c}
	e.prev = mark.prev
	e.next = mark
	if mark.prev == nil {
		c.head = e
	} else {
		mark.prev.next = e
	}
	mark.prev = e
	c.len++
	return e
}

// Remove removes the given element from the chain and returns its value.
// The element's links are cleared.
func (c *Chain[T]) Remove(e *Element[T]) T {
	if !c.Contains(e) {
		panic("chain: element is not an element of the chain")
	}
	if e.prev == nil {
		c.head = e.next
	} else {
		e.prev.next = e.next
	}
	if e.next == nil {
		c.tail = e.prev
	} else {
		e.next.prev = e.prev
	}
	c.len--
	v := e.Value
	e.detach()
	return v
}

func (e *Element[T]) detach() {
	e.prev = nil
	e.next = nil
	e.chain = nil
}
