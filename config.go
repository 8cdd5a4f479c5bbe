package clist

// ListOption configures a List.
type ListOption[T any] func(c *listConfig[T])

type listConfig[T any] struct {
	ownsCopies    bool
	copier        Copier[T]
	comparator    Comparator[T]
	index         indexType
	indexCapacity int
}

type indexType int

const (
	indexNone indexType = iota
	indexMap
	indexLRU
)

func defaultConfig[T any]() listConfig[T] {
	return listConfig[T]{
		ownsCopies: false,
		copier:     nil,
		comparator: nil,
		index:      indexNone,
	}
}

// WithCopies makes the list store its own shallow copy of every inserted element.
// Without this option (the default), the list stores the caller's pointer as-is and never manages its lifetime.
func WithCopies[T any]() ListOption[T] {
	return func(c *listConfig[T]) {
		c.ownsCopies = true
		c.copier = shallowCopy[T]
	}
}

// WithCopier is like WithCopies, but copies elements with the given function.
// Use it when T holds references that need a deep copy; see CopyBytes for byte slices.
// If copier returns an error, the insertion fails with ErrAllocation and the list is left unchanged.
func WithCopier[T any](copier Copier[T]) ListOption[T] {
	return func(c *listConfig[T]) {
		c.ownsCopies = true
		c.copier = copier
	}
}

// WithComparator enables sorted insertion for Insert.
// InsertHead and InsertTail ignore the comparator.
//
// The comparator is called while the list's lock is held, and must not call back into the list.
func WithComparator[T any](comparator Comparator[T]) ListOption[T] {
	return func(c *listConfig[T]) {
		c.comparator = comparator
	}
}

// WithMapIndex keeps an unbounded identity index so that Remove does not need to scan the list.
//
// If the same pointer is inserted more than once, Remove may remove any one of its nodes
// instead of the one closest to the head.
func WithMapIndex[T any]() ListOption[T] {
	return func(c *listConfig[T]) {
		c.index = indexMap
		c.indexCapacity = 0
	}
}

// WithLRUIndex keeps a bounded identity index holding the most recently inserted or removed-by-lookup identities.
// Identities evicted from the index are still found by scanning.
// Capacity needs to be greater than 0.
//
// The note on duplicate pointers of WithMapIndex applies.
func WithLRUIndex[T any](capacity int) ListOption[T] {
	return func(c *listConfig[T]) {
		c.index = indexLRU
		c.indexCapacity = capacity
	}
}
