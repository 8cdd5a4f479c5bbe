package clist

import (
	"github.com/motoki317/lru"

	"github.com/motoki317/clist/internal/chain"
)

// index maps element identities to their nodes.
// Index implementations does NOT need to be goroutine-safe.
type index[T any] interface {
	// Get the node for key.
	Get(key *T) (e *chain.Element[*T], ok bool)
	// Set the node for key.
	Set(key *T, e *chain.Element[*T])
	// Delete the node for key.
	Delete(key *T)
	// Purge all nodes.
	Purge()
}

type mapIndex[T any] map[*T]*chain.Element[*T]

func newMapIndex[T any]() index[T] {
	return mapIndex[T](make(map[*T]*chain.Element[*T]))
}

func (m mapIndex[T]) Get(key *T) (e *chain.Element[*T], ok bool) {
	e, ok = m[key]
	return
}

func (m mapIndex[T]) Set(key *T, e *chain.Element[*T]) {
	m[key] = e
}

func (m mapIndex[T]) Delete(key *T) {
	delete(m, key)
}

func (m mapIndex[T]) Purge() {
	for key := range m {
		delete(m, key)
	}
}

type lruIndex[T any] struct {
	*lru.Cache[*T, *chain.Element[*T]]
}

func newLRUIndex[T any](cap int) index[T] {
	return lruIndex[T]{lru.New[*T, *chain.Element[*T]](lru.WithCapacity(cap))}
}

func (l lruIndex[T]) Delete(key *T) {
	l.Cache.Delete(key) // Function signature differs a bit
}

func (l lruIndex[T]) Purge() {
	l.Cache.Flush()
}
