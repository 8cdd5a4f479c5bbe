package clist

import (
	"fmt"
)

type OpStats struct {
	// Inserts is the number of successful insertions.
	Inserts uint64
	// Removals is the number of removed elements, excluding the ones released by Destroy.
	Removals uint64
	// Comparisons is the number of times the comparator was called.
	Comparisons uint64
}

type IndexStats struct {
	// Hits is the number of Remove calls resolved by the identity index.
	Hits uint64
	// Misses is the number of Remove calls that had to scan the list.
	// Without an identity index, every Remove call counts as a miss.
	Misses uint64
}

// Stats represents list metrics.
type Stats struct {
	OpStats
	IndexStats
	// Size is the current number of elements in the list.
	Size int
}

// String returns formatted string.
func (s Stats) String() string {
	return fmt.Sprintf(
		"Inserts: %d, Removals: %d, Comparisons: %d, Index Hits: %d, Index Misses: %d, Index Hit Ratio: %f, Size: %d",
		s.Inserts, s.Removals, s.Comparisons,
		s.Hits, s.Misses, s.HitRatio(),
		s.Size,
	)
}

// HitRatio returns the identity index hit ratio.
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Stats returns list metrics.
func (l *List[T]) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Stats{
		OpStats:    l.opStats,
		IndexStats: l.indexStats,
		Size:       l.elems.Len(),
	}
}
