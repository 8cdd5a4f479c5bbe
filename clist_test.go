package clist

import (
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/motoki317/clist/internal/chain"
)

type testCase struct {
	name string
	opts []ListOption[string]
}

var (
	referenceLists = []testCase{
		{name: "reference list", opts: nil},
		{name: "reference list with map index", opts: []ListOption[string]{WithMapIndex[string]()}},
		{name: "reference list with LRU index", opts: []ListOption[string]{WithLRUIndex[string](4)}},
	}
	copyLists = lo.Map[testCase, testCase](referenceLists, func(t testCase, _ int) testCase {
		return testCase{
			name: "copy" + t.name[len("reference"):],
			opts: append(append([]ListOption[string]{}, t.opts...), WithCopies[string]()),
		}
	})
	allLists = append(append([]testCase{}, referenceLists...), copyLists...)
)

func ptrs(ss ...string) []*string {
	return lo.Map(ss, func(s string, _ int) *string { return &s })
}

func deref(ps []*string) []string {
	return lo.Map(ps, func(p *string, _ int) string { return *p })
}

func newList(t testing.TB, opts ...ListOption[string]) *List[string] {
	t.Helper()
	l, err := New[string](opts...)
	require.NoError(t, err)
	return l
}

// requireOrder checks the head to tail contents of l.
func requireOrder(t testing.TB, l *List[string], want ...string) {
	t.Helper()
	got := deref(l.Values())
	if len(want) == 0 {
		want = []string{}
	}
	if diff := pretty.Compare(want, got); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

// requireConsistent walks the chain in both directions and checks the list invariants.
func requireConsistent[T any](t testing.TB, l *List[T]) {
	t.Helper()

	l.mu.Lock()
	defer l.mu.Unlock()

	var (
		forward []*T
		prev    *chain.Element[*T]
	)
	for el := l.elems.Front(); el != nil; el = el.Next() {
		require.True(t, el.Prev() == prev, "prev link is inconsistent")
		forward = append(forward, el.Value)
		prev = el
	}
	require.True(t, l.elems.Back() == prev, "tail is not the last reachable element")

	var backward []*T
	for el := l.elems.Back(); el != nil; el = el.Prev() {
		backward = append(backward, el.Value)
	}

	require.Equal(t, l.elems.Len(), len(forward))
	require.Equal(t, l.elems.Len(), len(backward))
	for i := range forward {
		require.True(t, forward[i] == backward[len(backward)-1-i], "traversals are not mirrored at %d", i)
	}

	if l.elems.Len() == 0 {
		require.Nil(t, l.elems.Front())
		require.Nil(t, l.elems.Back())
	}
	if l.cursor != nil {
		require.True(t, l.elems.Contains(l.cursor), "cursor points outside of the list")
	}
}

// with returns the options of c followed by opts, without modifying c.
func (c testCase) with(opts ...ListOption[string]) []ListOption[string] {
	return append(append([]ListOption[string]{}, c.opts...), opts...)
}
