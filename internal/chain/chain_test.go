package chain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/motoki317/clist/internal/chain"
)

func values[T any](c *chain.Chain[T]) []T {
	var vs []T
	for e := c.Front(); e != nil; e = e.Next() {
		vs = append(vs, e.Value)
	}
	return vs
}

func reversed[T any](c *chain.Chain[T]) []T {
	var vs []T
	for e := c.Back(); e != nil; e = e.Prev() {
		vs = append(vs, e.Value)
	}
	return vs
}

func TestElement_Next(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		c := chain.New[int]()

		e := c.PushFront(1)

		require.Nil(t, e.Next())
	})
	t.Run("next", func(t *testing.T) {
		c := chain.New[int]()

		e1 := c.PushFront(1)
		e2 := c.PushFront(2)

		require.Equal(t, e1, e2.Next())
	})
}

func TestElement_Prev(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		c := chain.New[int]()

		e := c.PushFront(1)

		require.Nil(t, e.Prev())
	})
	t.Run("prev", func(t *testing.T) {
		c := chain.New[int]()

		e1 := c.PushFront(1)
		e2 := c.PushFront(2)

		require.Equal(t, e2, e1.Prev())
	})
}

func TestChain_PushRemove(t *testing.T) {
	c := chain.New[int]()
	length := 10

	for i := 1; i <= length; i++ {
		c.PushFront(i)
		require.Equal(t, i, c.Len())
	}

	for i := length; i >= 1; i-- {
		v := c.Remove(c.Back())
		require.Equal(t, length-i+1, v)
		require.Equal(t, i-1, c.Len())
	}

	require.Nil(t, c.Front())
	require.Nil(t, c.Back())
}

func TestChain_PushBack(t *testing.T) {
	c := chain.New[string]()

	c.PushBack("x")
	c.PushFront("y")
	c.PushBack("z")

	require.Equal(t, []string{"y", "x", "z"}, values(c))
	require.Equal(t, []string{"z", "x", "y"}, reversed(c))
}

func TestChain_InsertBefore(t *testing.T) {
	t.Run("before front", func(t *testing.T) {
		c := chain.New[int]()
		front := c.PushBack(2)
		c.PushBack(3)

		e := c.InsertBefore(1, front)

		require.Equal(t, e, c.Front())
		require.Equal(t, []int{1, 2, 3}, values(c))
		require.Equal(t, []int{3, 2, 1}, reversed(c))
	})
	t.Run("before middle", func(t *testing.T) {
		c := chain.New[int]()
		c.PushBack(1)
		mark := c.PushBack(3)

		c.InsertBefore(2, mark)

		require.Equal(t, 3, c.Len())
		require.Equal(t, []int{1, 2, 3}, values(c))
		require.Equal(t, []int{3, 2, 1}, reversed(c))
	})
	t.Run("foreign mark", func(t *testing.T) {
		c := chain.New[int]()
		other := chain.New[int]()
		mark := other.PushBack(1)

		require.Panics(t, func() { c.InsertBefore(0, mark) })
	})
}

func TestChain_Remove(t *testing.T) {
	t.Run("middle", func(t *testing.T) {
		c := chain.New[int]()
		c.PushBack(1)
		e := c.PushBack(2)
		c.PushBack(3)

		require.Equal(t, 2, c.Remove(e))
		require.False(t, c.Contains(e))
		require.Nil(t, e.Next())
		require.Nil(t, e.Prev())
		require.Equal(t, []int{1, 3}, values(c))
		require.Equal(t, []int{3, 1}, reversed(c))
	})
	t.Run("single", func(t *testing.T) {
		c := chain.New[int]()
		e := c.PushBack(1)

		c.Remove(e)

		require.Equal(t, 0, c.Len())
		require.Nil(t, c.Front())
		require.Nil(t, c.Back())
	})
	t.Run("twice", func(t *testing.T) {
		c := chain.New[int]()
		e := c.PushBack(1)
		c.Remove(e)

		require.Panics(t, func() { c.Remove(e) })
	})
}

func TestChain_Back(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		c := chain.New[int]()
		require.Nil(t, c.Back())
	})
	t.Run("not empty", func(t *testing.T) {
		c := chain.New[int]()
		e := c.PushFront(1)
		c.PushFront(2)
		require.Equal(t, e, c.Back())
	})
}

func TestInit(t *testing.T) {
	c := chain.New[int]()

	e := c.PushFront(1)
	require.Equal(t, 1, c.Len())

	c.Init()
	require.Equal(t, 0, c.Len())
	require.False(t, c.Contains(e))
	require.Nil(t, c.Front())
}

func TestZeroValue(t *testing.T) {
	var c chain.Chain[int]

	c.PushBack(1)
	c.PushBack(2)

	require.Equal(t, []int{1, 2}, values(&c))
}
