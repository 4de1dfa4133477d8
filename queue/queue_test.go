package queue

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func popValue[T any](t *testing.T, h *Heap[T]) T {
	t.Helper()
	v, ok := h.Pop()
	require.True(t, ok)
	return v
}

func TestPushPop(t *testing.T) {
	h := New[int]()
	assert.Equal(t, 0, h.Len())
	assert.True(t, h.IsEmpty())

	h.Push(2)
	h.Push(4)
	h.Push(3)
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 2, popValue(t, h))
	assert.Equal(t, 3, popValue(t, h))
	assert.Equal(t, 1, h.Len())

	h.Push(1)
	h.Push(5)
	assert.Equal(t, 1, popValue(t, h))
	assert.Equal(t, 4, popValue(t, h))
	assert.Equal(t, 5, popValue(t, h))
	assert.True(t, h.IsEmpty())

	_, ok := h.Pop()
	assert.False(t, ok)
	_, ok = h.Peek()
	assert.False(t, ok)
}

func TestWithComparator(t *testing.T) {
	// reverse order
	h := NewWithComparator(func(a, b int) int { return b - a })
	h.Push(2)
	h.Push(4)
	h.Push(3)

	top, ok := h.Peek()
	require.True(t, ok)
	assert.Equal(t, 4, top)
	assert.Equal(t, 3, h.Len())

	assert.Equal(t, 4, popValue(t, h))
	assert.Equal(t, 3, popValue(t, h))
	h.Push(1)
	h.Push(5)
	assert.Equal(t, 5, popValue(t, h))
	assert.Equal(t, 2, popValue(t, h))
	assert.Equal(t, 1, popValue(t, h))
	assert.Equal(t, 0, h.Len())
}

func TestDrain(t *testing.T) {
	h := New[int]()
	vals := rand.Perm(100)
	h.Grow(len(vals))
	for _, v := range vals {
		h.Push(v)
	}

	first := h.Drain(10)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, first)
	assert.Equal(t, 90, h.Len())

	rest := h.Drain(1000)
	require.Len(t, rest, 90)
	assert.True(t, sort.IntsAreSorted(rest))
	assert.Empty(t, h.Drain(5))
}

func TestStructComparator(t *testing.T) {
	type item struct {
		key  string
		size int
	}
	h := NewWithComparator(func(a, b item) int {
		if a.size != b.size {
			return b.size - a.size
		}
		if a.key < b.key {
			return -1
		}
		if a.key > b.key {
			return 1
		}
		return 0
	})
	h.Push(item{"b", 2})
	h.Push(item{"a", 2})
	h.Push(item{"c", 5})
	h.Push(item{"d", 1})

	got := h.Drain(h.Len())
	assert.Equal(t, []item{{"c", 5}, {"a", 2}, {"b", 2}, {"d", 1}}, got)
}
