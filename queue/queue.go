// Package queue provides a generic binary heap ordered by a caller
// supplied comparison function.
package queue

import "cmp"

// Heap is an array-backed binary heap. The element that compares lowest
// under the comparison function is on top.
type Heap[T any] struct {
	items   []T
	compare func(a, b T) int
}

// New returns a min-heap over the natural order of T.
func New[T cmp.Ordered]() *Heap[T] {
	return NewWithComparator(cmp.Compare[T])
}

// NewWithComparator returns a heap ordered by compare.
// compare(a, b) < 0 means a is popped before b.
func NewWithComparator[T any](compare func(a, b T) int) *Heap[T] {
	return &Heap[T]{compare: compare}
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int { return len(h.items) }

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[T]) IsEmpty() bool { return len(h.items) == 0 }

// Grow reserves room for n more elements.
func (h *Heap[T]) Grow(n int) {
	if cap(h.items)-len(h.items) < n {
		items := make([]T, len(h.items), len(h.items)+n)
		copy(items, h.items)
		h.items = items
	}
}

// Push inserts v in O(log n).
func (h *Heap[T]) Push(v T) {
	h.items = append(h.items, v)
	h.siftUp(len(h.items) - 1)
}

// Pop removes and returns the top element.
// The boolean is false when the heap is empty.
func (h *Heap[T]) Pop() (T, bool) {
	var zero T
	n := len(h.items)
	if n == 0 {
		return zero, false
	}
	top := h.items[0]
	h.items[0] = h.items[n-1]
	h.items[n-1] = zero
	h.items = h.items[:n-1]
	if n-1 > 0 {
		h.siftDown(0)
	}
	return top, true
}

// Peek returns the top element without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return h.items[0], true
}

// Drain pops up to n elements and returns them in pop order.
func (h *Heap[T]) Drain(n int) []T {
	out := make([]T, 0, max(0, min(n, len(h.items))))
	for i := 0; i < n; i++ {
		v, ok := h.Pop()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

func (h *Heap[T]) less(i, j int) bool {
	return h.compare(h.items[i], h.items[j]) < 0
}

func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !h.less(i, p) {
			return
		}
		h.items[i], h.items[p] = h.items[p], h.items[i]
		i = p
	}
}

func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && h.less(r, l) {
			best = r
		}
		if !h.less(best, i) {
			return
		}
		h.items[i], h.items[best] = h.items[best], h.items[i]
		i = best
	}
}
