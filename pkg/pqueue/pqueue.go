// Package pqueue provides a generic binary heap priority queue whose
// ordering is supplied by the caller.
package pqueue

import (
	"cmp"
	"errors"
)

// ErrEmptyContainer is returned by Peek and Extract on an empty queue.
var ErrEmptyContainer = errors.New("priority queue is empty")

const initialCapacity = 3

// Compare reports the relative priority of a and b: > 0 when a outranks b,
// 0 when they are equal and < 0 when b outranks a.
type Compare[T any] func(a, b T) int

// Max ranks greater values first.
func Max[T cmp.Ordered](a, b T) int { return cmp.Compare(a, b) }

// Min ranks smaller values first.
func Min[T cmp.Ordered](a, b T) int { return cmp.Compare(b, a) }

// PriorityQueue is a binary heap stored in a growable slice. Index 0 is
// unused so that the parent of i is i/2 and its children are 2i and 2i+1.
//
// A PriorityQueue is not safe for concurrent use.
type PriorityQueue[T any] struct {
	items    []T
	count    int
	capacity int
	cmp      Compare[T]
}

// New returns an empty queue ordered by c.
func New[T any](c Compare[T]) *PriorityQueue[T] {
	if c == nil {
		panic("pqueue: nil comparator")
	}
	return &PriorityQueue[T]{
		items:    make([]T, initialCapacity+1),
		capacity: initialCapacity,
		cmp:      c,
	}
}

// NewFrom builds a queue holding a copy of items in O(n).
func NewFrom[T any](items []T, c Compare[T]) *PriorityQueue[T] {
	if c == nil {
		panic("pqueue: nil comparator")
	}
	pq := &PriorityQueue[T]{
		items:    make([]T, len(items)+1),
		count:    len(items),
		capacity: len(items),
		cmp:      c,
	}
	copy(pq.items[1:], items)
	pq.heapify()
	return pq
}

// MakeEmpty drops all items in O(1). Capacity is kept and the old slots
// are overwritten by later inserts.
func (pq *PriorityQueue[T]) MakeEmpty() {
	pq.count = 0
}

func (pq *PriorityQueue[T]) IsEmpty() bool { return pq.count == 0 }

func (pq *PriorityQueue[T]) Size() int { return pq.count }

func (pq *PriorityQueue[T]) Cap() int { return pq.capacity }

// Insert adds item, doubling the capacity first if the queue is full.
func (pq *PriorityQueue[T]) Insert(item T) {
	if pq.count == pq.capacity {
		pq.grow()
	}
	pq.count++
	pq.items[pq.count] = item
	pq.up(pq.count)
}

// Peek returns the highest priority item without removing it.
func (pq *PriorityQueue[T]) Peek() (T, error) {
	if pq.count == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	return pq.items[1], nil
}

// Extract removes and returns the highest priority item.
func (pq *PriorityQueue[T]) Extract() (T, error) {
	if pq.count == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	top := pq.items[1]
	pq.items[1] = pq.items[pq.count]
	var zero T
	pq.items[pq.count] = zero
	pq.count--
	pq.down(1)
	return top, nil
}

// Items returns a copy of the live heap array in heap order.
func (pq *PriorityQueue[T]) Items() []T {
	out := make([]T, pq.count)
	copy(out, pq.items[1:pq.count+1])
	return out
}

func (pq *PriorityQueue[T]) grow() {
	capacity := 2 * pq.capacity
	if capacity == 0 {
		capacity = 1
	}
	items := make([]T, capacity+1)
	copy(items, pq.items[:pq.count+1])
	pq.items = items
	pq.capacity = capacity
}

func (pq *PriorityQueue[T]) heapify() {
	for i := pq.count / 2; i >= 1; i-- {
		pq.down(i)
	}
}

func (pq *PriorityQueue[T]) up(child int) {
	for child > 1 {
		parent := child / 2
		if pq.cmp(pq.items[child], pq.items[parent]) <= 0 {
			return
		}
		pq.items[child], pq.items[parent] = pq.items[parent], pq.items[child]
		child = parent
	}
}

func (pq *PriorityQueue[T]) down(parent int) {
	for 2*parent <= pq.count {
		child := 2 * parent
		if child < pq.count && pq.cmp(pq.items[child+1], pq.items[child]) > 0 {
			child++ // right child outranks left
		}
		if pq.cmp(pq.items[child], pq.items[parent]) <= 0 {
			return
		}
		pq.items[child], pq.items[parent] = pq.items[parent], pq.items[child]
		parent = child
	}
}
