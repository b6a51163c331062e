package pqueue

// HeapSort sorts items in place so that the highest priority item under c
// comes first. With Max the result is descending, with Min ascending.
func HeapSort[T any](items []T, c Compare[T]) {
	pq := NewFrom(items, c)
	for i := range items {
		items[i], _ = pq.Extract()
	}
}
