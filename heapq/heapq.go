// Package heapq implements an array-backed binary minheap whose element
// ordering is supplied by an external comparator together with a read-only
// auxiliary context value.  This lets heap elements stay small opaque values
// (indices, handles) while the true comparison key lives elsewhere, looked up
// through the context on every comparison.
//
// All operations are synchronous and in-place; none of them block, retry, or
// allocate beyond growing the backing slice.
package heapq

// CompareFunc compares a and b, resolving their ordering keys through the
// auxiliary context aux.  It returns a negative number when a < b, zero when
// a == b, and a positive number when a > b.
type CompareFunc[T, A any] func(a, b T, aux A) int

// Heapify rearranges heap in place into minheap order in linear time, by
// repairing every internal node from the last one down to the root.
func Heapify[T, A any](heap []T, cmp CompareFunc[T, A], aux A) {
	for i := len(heap)/2 - 1; i >= 0; i-- {
		siftToLeaf(heap, i, cmp, aux)
	}
}

// Push adds item to the heap, restoring the heap invariant afterward.
func Push[T, A any](heap *[]T, item T, cmp CompareFunc[T, A], aux A) {
	*heap = append(*heap, item)
	bubbleUp(*heap, 0, len(*heap)-1, cmp, aux)
}

// Pop removes and returns the smallest element of the heap.  Popping an empty
// heap is not an error: it returns the zero value of T and false.
func Pop[T, A any](heap *[]T, cmp CompareFunc[T, A], aux A) (T, bool) {
	h := *heap
	if len(h) == 0 {
		var zero T
		return zero, false
	}
	last := len(h) - 1
	item := h[0]
	h[0] = h[last]
	var zero T
	h[last] = zero
	h = h[:last]
	*heap = h
	siftToLeaf(h, 0, cmp, aux)
	return item, true
}

// siftToLeaf repairs the subtree rooted at pos by walking the element at pos
// down to a leaf along the smallest-child path, swapping unconditionally at
// each level, then bubbling it back up toward pos.  Ties between siblings
// select the right child.  One comparison per level on the way down makes
// this cheaper on average than comparing the moved element against each
// child, because the element placed at the root by Pop is usually large and
// would travel most of the way down regardless.
func siftToLeaf[T, A any](heap []T, pos int, cmp CompareFunc[T, A], aux A) {
	end := len(heap)
	start := pos
	child := 2*pos + 1
	for child < end {
		right := child + 1
		if right < end && cmp(heap[child], heap[right], aux) >= 0 {
			child = right
		}
		heap[pos], heap[child] = heap[child], heap[pos]
		pos = child
		child = 2*pos + 1
	}
	bubbleUp(heap, start, pos, cmp, aux)
}

// bubbleUp moves the element at pos toward the root, swapping with its parent
// while it compares strictly less, stopping at the floor index start.
func bubbleUp[T, A any](heap []T, start, pos int, cmp CompareFunc[T, A], aux A) {
	for pos > start {
		parent := (pos - 1) / 2
		if cmp(heap[pos], heap[parent], aux) >= 0 {
			break
		}
		heap[pos], heap[parent] = heap[parent], heap[pos]
		pos = parent
	}
}
