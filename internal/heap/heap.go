// Package heap implements a generic binary min-heap over a slice, ordered
// by a caller-supplied comparison function.
package heap

// Push adds item to x while preserving the min-heap invariant determined
// by the provided comparison function.
func Push[T any](x *[]T, item T, less func(a, b T) bool) {
	*x = append(*x, item)
	siftUp(*x, len(*x)-1, less)
}

// Pop removes and returns the smallest element of x based on the provided
// comparison function, updating x to preserve the heap invariant. It must
// not be called on an empty heap.
func Pop[T any](x *[]T, less func(a, b T) bool) T {
	smallest := (*x)[0]
	(*x)[0], *x = (*x)[len(*x)-1], (*x)[:len(*x)-1]
	if len(*x) > 0 {
		siftDown(*x, 0, less)
	}
	return smallest
}

// Order shuffles x into min-heap ordering according to the provided
// comparison function. If len(x) > 0, the smallest element will be x[0].
func Order[T any](x []T, less func(a, b T) bool) {
	for i := len(x)/2 - 1; i >= 0; i-- {
		siftDown(x, i, less)
	}
}

func siftUp[T any](x []T, index int, less func(a, b T) bool) {
	for index > 0 {
		parent := (index - 1) / 2
		if !less(x[index], x[parent]) {
			break
		}
		x[parent], x[index] = x[index], x[parent]
		index = parent
	}
}

func siftDown[T any](x []T, index int, less func(a, b T) bool) {
	for {
		left := index*2 + 1
		if left >= len(x) {
			break
		}
		child := left
		if right := left + 1; right < len(x) && less(x[right], x[left]) {
			child = right
		}
		if !less(x[child], x[index]) {
			break
		}
		x[child], x[index] = x[index], x[child]
		index = child
	}
}
