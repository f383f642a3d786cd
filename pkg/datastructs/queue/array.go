package queue

import (
	"github.com/huynhanx03/arrayqueue/pkg/utils"
)

var _ Queue[int] = (*ArrayQueue[int])(nil)

// ArrayQueue is an unbounded FIFO queue backed by a single contiguous slice.
// The front item always lives at index 0, so Dequeue shifts the remaining
// items down and costs O(n). Enqueue is amortized O(1).
// Storage doubles when full and never shrinks.
// It is NOT thread-safe.
type ArrayQueue[T any] struct {
	storage []T // backing slots, len(storage) is the capacity
	count   int // live items occupy storage[:count]
}

// NewArray creates a queue with exactly capacity backing slots.
// A capacity of 0 is valid; the first Enqueue grows the storage.
// Negative capacities are treated as 0.
func NewArray[T any](capacity int) *ArrayQueue[T] {
	return &ArrayQueue[T]{
		storage: make([]T, utils.ClampNonNegative(capacity)),
	}
}

// Peek returns the front item without removing it.
func (q *ArrayQueue[T]) Peek() (T, error) {
	if q.count == 0 {
		var zero T
		return zero, emptyError(opPeek)
	}
	return q.storage[0], nil
}

// Dequeue removes and returns the front item.
func (q *ArrayQueue[T]) Dequeue() (T, error) {
	var zero T
	if q.count == 0 {
		return zero, emptyError(opDequeue)
	}

	item := q.storage[0]
	copy(q.storage, q.storage[1:q.count])
	q.count--
	q.storage[q.count] = zero // drop the stale reference

	return item, nil
}

// Enqueue appends an item to the back, growing storage when full.
func (q *ArrayQueue[T]) Enqueue(item T) {
	if q.count == len(q.storage) {
		q.resize(utils.GrowCapacity(q.count))
	}
	q.storage[q.count] = item
	q.count++
}

// EnqueueBatch appends items in order and returns the number enqueued.
// Storage is reallocated at most once.
func (q *ArrayQueue[T]) EnqueueBatch(items []T) int {
	need := q.count + len(items)
	if need > len(q.storage) {
		newCap := len(q.storage)
		for newCap < need {
			newCap = utils.GrowCapacity(newCap)
		}
		q.resize(newCap)
	}
	q.count += copy(q.storage[q.count:], items)
	return len(items)
}

// DequeueBatch removes up to len(out) front items into out.
// Returns count dequeued. Remaining items are shifted once.
func (q *ArrayQueue[T]) DequeueBatch(out []T) int {
	n := copy(out, q.storage[:q.count])
	if n == 0 {
		return 0
	}

	copy(q.storage, q.storage[n:q.count])
	clear(q.storage[q.count-n : q.count])
	q.count -= n
	return n
}

// Size returns the number of items in the queue.
func (q *ArrayQueue[T]) Size() int { return q.count }

// IsEmpty reports whether the queue has no items.
func (q *ArrayQueue[T]) IsEmpty() bool { return q.count == 0 }

// Capacity returns the number of backing slots.
func (q *ArrayQueue[T]) Capacity() int { return len(q.storage) }

// Clear drops all items. Capacity is retained.
func (q *ArrayQueue[T]) Clear() {
	clear(q.storage[:q.count])
	q.count = 0
}

// Iterate calls fn for each item from front to back.
// It stops iteration if fn returns an error.
func (q *ArrayQueue[T]) Iterate(fn func(item T) error) error {
	for i := 0; i < q.count; i++ {
		if err := fn(q.storage[i]); err != nil {
			return err
		}
	}
	return nil
}

// resize moves the live items into a new backing slice of newCap slots.
func (q *ArrayQueue[T]) resize(newCap int) {
	storage := make([]T, newCap)
	copy(storage, q.storage[:q.count])
	q.storage = storage
}
