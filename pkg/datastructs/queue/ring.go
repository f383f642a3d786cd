package queue

import (
	"github.com/huynhanx03/arrayqueue/pkg/utils"
)

var _ Queue[int] = (*RingQueue[int])(nil)

// RingQueue is an unbounded FIFO queue backed by a circular slice.
// Unlike ArrayQueue it never shifts items, so Dequeue is O(1).
// Capacity is always zero or a power of two so positions wrap with a mask.
// It is NOT thread-safe.
type RingQueue[T any] struct {
	slots []T
	mask  int // len(slots) - 1
	head  int // index of the front item
	count int
}

// NewRing creates a ring queue. A positive capacity is rounded up to the
// nearest power of two; 0 or less yields an empty ring that grows on first use.
func NewRing[T any](capacity int) *RingQueue[T] {
	if capacity <= 0 {
		return &RingQueue[T]{mask: -1}
	}
	capacity = utils.CeilToPowerOfTwo(capacity)
	return &RingQueue[T]{
		slots: make([]T, capacity),
		mask:  capacity - 1,
	}
}

func (q *RingQueue[T]) idx(pos int) int { return pos & q.mask }

// Peek returns the front item without removing it.
func (q *RingQueue[T]) Peek() (T, error) {
	if q.count == 0 {
		var zero T
		return zero, emptyError(opPeek)
	}
	return q.slots[q.head], nil
}

// Dequeue removes and returns the front item.
func (q *RingQueue[T]) Dequeue() (T, error) {
	var zero T
	if q.count == 0 {
		return zero, emptyError(opDequeue)
	}

	item := q.slots[q.head]
	q.slots[q.head] = zero
	q.head = q.idx(q.head + 1)
	q.count--

	return item, nil
}

// Enqueue appends an item to the back, doubling the ring when full.
func (q *RingQueue[T]) Enqueue(item T) {
	if q.count == len(q.slots) {
		q.grow(utils.GrowCapacity(len(q.slots)))
	}
	q.slots[q.idx(q.head+q.count)] = item
	q.count++
}

// Size returns the number of items in the queue.
func (q *RingQueue[T]) Size() int { return q.count }

// IsEmpty reports whether the queue has no items.
func (q *RingQueue[T]) IsEmpty() bool { return q.count == 0 }

// Capacity returns the number of backing slots.
func (q *RingQueue[T]) Capacity() int { return len(q.slots) }

// grow unwraps the ring into a new slice so the front lands at index 0.
func (q *RingQueue[T]) grow(newCap int) {
	slots := make([]T, newCap)
	n := copy(slots, q.slots[q.head:])
	copy(slots[n:], q.slots[:q.head])

	q.slots = slots
	q.mask = newCap - 1
	q.head = 0
}
