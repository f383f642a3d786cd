package queue

// Queue is a generic interface for unbounded FIFO queues.
// Implementations are not safe for concurrent use.
type Queue[T any] interface {
	// Peek returns the front item without removing it.
	// Returns ErrEmptyQueue if the queue has no items.
	Peek() (T, error)

	// Dequeue removes and returns the front item.
	// Returns ErrEmptyQueue if the queue has no items; the queue is left untouched.
	Dequeue() (T, error)

	// Enqueue adds an item to the back of the queue, growing storage as needed.
	Enqueue(item T)

	// Size returns the number of items in the queue.
	Size() int

	// IsEmpty reports whether the queue has no items.
	IsEmpty() bool
}
