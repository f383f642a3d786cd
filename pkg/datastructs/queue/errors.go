package queue

import (
	"github.com/pkg/errors"
)

// ErrEmptyQueue is returned by Peek and Dequeue when the queue has no items.
var ErrEmptyQueue = errors.New("queue is empty")

const (
	opPeek    = "peek"
	opDequeue = "dequeue"
)

// emptyError annotates ErrEmptyQueue with the failing operation.
func emptyError(op string) error {
	return errors.WithMessage(ErrEmptyQueue, op)
}

// IsEmptyQueue reports whether err was caused by an empty queue.
func IsEmptyQueue(err error) bool {
	return errors.Is(err, ErrEmptyQueue)
}
