// Package demo runs the scripted ArrayQueue walkthrough used by the CLI.
package demo

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/arrayqueue/pkg/datastructs/queue"
)

// script is enqueued in order; the third value overflows a capacity of 2.
var script = []any{5, 50, "Hello!"}

// Run enqueues the script, dequeues twice, peeks once and prints each result
// followed by the final size to w.
func Run(capacity int, log *zap.Logger, w io.Writer) error {
	q := queue.NewArray[any](capacity)
	log.Debug("queue created", zap.Int("capacity", q.Capacity()))

	for _, v := range script {
		before := q.Capacity()
		q.Enqueue(v)
		log.Debug("enqueued", zap.Any("value", v), zap.Int("size", q.Size()))
		if after := q.Capacity(); after != before {
			log.Info("storage grew", zap.Int("from", before), zap.Int("to", after))
		}
	}

	for i := 0; i < 2; i++ {
		v, err := q.Dequeue()
		if err != nil {
			return errors.Wrap(err, "demo")
		}
		log.Debug("dequeued", zap.Any("value", v), zap.Int("size", q.Size()))
		if _, err := fmt.Fprintln(w, v); err != nil {
			return errors.Wrap(err, "write result")
		}
	}

	v, err := q.Peek()
	if err != nil {
		return errors.Wrap(err, "demo")
	}
	if _, err := fmt.Fprintln(w, v); err != nil {
		return errors.Wrap(err, "write result")
	}

	if _, err := fmt.Fprintf(w, "size: %d\n", q.Size()); err != nil {
		return errors.Wrap(err, "write result")
	}
	return nil
}
