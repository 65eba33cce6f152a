package queue

import (
	"context"
	"errors"
)

var (
	// ErrQueueClosed is returned once a closed queue has no buffered items left.
	ErrQueueClosed = errors.New("queue closed")
	// ErrQueueFull is returned when a bounded queue cannot accept an item.
	ErrQueueFull = errors.New("queue full")
)

// Queue represents a FIFO queue shared between goroutines.
type Queue[T any] interface {
	// Enqueue adds an item to the end of the queue. It never blocks.
	Enqueue(item T) error
	// ForceEnqueue adds an item even when a bounded queue is full.
	// It still fails on a closed queue.
	ForceEnqueue(item T) error
	// Dequeue removes and returns the item at the front of the queue,
	// waiting until one is available, the queue is closed or ctx is done.
	Dequeue(ctx context.Context) (T, error)
	// TryDequeue is the non-blocking form of Dequeue. ok is false when the queue is empty.
	TryDequeue() (item T, ok bool, err error)
	// ReadMessages removes and returns up to max pending items. max <= 0 reads all of them.
	ReadMessages(max int) ([]T, error)
	Size() int
	// Dropped counts the items evicted by OverflowDropOldest.
	Dropped() int
	Close()
}
