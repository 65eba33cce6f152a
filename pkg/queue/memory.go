// queue package

package queue

import (
	"context"
	"sync"
)

type OverflowPolicy int

const (
	// OverflowReject fails the Enqueue with ErrQueueFull.
	OverflowReject OverflowPolicy = iota
	// OverflowDropOldest evicts the oldest item matching Options.Evictable.
	// When no queued item is evictable the Enqueue fails with ErrQueueFull.
	OverflowDropOldest
)

type Options[T any] struct {
	// Capacity bounds the queue. Zero means unbounded.
	Capacity int
	Overflow OverflowPolicy
	// Evictable selects the items OverflowDropOldest may drop. Nil means any item.
	Evictable func(T) bool
}

// InMemoryQueue implements an in-memory queue.
type InMemoryQueue[T any] struct {
	opts    Options[T]
	lock    sync.Mutex
	items   []T
	ready   chan struct{}
	closed  chan struct{}
	once    sync.Once
	dropped int
}

// NewInMemoryQueue creates a new unbounded queue.
func NewInMemoryQueue[T any]() *InMemoryQueue[T] {
	return NewInMemoryQueueWithOptions(Options[T]{})
}

// NewInMemoryQueueWithOptions creates a new queue.
func NewInMemoryQueueWithOptions[T any](opts Options[T]) *InMemoryQueue[T] {
	return &InMemoryQueue[T]{
		opts:   opts,
		ready:  make(chan struct{}, 1),
		closed: make(chan struct{}),
	}
}

// Enqueue adds an item to the end of the queue.
func (q *InMemoryQueue[T]) Enqueue(item T) error {
	q.lock.Lock()
	defer q.lock.Unlock()

	select {
	case <-q.closed:
		return ErrQueueClosed
	default:
	}

	if q.opts.Capacity > 0 && len(q.items) >= q.opts.Capacity {
		if q.opts.Overflow != OverflowDropOldest || !q.evictOldest() {
			return ErrQueueFull
		}
	}

	q.items = append(q.items, item)
	q.signal()
	return nil
}

// ForceEnqueue adds an item to the end of the queue without checking its capacity.
func (q *InMemoryQueue[T]) ForceEnqueue(item T) error {
	q.lock.Lock()
	defer q.lock.Unlock()

	select {
	case <-q.closed:
		return ErrQueueClosed
	default:
	}

	q.items = append(q.items, item)
	q.signal()
	return nil
}

func (q *InMemoryQueue[T]) evictOldest() bool {
	for i, queued := range q.items {
		if q.opts.Evictable == nil || q.opts.Evictable(queued) {
			q.items = append(q.items[:i], q.items[i+1:]...)
			q.dropped++
			return true
		}
	}
	return false
}

// signal wakes one waiting Dequeue. Must be called with the lock held.
func (q *InMemoryQueue[T]) signal() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// Dequeue removes and returns the item from the front of the queue.
func (q *InMemoryQueue[T]) Dequeue(ctx context.Context) (T, error) {
	for {
		item, ok, err := q.TryDequeue()
		if ok || err != nil {
			return item, err
		}

		select {
		case <-q.ready:
		case <-q.closed:
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}

// TryDequeue removes and returns the item from the front of the queue if there is one.
func (q *InMemoryQueue[T]) TryDequeue() (T, bool, error) {
	q.lock.Lock()
	defer q.lock.Unlock()

	var zero T
	if len(q.items) == 0 {
		select {
		case <-q.closed:
			return zero, false, ErrQueueClosed
		default:
			return zero, false, nil
		}
	}

	item := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]
	if len(q.items) > 0 {
		q.signal()
	}
	return item, true, nil
}

// ReadMessages reads up to max pending messages in the queue.
func (q *InMemoryQueue[T]) ReadMessages(max int) ([]T, error) {
	q.lock.Lock()
	defer q.lock.Unlock()

	if len(q.items) == 0 {
		select {
		case <-q.closed:
			return nil, ErrQueueClosed
		default:
			return nil, nil
		}
	}

	n := len(q.items)
	if max > 0 && max < n {
		n = max
	}
	messages := make([]T, n)
	copy(messages, q.items[:n])
	q.items = append(q.items[:0], q.items[n:]...)
	if len(q.items) > 0 {
		q.signal()
	}

	return messages, nil
}

// Size returns the current size of the queue.
func (q *InMemoryQueue[T]) Size() int {
	q.lock.Lock()
	defer q.lock.Unlock()
	return len(q.items)
}

// Dropped returns how many items OverflowDropOldest has evicted.
func (q *InMemoryQueue[T]) Dropped() int {
	q.lock.Lock()
	defer q.lock.Unlock()
	return q.dropped
}

// Close stops the queue accepting items. Items already queued can still be read,
// after which reads return ErrQueueClosed. Close is idempotent.
func (q *InMemoryQueue[T]) Close() {
	q.once.Do(func() {
		q.lock.Lock()
		defer q.lock.Unlock()
		close(q.closed)
	})
}

// Closed reports whether Close has been called.
func (q *InMemoryQueue[T]) Closed() bool {
	select {
	case <-q.closed:
		return true
	default:
		return false
	}
}
