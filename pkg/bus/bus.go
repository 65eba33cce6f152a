// Package bus pairs two independent FIFO queues into a bi-directional channel
// between the network goroutine and a polling consumer.
package bus

import (
	"context"
	"errors"
	"fmt"

	"github.com/cbodonnell/saltclient/pkg/queue"
)

var (
	// ErrDisconnected is returned once the peer endpoint, or this one, has been closed.
	ErrDisconnected = errors.New("bus: disconnected")
)

// Endpoint is one side of a pair. It sends S and receives R.
// Ordering is FIFO per direction; nothing orders one direction against the other.
type Endpoint[S, R any] struct {
	out queue.Queue[S]
	in  queue.Queue[R]
}

type Options[A, B any] struct {
	// AtoB configures the queue carrying messages from the A endpoint to the B endpoint.
	AtoB queue.Options[A]
	// BtoA configures the queue carrying messages from the B endpoint to the A endpoint.
	BtoA queue.Options[B]
}

// NewPair creates two connected endpoints over unbounded queues.
// a sends A and receives B; b sends B and receives A.
func NewPair[A, B any]() (a *Endpoint[A, B], b *Endpoint[B, A]) {
	return NewPairWithOptions(Options[A, B]{})
}

func NewPairWithOptions[A, B any](opts Options[A, B]) (*Endpoint[A, B], *Endpoint[B, A]) {
	aToB := queue.NewInMemoryQueueWithOptions(opts.AtoB)
	bToA := queue.NewInMemoryQueueWithOptions(opts.BtoA)
	return newEndpoint[A, B](aToB, bToA), newEndpoint[B, A](bToA, aToB)
}

func newEndpoint[S, R any](out queue.Queue[S], in queue.Queue[R]) *Endpoint[S, R] {
	return &Endpoint[S, R]{
		out: out,
		in:  in,
	}
}

// Send queues msg for the peer. It never blocks.
func (e *Endpoint[S, R]) Send(msg S) error {
	if err := e.out.Enqueue(msg); err != nil {
		return mapErr(err)
	}
	return nil
}

// SendLast queues msg regardless of the queue's capacity, then closes the endpoint.
// The peer receives msg after everything sent before it.
func (e *Endpoint[S, R]) SendLast(msg S) error {
	err := e.out.ForceEnqueue(msg)
	e.Close()
	if err != nil {
		return mapErr(err)
	}
	return nil
}

// Recv waits for the next message from the peer. Messages the peer sent before
// closing are still delivered; after that Recv returns ErrDisconnected.
func (e *Endpoint[S, R]) Recv(ctx context.Context) (R, error) {
	msg, err := e.in.Dequeue(ctx)
	if err != nil {
		return msg, mapErr(err)
	}
	return msg, nil
}

// TryRecv returns the next message if one is already queued.
func (e *Endpoint[S, R]) TryRecv() (R, bool, error) {
	msg, ok, err := e.in.TryDequeue()
	if err != nil {
		return msg, false, mapErr(err)
	}
	return msg, ok, nil
}

// Drain returns up to max queued messages without waiting. max <= 0 drains everything.
func (e *Endpoint[S, R]) Drain(max int) ([]R, error) {
	msgs, err := e.in.ReadMessages(max)
	if err != nil {
		return nil, mapErr(err)
	}
	return msgs, nil
}

// Pending returns the number of messages waiting to be received.
func (e *Endpoint[S, R]) Pending() int {
	return e.in.Size()
}

// Dropped returns how many messages sent by this endpoint were evicted before
// the peer read them.
func (e *Endpoint[S, R]) Dropped() int {
	return e.out.Dropped()
}

// Close disconnects both directions. The peer can still drain what was sent
// before the close. Close is idempotent.
func (e *Endpoint[S, R]) Close() {
	e.out.Close()
	e.in.Close()
}

func mapErr(err error) error {
	if errors.Is(err, queue.ErrQueueClosed) {
		return ErrDisconnected
	}
	if errors.Is(err, queue.ErrQueueFull) {
		return fmt.Errorf("bus: %w", err)
	}
	return err
}
