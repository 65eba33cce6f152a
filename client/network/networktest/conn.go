// Package networktest provides an in-memory Connection for tests.
package networktest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cbodonnell/saltclient/client/network"
	"github.com/cbodonnell/saltclient/pkg/messages"
	"github.com/stretchr/testify/assert"
)

// Conn delivers pushed server messages in order and records what the client sends.
// Once ServerClose is called and the pushed messages are drained, Recv reports an orderly close.
type Conn struct {
	in        chan messages.ServerMessage
	out       chan messages.ClientMessage
	done      chan struct{}
	closeOnce sync.Once
	closed    chan struct{}
	localOnce sync.Once
}

var _ network.Connection = &Conn{}

func NewConn(msgs ...messages.ServerMessage) *Conn {
	c := &Conn{
		in:     make(chan messages.ServerMessage, 64),
		out:    make(chan messages.ClientMessage, 64),
		done:   make(chan struct{}),
		closed: make(chan struct{}),
	}
	c.Push(msgs...)
	return c
}

func (c *Conn) Push(msgs ...messages.ServerMessage) {
	for _, m := range msgs {
		c.in <- m
	}
}

// Pending is the number of pushed messages not yet received.
func (c *Conn) Pending() int {
	return len(c.in)
}

func (c *Conn) ServerClose() {
	c.closeOnce.Do(func() { close(c.done) })
}

// Closed is closed once the client has called Close.
func (c *Conn) Closed() <-chan struct{} {
	return c.closed
}

func (c *Conn) Recv(ctx context.Context) (messages.ServerMessage, error) {
	select {
	case m := <-c.in:
		return m, nil
	default:
	}
	select {
	case m := <-c.in:
		return m, nil
	case <-c.done:
		return nil, &network.ErrConnectionClosedByServer{}
	case <-c.closed:
		return nil, &network.ErrConnectionClosedByClient{}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Conn) Send(ctx context.Context, msg messages.ClientMessage) error {
	select {
	case <-c.closed:
		return &network.ErrConnectionClosedByClient{}
	default:
	}
	c.out <- msg
	return nil
}

func (c *Conn) Close() error {
	c.localOnce.Do(func() { close(c.closed) })
	return nil
}

// ExpectSent fails the test unless the next message the client sends is want.
func (c *Conn) ExpectSent(t *testing.T, want messages.ClientMessage) {
	t.Helper()
	select {
	case got := <-c.out:
		assert.Equal(t, want, got)
	case <-time.After(2 * time.Second):
		t.Fatalf("client did not send %s", want.Type())
	}
}

// ExpectNothingSent fails the test if the client has sent anything not yet expected.
func (c *Conn) ExpectNothingSent(t *testing.T) {
	t.Helper()
	select {
	case got := <-c.out:
		t.Fatalf("client unexpectedly sent %s", got.Type())
	default:
	}
}
