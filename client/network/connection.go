package network

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/cbodonnell/saltclient/pkg/log"
	"github.com/cbodonnell/saltclient/pkg/messages"
)

// Connection sequences typed protocol messages over a framed transport.
// Recv returns an *ErrConnectionClosedByServer error on an orderly close;
// every other error is fatal to the connection.
type Connection interface {
	Send(ctx context.Context, msg messages.ClientMessage) error
	Recv(ctx context.Context) (messages.ServerMessage, error)
	Close() error
}

// Transport moves whole frames. Implementations must map an orderly remote
// close to *ErrConnectionClosedByServer and reads after Close to *ErrConnectionClosedByClient.
type Transport interface {
	ReadFrame(ctx context.Context) ([]byte, error)
	WriteFrame(ctx context.Context, b []byte) error
	Close() error
}

var _ Connection = &Conn{}

// Conn is a Connection over a Transport.
type Conn struct {
	transport Transport
	recorder  Recorder
	sendLock  sync.Mutex
	sendSeq   uint64
	recvLock  sync.Mutex
	recvSeq   uint64
	closed    atomic.Bool
}

func NewConn(transport Transport, recorder Recorder) *Conn {
	return &Conn{
		transport: transport,
		recorder:  recorder,
	}
}

// Send writes msg with the next outgoing sequence number.
func (c *Conn) Send(ctx context.Context, msg messages.ClientMessage) error {
	if c.closed.Load() {
		return &ErrConnectionClosedByClient{}
	}

	c.sendLock.Lock()
	defer c.sendLock.Unlock()

	m, err := messages.NewMessage(c.sendSeq+1, msg)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	b, err := messages.SerializeMessage(m)
	if err != nil {
		return fmt.Errorf("failed to serialize message: %w", err)
	}
	if err := c.transport.WriteFrame(ctx, b); err != nil {
		return fmt.Errorf("failed to write %s: %w", m.Type, err)
	}
	c.sendSeq = m.Seq

	log.Trace("Sent %s (seq %d)", m.Type, m.Seq)
	c.record(ctx, DirectionSent, m)
	return nil
}

// Recv reads the next server message. A non-zero sequence number that does not
// increase is a decode error.
func (c *Conn) Recv(ctx context.Context) (messages.ServerMessage, error) {
	c.recvLock.Lock()
	defer c.recvLock.Unlock()

	b, err := c.transport.ReadFrame(ctx)
	if err != nil {
		if c.closed.Load() && !IsClosedByServer(err) {
			return nil, &ErrConnectionClosedByClient{}
		}
		return nil, err
	}

	m, err := messages.DeserializeMessage(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if m.Seq != 0 {
		if m.Seq <= c.recvSeq {
			return nil, fmt.Errorf("%w: sequence went from %d to %d", ErrDecode, c.recvSeq, m.Seq)
		}
		c.recvSeq = m.Seq
	}
	c.record(ctx, DirectionReceived, m)

	msg, err := messages.DecodeServerMessage(m)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	log.Trace("Received %s (seq %d)", m.Type, m.Seq)
	return msg, nil
}

// Close closes the transport. It is safe to call more than once.
func (c *Conn) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	return c.transport.Close()
}

func (c *Conn) record(ctx context.Context, dir Direction, m *messages.Message) {
	if c.recorder == nil {
		return
	}
	if err := c.recorder.Record(ctx, dir, m); err != nil {
		log.Warn("Failed to record %s message %s: %v", dir, m.Type, err)
	}
}
