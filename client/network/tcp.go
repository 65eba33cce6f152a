package network

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/cbodonnell/saltclient/pkg/log"
	"github.com/cbodonnell/saltclient/pkg/messages"
)

// frameHeaderSize is the big-endian length prefix in front of every TCP frame.
const frameHeaderSize = 4

// TCPTransport carries length-prefixed frames over a TCP stream.
type TCPTransport struct {
	conn net.Conn
}

// DialTCP connects to a TCP server.
func DialTCP(ctx context.Context, addr string) (*TCPTransport, error) {
	log.Info("Connecting to TCP server at %s", addr)
	dialer := &net.Dialer{}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}
	return NewTCPTransport(conn), nil
}

func NewTCPTransport(conn net.Conn) *TCPTransport {
	return &TCPTransport{
		conn: conn,
	}
}

func (t *TCPTransport) ReadFrame(ctx context.Context) ([]byte, error) {
	stop := t.watch(ctx, t.conn.SetReadDeadline)
	defer stop()

	b, err := ReadFrame(t.conn)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}
	return b, nil
}

func (t *TCPTransport) WriteFrame(ctx context.Context, b []byte) error {
	stop := t.watch(ctx, t.conn.SetWriteDeadline)
	defer stop()

	if err := WriteFrame(t.conn, b); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	return nil
}

// watch interrupts the pending operation once ctx is done, so the caller can
// report ctx.Err() instead of a bare timeout.
func (t *TCPTransport) watch(ctx context.Context, setDeadline func(time.Time) error) func() {
	_ = setDeadline(time.Time{})
	stop := context.AfterFunc(ctx, func() {
		_ = setDeadline(time.Now())
	})
	return func() { stop() }
}

func (t *TCPTransport) Close() error {
	if err := t.conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return nil
}

// ReadFrame reads one length-prefixed frame. EOF on a frame boundary is an orderly close.
func ReadFrame(r io.Reader) ([]byte, error) {
	header := make([]byte, frameHeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ErrConnectionClosedByServer{}
		}
		if errors.Is(err, net.ErrClosed) {
			return nil, &ErrConnectionClosedByClient{}
		}
		return nil, fmt.Errorf("failed to read frame header from TCP connection: %w", err)
	}

	size := binary.BigEndian.Uint32(header)
	if size > messages.MaxMessageSize {
		return nil, fmt.Errorf("%w: frame of %d bytes", messages.ErrMessageTooLarge, size)
	}

	b := make([]byte, size)
	if _, err := io.ReadFull(r, b); err != nil {
		if errors.Is(err, net.ErrClosed) {
			return nil, &ErrConnectionClosedByClient{}
		}
		return nil, fmt.Errorf("failed to read frame body from TCP connection: %w", err)
	}
	return b, nil
}

// WriteFrame writes b behind its length prefix.
func WriteFrame(w io.Writer, b []byte) error {
	if len(b) > messages.MaxMessageSize {
		return fmt.Errorf("%w: frame of %d bytes", messages.ErrMessageTooLarge, len(b))
	}
	frame := make([]byte, frameHeaderSize+len(b))
	binary.BigEndian.PutUint32(frame, uint32(len(b)))
	copy(frame[frameHeaderSize:], b)
	if _, err := w.Write(frame); err != nil {
		if errors.Is(err, net.ErrClosed) {
			return &ErrConnectionClosedByClient{}
		}
		return fmt.Errorf("failed to write message to TCP connection: %w", err)
	}
	return nil
}
