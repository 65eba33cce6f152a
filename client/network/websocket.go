package network

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/cbodonnell/saltclient/pkg/log"
	"github.com/cbodonnell/saltclient/pkg/messages"
	"nhooyr.io/websocket"
)

// WSTransport carries one frame per binary websocket message.
type WSTransport struct {
	conn      *websocket.Conn
	closed    atomic.Bool
	closeOnce sync.Once
}

// DialWebSocket connects to a websocket server. A non-empty token is sent as a bearer token.
func DialWebSocket(ctx context.Context, addr string, token string) (*WSTransport, error) {
	log.Info("Connecting to WebSocket server at %s", addr)

	opts := &websocket.DialOptions{}
	if token != "" {
		opts.HTTPHeader = http.Header{}
		opts.HTTPHeader.Set("Authorization", "Bearer "+token)
	}

	conn, resp, err := websocket.Dial(ctx, addr, opts)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("failed to connect to server (status %d): %w", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}
	conn.SetReadLimit(messages.MaxMessageSize)

	return &WSTransport{
		conn: conn,
	}, nil
}

func (t *WSTransport) ReadFrame(ctx context.Context) ([]byte, error) {
	typ, b, err := t.conn.Read(ctx)
	if err != nil {
		if t.closed.Load() {
			return nil, &ErrConnectionClosedByClient{}
		}
		switch websocket.CloseStatus(err) {
		case websocket.StatusNormalClosure, websocket.StatusGoingAway:
			return nil, &ErrConnectionClosedByServer{}
		case -1:
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("failed to read message from WebSocket connection: %w", err)
		default:
			return nil, fmt.Errorf("connection closed by server with status %d: %w", websocket.CloseStatus(err), err)
		}
	}
	if typ != websocket.MessageBinary {
		return nil, fmt.Errorf("%w: unexpected %s websocket message", ErrDecode, typ)
	}
	return b, nil
}

func (t *WSTransport) WriteFrame(ctx context.Context, b []byte) error {
	if err := t.conn.Write(ctx, websocket.MessageBinary, b); err != nil {
		if t.closed.Load() {
			return &ErrConnectionClosedByClient{}
		}
		return fmt.Errorf("failed to write message to WebSocket connection: %w", err)
	}
	return nil
}

// Close performs the websocket closing handshake once. A handshake that fails
// because the server already went away is not reported.
func (t *WSTransport) Close() error {
	t.closeOnce.Do(func() {
		t.closed.Store(true)
		if err := t.conn.Close(websocket.StatusNormalClosure, "client closing"); err != nil {
			log.Debug("WebSocket close handshake did not complete: %v", err)
		}
	})
	return nil
}
