package network

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
)

type TransportKind string

const (
	TransportWebSocket TransportKind = "websocket"
	TransportTCP       TransportKind = "tcp"
)

const (
	DefaultServerAddr     = "ws://localhost:9000"
	DefaultConnectTimeout = 5 * time.Second
)

type DialOptions struct {
	Addr      string
	Transport TransportKind
	// Token is sent as a bearer token on websocket connections.
	Token          string
	ConnectTimeout time.Duration
	Recorder       Recorder
}

// Dialer opens a Connection. Sessions take one so tests can substitute it.
type Dialer func(ctx context.Context, opts DialOptions) (Connection, error)

// Dial opens a Connection with the configured transport.
func Dial(ctx context.Context, opts DialOptions) (*Conn, error) {
	if opts.Addr == "" {
		opts.Addr = DefaultServerAddr
	}
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = DefaultConnectTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, opts.ConnectTimeout)
	defer cancel()

	var transport Transport
	switch opts.Transport {
	case TransportWebSocket, "":
		addr := opts.Addr
		if !strings.Contains(addr, "://") {
			addr = "ws://" + addr
		}
		t, err := DialWebSocket(ctx, addr, opts.Token)
		if err != nil {
			return nil, err
		}
		transport = t
	case TransportTCP:
		addr, err := hostPort(opts.Addr)
		if err != nil {
			return nil, err
		}
		t, err := DialTCP(ctx, addr)
		if err != nil {
			return nil, err
		}
		transport = t
	default:
		return nil, fmt.Errorf("unknown transport: %s", opts.Transport)
	}

	return NewConn(transport, opts.Recorder), nil
}

// DefaultDialer dials with Dial.
func DefaultDialer(ctx context.Context, opts DialOptions) (Connection, error) {
	conn, err := Dial(ctx, opts)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

func hostPort(addr string) (string, error) {
	if !strings.Contains(addr, "://") {
		return addr, nil
	}
	u, err := url.Parse(addr)
	if err != nil {
		return "", fmt.Errorf("failed to parse server address %q: %w", addr, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("server address %q has no host", addr)
	}
	return u.Host, nil
}
