package network

import (
	"context"

	"github.com/cbodonnell/saltclient/pkg/messages"
)

type Direction string

const (
	DirectionSent     Direction = "sent"
	DirectionReceived Direction = "received"
)

// Recorder receives a copy of every envelope that crosses the connection.
// A failing recorder never fails the connection.
type Recorder interface {
	Record(ctx context.Context, dir Direction, msg *messages.Message) error
}

// RecorderFunc adapts a function to the Recorder interface.
type RecorderFunc func(ctx context.Context, dir Direction, msg *messages.Message) error

func (f RecorderFunc) Record(ctx context.Context, dir Direction, msg *messages.Message) error {
	return f(ctx, dir, msg)
}
