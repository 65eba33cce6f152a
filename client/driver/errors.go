package driver

import (
	"errors"
	"fmt"

	"github.com/cbodonnell/saltclient/pkg/messages"
)

var (
	// ErrConnection matches every *ConnectionError.
	ErrConnection = errors.New("connection error")
	// ErrProtocolViolation matches every *ProtocolViolationError.
	ErrProtocolViolation = errors.New("protocol violation")
	// ErrUnexpectedClose is wrapped when the server closes before the game has started.
	ErrUnexpectedClose = errors.New("connection closed before the game started")
)

// ConnectionError is an I/O, decode or timeout failure, or a close the protocol did not allow.
type ConnectionError struct {
	Op  string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error during %s: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

func (e *ConnectionError) Is(target error) bool {
	return target == ErrConnection
}

// ProtocolViolationError reports a message that is not accepted in the current state.
type ProtocolViolationError struct {
	State State
	Got   messages.MessageType
}

func (e *ProtocolViolationError) Error() string {
	return fmt.Sprintf("protocol violation: received %s while in %s", e.Got, e.State)
}

func (e *ProtocolViolationError) Is(target error) bool {
	return target == ErrProtocolViolation
}
