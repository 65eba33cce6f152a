package network

import "errors"

// ErrDecode marks frames that could not be turned into a server message.
var ErrDecode = errors.New("decode error")

// ErrConnectionClosedByServer is returned when the server closes the connection in an orderly way.
type ErrConnectionClosedByServer struct{}

func (e *ErrConnectionClosedByServer) Error() string {
	return "connection closed by server"
}

// ErrConnectionClosedByClient is returned when the connection was closed on this side.
type ErrConnectionClosedByClient struct{}

func (e *ErrConnectionClosedByClient) Error() string {
	return "connection closed by client"
}

// IsClosedByServer reports whether err is, or wraps, an orderly server close.
func IsClosedByServer(err error) bool {
	var target *ErrConnectionClosedByServer
	return errors.As(err, &target)
}

// IsClosedByClient reports whether err is, or wraps, a local close.
func IsClosedByClient(err error) bool {
	var target *ErrConnectionClosedByClient
	return errors.As(err, &target)
}
