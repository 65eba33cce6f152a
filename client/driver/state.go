package driver

import "fmt"

type State int32

const (
	StateAwaitHello State = iota
	StateHandshaking
	StateAwaitGameStart
	StateAwaitInitialState
	StateTurnLoop
	StateActionLoop
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateAwaitHello:
		return "AwaitHello"
	case StateHandshaking:
		return "Handshaking"
	case StateAwaitGameStart:
		return "AwaitGameStart"
	case StateAwaitInitialState:
		return "AwaitInitialState"
	case StateTurnLoop:
		return "TurnLoop"
	case StateActionLoop:
		return "ActionLoop"
	case StateClosed:
		return "Closed"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// GameStarted reports whether the handshake has completed in this state.
func (s State) GameStarted() bool {
	return s == StateTurnLoop || s == StateActionLoop
}
