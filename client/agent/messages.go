package agent

import (
	"github.com/cbodonnell/saltclient/pkg/bus"
	"github.com/cbodonnell/saltclient/pkg/game/types"
	"github.com/cbodonnell/saltclient/pkg/queue"
)

// ToConsumer is a message from the network goroutine to the frame loop.
type ToConsumer interface {
	isToConsumer()
}

// FromConsumer is a player intent from the frame loop to the network goroutine.
type FromConsumer interface {
	isFromConsumer()
}

type PlayerIDSet struct {
	PlayerID types.PlayerID
}

type GameStarted struct {
	OpponentID types.PlayerID
}

type StateUpdate struct {
	View *types.GameStatePlayerView
}

type TurnStarted struct {
	View *types.GameStatePlayerView
}

// ActionRequested means the network side is blocked until an EndTurnRequest or SummonFromHandRequest arrives.
type ActionRequested struct {
	View *types.GameStatePlayerView
}

// PromptRequested means the network side is blocked until a SlotSelected arrives.
type PromptRequested struct {
	Kind types.PromptKind
	View *types.GameStatePlayerView
}

type ClientEvent struct {
	Event types.ClientEventView
}

// SessionEnded is the last message of a session. Err is nil for an orderly end.
type SessionEnded struct {
	Err error
}

func (PlayerIDSet) isToConsumer()     {}
func (GameStarted) isToConsumer()     {}
func (StateUpdate) isToConsumer()     {}
func (TurnStarted) isToConsumer()     {}
func (ActionRequested) isToConsumer() {}
func (PromptRequested) isToConsumer() {}
func (ClientEvent) isToConsumer()     {}
func (SessionEnded) isToConsumer()    {}

type EndTurnRequest struct{}

type SummonFromHandRequest struct {
	CardID types.CardInstanceID
	Pos    types.BoardPos
}

type SlotSelected struct {
	Pos types.BoardPos
}

func (EndTurnRequest) isFromConsumer()        {}
func (SummonFromHandRequest) isFromConsumer() {}
func (SlotSelected) isFromConsumer()          {}

// NetworkEndpoint is the bus side owned by the network goroutine.
type NetworkEndpoint = bus.Endpoint[ToConsumer, FromConsumer]

// ConsumerEndpoint is the bus side owned by the frame loop.
type ConsumerEndpoint = bus.Endpoint[FromConsumer, ToConsumer]

// IsStateSnapshot selects the messages a drop-oldest bus may evict:
// only the latest snapshot is meaningful, everything else must be delivered.
func IsStateSnapshot(m ToConsumer) bool {
	_, ok := m.(StateUpdate)
	return ok
}

type BusOptions struct {
	// ToConsumerCapacity bounds the network to consumer queue. Zero means unbounded.
	ToConsumerCapacity int
	// DropOldestState evicts the oldest queued StateUpdate when the queue is full
	// instead of rejecting the send.
	DropOldestState bool
}

// NewBus creates the endpoint pair for one session.
func NewBus(opts BusOptions) (*NetworkEndpoint, *ConsumerEndpoint) {
	toConsumer := queue.Options[ToConsumer]{
		Capacity: opts.ToConsumerCapacity,
		Overflow: queue.OverflowReject,
	}
	if opts.DropOldestState {
		toConsumer.Overflow = queue.OverflowDropOldest
		toConsumer.Evictable = IsStateSnapshot
	}
	return bus.NewPairWithOptions(bus.Options[ToConsumer, FromConsumer]{
		AtoB: toConsumer,
	})
}
