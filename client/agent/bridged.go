package agent

import (
	"context"
	"fmt"

	"github.com/cbodonnell/saltclient/pkg/game/types"
	"github.com/cbodonnell/saltclient/pkg/log"
)

var _ Agent = &BusAgent{}

// BusAgent delegates every decision to the consumer on the other side of the bus.
// Outbound notifications never block; decisions wait on the bus until the consumer
// answers or disconnects.
type BusAgent struct {
	id       types.PlayerID
	endpoint *NetworkEndpoint
}

// NewBusAgent announces the player id to the consumer and returns the agent.
func NewBusAgent(id types.PlayerID, endpoint *NetworkEndpoint) (*BusAgent, error) {
	if err := endpoint.Send(PlayerIDSet{PlayerID: id}); err != nil {
		return nil, fmt.Errorf("failed to send player id: %w", err)
	}
	return &BusAgent{
		id:       id,
		endpoint: endpoint,
	}, nil
}

// BusAgentFactory returns a Factory that binds new agents to endpoint.
func BusAgentFactory(endpoint *NetworkEndpoint) Factory {
	return func(ctx context.Context, id types.PlayerID) (Agent, error) {
		return NewBusAgent(id, endpoint)
	}
}

func (a *BusAgent) ID() types.PlayerID {
	return a.id
}

func (a *BusAgent) OnGameStart(ctx context.Context, opponent types.PlayerID) error {
	return a.endpoint.Send(GameStarted{OpponentID: opponent})
}

func (a *BusAgent) ObserveStateUpdate(ctx context.Context, view *types.GameStatePlayerView) error {
	return a.endpoint.Send(StateUpdate{View: view.Clone()})
}

func (a *BusAgent) OnTurnStart(ctx context.Context, view *types.GameStatePlayerView) error {
	return a.endpoint.Send(TurnStarted{View: view.Clone()})
}

// NextAction asks the consumer for an action and waits for an EndTurnRequest or
// SummonFromHandRequest. Other intents are logged and dropped.
func (a *BusAgent) NextAction(ctx context.Context, view *types.GameStatePlayerView) (types.ActionEvent, error) {
	if err := a.endpoint.Send(ActionRequested{View: view.Clone()}); err != nil {
		return types.ActionEvent{}, fmt.Errorf("failed to request action: %w", err)
	}

	log.Debug("Waiting for an action from the consumer")
	for {
		msg, err := a.endpoint.Recv(ctx)
		if err != nil {
			return types.ActionEvent{}, fmt.Errorf("failed to receive action: %w", err)
		}

		switch m := msg.(type) {
		case EndTurnRequest:
			return types.EndTurn(a.id), nil
		case SummonFromHandRequest:
			action := types.SummonFromHand(a.id, m.CardID, m.Pos)
			if err := action.Validate(); err != nil {
				log.Warn("Ignoring invalid summon request: %v", err)
				continue
			}
			return action, nil
		default:
			log.Warn("Ignoring %T while waiting for an action", msg)
		}
	}
}

func (a *BusAgent) MakePrompter(ctx context.Context) (Prompter, error) {
	return &busPrompter{endpoint: a.endpoint}, nil
}

func (a *BusAgent) MakeNotifier(ctx context.Context) (Notifier, error) {
	return NewBusNotifier(a.endpoint), nil
}

type busPrompter struct {
	endpoint *NetworkEndpoint
}

func (p *busPrompter) prompt(ctx context.Context, kind types.PromptKind, view *types.GameStatePlayerView) (types.BoardPos, error) {
	if err := p.endpoint.Send(PromptRequested{Kind: kind, View: view.Clone()}); err != nil {
		return types.BoardPos{}, fmt.Errorf("failed to request %s: %w", kind, err)
	}

	log.Debug("Waiting for a %s selection from the consumer", kind)
	for {
		msg, err := p.endpoint.Recv(ctx)
		if err != nil {
			return types.BoardPos{}, fmt.Errorf("failed to receive %s: %w", kind, err)
		}

		selected, ok := msg.(SlotSelected)
		if !ok {
			log.Warn("Ignoring %T while waiting for a %s selection", msg, kind)
			continue
		}
		if err := selected.Pos.Validate(); err != nil {
			log.Warn("Ignoring invalid %s selection: %v", kind, err)
			continue
		}
		return selected.Pos, nil
	}
}

func (p *busPrompter) PromptSlot(ctx context.Context, view *types.GameStatePlayerView) (types.BoardPos, error) {
	return p.prompt(ctx, types.PromptKindSlot, view)
}

func (p *busPrompter) PromptCreaturePos(ctx context.Context, view *types.GameStatePlayerView) (types.BoardPos, error) {
	return p.prompt(ctx, types.PromptKindCreaturePos, view)
}

func (p *busPrompter) PromptOpponentCreaturePos(ctx context.Context, view *types.GameStatePlayerView) (types.BoardPos, error) {
	return p.prompt(ctx, types.PromptKindOpponentCreaturePos, view)
}

func (p *busPrompter) PromptOpponentSlot(ctx context.Context, view *types.GameStatePlayerView) (types.BoardPos, error) {
	return p.prompt(ctx, types.PromptKindOpponentSlot, view)
}

func (p *busPrompter) PromptPlayerCreaturePos(ctx context.Context, view *types.GameStatePlayerView) (types.BoardPos, error) {
	return p.prompt(ctx, types.PromptKindPlayerCreaturePos, view)
}

func (p *busPrompter) PromptPlayerSlot(ctx context.Context, view *types.GameStatePlayerView) (types.BoardPos, error) {
	return p.prompt(ctx, types.PromptKindPlayerSlot, view)
}

// BusNotifier forwards events to the consumer as ClientEvent messages.
type BusNotifier struct {
	endpoint *NetworkEndpoint
}

func NewBusNotifier(endpoint *NetworkEndpoint) *BusNotifier {
	return &BusNotifier{
		endpoint: endpoint,
	}
}

func (n *BusNotifier) Notify(ctx context.Context, event types.ClientEventView) error {
	return n.endpoint.Send(ClientEvent{Event: event})
}
