package agent

import (
	"context"
	"fmt"

	"github.com/cbodonnell/saltclient/pkg/game/types"
	"github.com/cbodonnell/saltclient/pkg/log"
)

var _ Agent = &AutoAgent{}

// AutoAgent plays without a human: it always ends its turn and answers prompts
// with the first slot on the board that satisfies them.
type AutoAgent struct {
	id types.PlayerID
}

func NewAutoAgent(id types.PlayerID) *AutoAgent {
	return &AutoAgent{
		id: id,
	}
}

// AutoAgentFactory is a Factory producing AutoAgents.
func AutoAgentFactory(ctx context.Context, id types.PlayerID) (Agent, error) {
	return NewAutoAgent(id), nil
}

func (a *AutoAgent) ID() types.PlayerID {
	return a.id
}

func (a *AutoAgent) OnGameStart(ctx context.Context, opponent types.PlayerID) error {
	log.Info("Game started against %s", opponent)
	return nil
}

func (a *AutoAgent) ObserveStateUpdate(ctx context.Context, view *types.GameStatePlayerView) error {
	log.Debug("Observed state update: turn %d, mana %d/%d", view.Turn, view.Mana, view.ManaLimit)
	return nil
}

func (a *AutoAgent) OnTurnStart(ctx context.Context, view *types.GameStatePlayerView) error {
	log.Debug("Turn started")
	return nil
}

func (a *AutoAgent) NextAction(ctx context.Context, view *types.GameStatePlayerView) (types.ActionEvent, error) {
	return types.EndTurn(a.id), nil
}

func (a *AutoAgent) MakePrompter(ctx context.Context) (Prompter, error) {
	return &autoPrompter{id: a.id}, nil
}

func (a *AutoAgent) MakeNotifier(ctx context.Context) (Notifier, error) {
	return LogNotifier{}, nil
}

type autoPrompter struct {
	id types.PlayerID
}

func (p *autoPrompter) first(kind types.PromptKind, view *types.GameStatePlayerView) (types.BoardPos, error) {
	if view != nil {
		for _, slot := range view.Board {
			if kind.Accepts(p.id, slot) {
				return slot.Pos, nil
			}
		}
	}
	return types.BoardPos{}, fmt.Errorf("%w: %s", ErrNoCandidate, kind)
}

func (p *autoPrompter) PromptSlot(ctx context.Context, view *types.GameStatePlayerView) (types.BoardPos, error) {
	return p.first(types.PromptKindSlot, view)
}

func (p *autoPrompter) PromptCreaturePos(ctx context.Context, view *types.GameStatePlayerView) (types.BoardPos, error) {
	return p.first(types.PromptKindCreaturePos, view)
}

func (p *autoPrompter) PromptOpponentCreaturePos(ctx context.Context, view *types.GameStatePlayerView) (types.BoardPos, error) {
	return p.first(types.PromptKindOpponentCreaturePos, view)
}

func (p *autoPrompter) PromptOpponentSlot(ctx context.Context, view *types.GameStatePlayerView) (types.BoardPos, error) {
	return p.first(types.PromptKindOpponentSlot, view)
}

func (p *autoPrompter) PromptPlayerCreaturePos(ctx context.Context, view *types.GameStatePlayerView) (types.BoardPos, error) {
	return p.first(types.PromptKindPlayerCreaturePos, view)
}

func (p *autoPrompter) PromptPlayerSlot(ctx context.Context, view *types.GameStatePlayerView) (types.BoardPos, error) {
	return p.first(types.PromptKindPlayerSlot, view)
}

// LogNotifier writes every event to the default logger.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, event types.ClientEventView) error {
	log.Info("Client event for %s: %s", event.PlayerID, event)
	return nil
}
