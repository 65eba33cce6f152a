// Package agent defines the decision makers the protocol driver consults and
// the sinks it pushes out-of-band events into.
package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/cbodonnell/saltclient/pkg/game/types"
)

var (
	ErrUnknownPromptKind = errors.New("unknown prompt kind")
	ErrNoCandidate       = errors.New("no board slot satisfies the prompt")
)

// Agent chooses actions and answers prompts for one player.
// Every method is called from the network goroutine, one call at a time.
type Agent interface {
	ID() types.PlayerID
	OnGameStart(ctx context.Context, opponent types.PlayerID) error
	ObserveStateUpdate(ctx context.Context, view *types.GameStatePlayerView) error
	OnTurnStart(ctx context.Context, view *types.GameStatePlayerView) error
	NextAction(ctx context.Context, view *types.GameStatePlayerView) (types.ActionEvent, error)
	MakePrompter(ctx context.Context) (Prompter, error)
	MakeNotifier(ctx context.Context) (Notifier, error)
}

// Prompter answers the server's mid-turn sub-requests, one method per PromptKind.
type Prompter interface {
	PromptSlot(ctx context.Context, view *types.GameStatePlayerView) (types.BoardPos, error)
	PromptCreaturePos(ctx context.Context, view *types.GameStatePlayerView) (types.BoardPos, error)
	PromptOpponentCreaturePos(ctx context.Context, view *types.GameStatePlayerView) (types.BoardPos, error)
	PromptOpponentSlot(ctx context.Context, view *types.GameStatePlayerView) (types.BoardPos, error)
	PromptPlayerCreaturePos(ctx context.Context, view *types.GameStatePlayerView) (types.BoardPos, error)
	PromptPlayerSlot(ctx context.Context, view *types.GameStatePlayerView) (types.BoardPos, error)
}

// Notifier is a write-only sink for out-of-band game events.
type Notifier interface {
	Notify(ctx context.Context, event types.ClientEventView) error
}

// Factory builds the agent for a session once the server has assigned the player id.
type Factory func(ctx context.Context, id types.PlayerID) (Agent, error)

// AnswerPrompt dispatches a prompt to the matching Prompter method.
// There is no fallback: a kind outside the closed set is an error.
func AnswerPrompt(ctx context.Context, p Prompter, kind types.PromptKind, view *types.GameStatePlayerView) (types.PromptAnswer, error) {
	var prompt func(context.Context, *types.GameStatePlayerView) (types.BoardPos, error)
	switch kind {
	case types.PromptKindSlot:
		prompt = p.PromptSlot
	case types.PromptKindCreaturePos:
		prompt = p.PromptCreaturePos
	case types.PromptKindOpponentCreaturePos:
		prompt = p.PromptOpponentCreaturePos
	case types.PromptKindOpponentSlot:
		prompt = p.PromptOpponentSlot
	case types.PromptKindPlayerCreaturePos:
		prompt = p.PromptPlayerCreaturePos
	case types.PromptKindPlayerSlot:
		prompt = p.PromptPlayerSlot
	default:
		return types.PromptAnswer{}, fmt.Errorf("%w: %q", ErrUnknownPromptKind, kind)
	}

	pos, err := prompt(ctx, view)
	if err != nil {
		return types.PromptAnswer{}, fmt.Errorf("failed to answer %s prompt: %w", kind, err)
	}
	return types.NewPromptAnswer(kind, pos), nil
}

// MultiNotifier fans an event out to every sink. All sinks are tried; their errors are joined.
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(ctx context.Context, event types.ClientEventView) error {
	var errs []error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Notify(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
