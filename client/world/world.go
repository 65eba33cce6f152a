// Package world is the frame loop's model of a session. It is fed only by
// the bus and never blocks.
package world

import (
	"errors"
	"fmt"

	"github.com/cbodonnell/saltclient/client/agent"
	"github.com/cbodonnell/saltclient/pkg/bus"
	"github.com/cbodonnell/saltclient/pkg/game/types"
	"github.com/cbodonnell/saltclient/pkg/log"
)

const (
	DefaultMaxMessagesPerTick = 32
	// MaxEventLog is the number of recent client events kept for display.
	MaxEventLog = 64
)

var (
	ErrNotAwaitingAction = errors.New("not awaiting an action")
	ErrNoPendingPrompt   = errors.New("no pending prompt")
	ErrSessionEnded      = errors.New("session ended")
	ErrCardNotInHand     = errors.New("card is not in hand")
	ErrSlotNotAccepted   = errors.New("slot does not answer the prompt")
)

type Prompt struct {
	Kind types.PromptKind
	View *types.GameStatePlayerView
}

type World struct {
	consumer       *agent.ConsumerEndpoint
	maxPerTick     int
	playerID       types.PlayerID
	opponentID     types.PlayerID
	gameStarted    bool
	view           *types.GameStatePlayerView
	awaitingAction bool
	prompt         *Prompt
	events         []types.ClientEventView
	eventTotal     int
	ended          bool
	endErr         error
}

func NewWorld(consumer *agent.ConsumerEndpoint, maxPerTick int) *World {
	if maxPerTick <= 0 {
		maxPerTick = DefaultMaxMessagesPerTick
	}
	return &World{
		consumer:   consumer,
		maxPerTick: maxPerTick,
	}
}

// Update applies at most maxPerTick pending messages. It is called once per frame.
func (w *World) Update() error {
	if w.ended {
		return nil
	}

	msgs, err := w.consumer.Drain(w.maxPerTick)
	if err != nil {
		if errors.Is(err, bus.ErrDisconnected) {
			log.Debug("Bus closed without an end of session")
			w.end(nil)
			return nil
		}
		return fmt.Errorf("failed to read bus messages: %w", err)
	}

	for _, msg := range msgs {
		w.processMessage(msg)
	}
	return nil
}

func (w *World) processMessage(msg agent.ToConsumer) {
	switch m := msg.(type) {
	case agent.PlayerIDSet:
		w.playerID = m.PlayerID
	case agent.GameStarted:
		w.opponentID = m.OpponentID
		w.gameStarted = true
	case agent.StateUpdate:
		w.view = m.View
	case agent.TurnStarted:
		w.view = m.View
	case agent.ActionRequested:
		w.view = m.View
		w.awaitingAction = true
	case agent.PromptRequested:
		w.view = m.View
		w.prompt = &Prompt{Kind: m.Kind, View: m.View}
	case agent.ClientEvent:
		w.events = append(w.events, m.Event)
		w.eventTotal++
		if over := len(w.events) - MaxEventLog; over > 0 {
			w.events = append(w.events[:0], w.events[over:]...)
		}
	case agent.SessionEnded:
		w.end(m.Err)
	default:
		log.Warn("Unhandled bus message %T", msg)
	}
}

func (w *World) end(err error) {
	w.ended = true
	w.endErr = err
	w.awaitingAction = false
	w.prompt = nil
	if err != nil {
		log.Error("Session ended: %v", err)
	} else {
		log.Info("Session ended")
	}
}

func (w *World) PlayerID() types.PlayerID {
	return w.playerID
}

func (w *World) OpponentID() types.PlayerID {
	return w.opponentID
}

func (w *World) GameStarted() bool {
	return w.gameStarted
}

// View is the latest state snapshot, or nil before the first one.
func (w *World) View() *types.GameStatePlayerView {
	return w.view
}

func (w *World) AwaitingAction() bool {
	return w.awaitingAction
}

func (w *World) PendingPrompt() (Prompt, bool) {
	if w.prompt == nil {
		return Prompt{}, false
	}
	return *w.prompt, true
}

// Events returns the recent client events, oldest first.
func (w *World) Events() []types.ClientEventView {
	return append([]types.ClientEventView(nil), w.events...)
}

// EventCount is the number of client events received so far, including those dropped from the log.
func (w *World) EventCount() int {
	return w.eventTotal
}

func (w *World) Ended() bool {
	return w.ended
}

// Err is the reason the session ended, or nil for an orderly end.
func (w *World) Err() error {
	return w.endErr
}

func (w *World) EndTurn() error {
	if err := w.checkAction(); err != nil {
		return err
	}
	if err := w.send(agent.EndTurnRequest{}); err != nil {
		return err
	}
	w.awaitingAction = false
	return nil
}

func (w *World) SummonFromHand(card types.CardInstanceID, pos types.BoardPos) error {
	if err := w.checkAction(); err != nil {
		return err
	}
	if _, ok := w.view.HandCard(card); !ok {
		return fmt.Errorf("%w: %s", ErrCardNotInHand, card)
	}
	if err := pos.Validate(); err != nil {
		return err
	}
	if err := w.send(agent.SummonFromHandRequest{CardID: card, Pos: pos}); err != nil {
		return err
	}
	w.awaitingAction = false
	return nil
}

func (w *World) SelectSlot(pos types.BoardPos) error {
	if w.ended {
		return ErrSessionEnded
	}
	if w.prompt == nil {
		return ErrNoPendingPrompt
	}
	slot, ok := w.prompt.View.Slot(pos)
	if !ok || !w.prompt.Kind.Accepts(w.playerID, slot) {
		return fmt.Errorf("%w: %s for %s", ErrSlotNotAccepted, pos, w.prompt.Kind)
	}
	if err := w.send(agent.SlotSelected{Pos: pos}); err != nil {
		return err
	}
	w.prompt = nil
	return nil
}

func (w *World) checkAction() error {
	if w.ended {
		return ErrSessionEnded
	}
	if !w.awaitingAction || w.view == nil {
		return ErrNotAwaitingAction
	}
	return nil
}

func (w *World) send(msg agent.FromConsumer) error {
	if err := w.consumer.Send(msg); err != nil {
		if errors.Is(err, bus.ErrDisconnected) {
			w.end(nil)
			return ErrSessionEnded
		}
		return fmt.Errorf("failed to send intent: %w", err)
	}
	return nil
}
