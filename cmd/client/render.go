package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/cbodonnell/saltclient/client/world"
	"github.com/cbodonnell/saltclient/pkg/game/types"
)

// printer writes what changed in the world since the last frame.
type printer struct {
	out         io.Writer
	gameStarted bool
	events      int
	awaiting    bool
	prompting   bool
	ended       bool
}

func (p *printer) frame(w *world.World) {
	if w.GameStarted() && !p.gameStarted {
		p.gameStarted = true
		fmt.Fprintf(p.out, "game started: you are %s, opponent is %s\n", w.PlayerID(), w.OpponentID())
	}

	p.printEvents(w)

	if awaiting := w.AwaitingAction(); awaiting != p.awaiting {
		p.awaiting = awaiting
		if awaiting {
			printView(p.out, w.View())
			fmt.Fprintln(p.out, "your move: end | summon <card-id> <row> <index>")
		}
	}

	prompt, prompting := w.PendingPrompt()
	if prompting != p.prompting {
		p.prompting = prompting
		if prompting {
			fmt.Fprintf(p.out, "choose a slot for %s: slot [opp] <row> <index>\n", prompt.Kind)
		}
	}

	if w.Ended() && !p.ended {
		p.ended = true
		if err := w.Err(); err != nil {
			fmt.Fprintf(p.out, "session ended: %v\n", err)
		} else {
			fmt.Fprintln(p.out, "session ended")
		}
	}
}

// printEvents prints the events received since the last frame that are still in the log.
func (p *printer) printEvents(w *world.World) {
	events := w.Events()
	fresh := w.EventCount() - p.events
	if fresh > len(events) {
		fresh = len(events)
	}
	for _, e := range events[len(events)-fresh:] {
		fmt.Fprintf(p.out, "* %s\n", describeEvent(e))
	}
	p.events = w.EventCount()
}

func describeEvent(e types.ClientEventView) string {
	switch e.Kind {
	case types.ClientEventManaGained:
		return fmt.Sprintf("gained %d mana", e.Amount)
	case types.ClientEventManaSpent:
		return fmt.Sprintf("spent %d mana", e.Amount)
	case types.ClientEventCardAddedToHand:
		if e.Card != nil {
			return fmt.Sprintf("drew %s", e.Card.Title)
		}
	case types.ClientEventCreatureSummoned:
		if e.Card != nil && e.Pos != nil {
			return fmt.Sprintf("%s summoned at %s", e.Card.Title, e.Pos)
		}
	}
	return e.String()
}

func printView(out io.Writer, v *types.GameStatePlayerView) {
	if v == nil {
		return
	}
	whose := "opponent's turn"
	if v.IsMyTurn() {
		whose = "your turn"
	}
	fmt.Fprintf(out, "turn %d (%s), mana %d/%d, opponent holds %d cards\n", v.Turn, whose, v.Mana, v.ManaLimit, v.OpponentHandSize)
	fmt.Fprintln(out, "hand:")
	for _, c := range v.Hand {
		fmt.Fprintf(out, "  %s  %s (%d) %d/%d\n", c.ID, c.Title, c.Cost, c.Attack, c.Health)
	}
	fmt.Fprintln(out, "board:")
	for _, slot := range v.Board {
		side := "you"
		if slot.Pos.PlayerID != v.PlayerID {
			side = "opp"
		}
		occupant := "-"
		if !slot.Empty() {
			c := slot.Creature
			occupant = fmt.Sprintf("%s %d/%d", c.Title, c.Attack, c.Health)
		}
		fmt.Fprintf(out, "  %-3s %-5s %d  %s\n", side, slot.Pos.Row, slot.Pos.Index, strings.TrimSpace(occupant))
	}
}
