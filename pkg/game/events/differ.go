// Package events derives out-of-band client events from consecutive state snapshots.
package events

import (
	"github.com/cbodonnell/saltclient/pkg/game/types"
)

// Differ remembers the last observed view and reports what changed since.
// It is not safe for concurrent use; the driver owns one per session.
type Differ struct {
	prev *types.GameStatePlayerView
}

func NewDiffer() *Differ {
	return &Differ{}
}

// Observe records view and returns the events that lead from the previous view to it.
// The first observed view produces no events.
func (d *Differ) Observe(view *types.GameStatePlayerView) []types.ClientEventView {
	if view == nil {
		return nil
	}
	prev := d.prev
	d.prev = view.Clone()
	if prev == nil {
		return nil
	}
	return Diff(prev, view)
}

// Diff compares two views of the same player. Events come out in a stable order:
// mana changes, then cards added to hand in hand order, then summoned creatures in board order.
func Diff(prev, next *types.GameStatePlayerView) []types.ClientEventView {
	if prev == nil || next == nil {
		return nil
	}

	var out []types.ClientEventView

	switch {
	case next.Mana > prev.Mana:
		out = append(out, types.ClientEventView{
			Kind:     types.ClientEventManaGained,
			PlayerID: next.PlayerID,
			Amount:   next.Mana - prev.Mana,
		})
	case next.Mana < prev.Mana:
		out = append(out, types.ClientEventView{
			Kind:     types.ClientEventManaSpent,
			PlayerID: next.PlayerID,
			Amount:   prev.Mana - next.Mana,
		})
	}

	inHand := make(map[types.CardInstanceID]struct{}, len(prev.Hand))
	for _, card := range prev.Hand {
		inHand[card.ID] = struct{}{}
	}
	for _, card := range next.Hand {
		if _, ok := inHand[card.ID]; ok {
			continue
		}
		card := card
		out = append(out, types.ClientEventView{
			Kind:     types.ClientEventCardAddedToHand,
			PlayerID: next.PlayerID,
			Card:     &card,
		})
	}

	for _, slot := range next.Board {
		if slot.Empty() {
			continue
		}
		before, ok := prev.Slot(slot.Pos)
		if ok && !before.Empty() && before.Creature.ID == slot.Creature.ID {
			continue
		}
		creature := *slot.Creature
		pos := slot.Pos
		out = append(out, types.ClientEventView{
			Kind:     types.ClientEventCreatureSummoned,
			PlayerID: slot.Pos.PlayerID,
			Card:     &creature,
			Pos:      &pos,
		})
	}

	return out
}
