package types

import "fmt"

type ClientEventKind string

const (
	ClientEventManaGained       ClientEventKind = "mana_gained"
	ClientEventManaSpent        ClientEventKind = "mana_spent"
	ClientEventTurnStarted      ClientEventKind = "turn_started"
	ClientEventTurnEnded        ClientEventKind = "turn_ended"
	ClientEventCreatureSummoned ClientEventKind = "creature_summoned"
	ClientEventCardAddedToHand  ClientEventKind = "card_added_to_hand"
)

// ClientEventView is an out-of-band notification pushed outside the request/response cycle.
type ClientEventView struct {
	Kind     ClientEventKind             `json:"kind"`
	PlayerID PlayerID                    `json:"player_id"`
	Amount   int                         `json:"amount,omitempty"`
	Card     *UnitCardInstancePlayerView `json:"card,omitempty"`
	Pos      *BoardPos                   `json:"pos,omitempty"`
}

func (e ClientEventView) String() string {
	switch e.Kind {
	case ClientEventManaGained, ClientEventManaSpent:
		return fmt.Sprintf("%s(%d)", e.Kind, e.Amount)
	case ClientEventCreatureSummoned:
		if e.Card != nil && e.Pos != nil {
			return fmt.Sprintf("%s(%s at %s)", e.Kind, e.Card.Title, e.Pos)
		}
	case ClientEventCardAddedToHand:
		if e.Card != nil {
			return fmt.Sprintf("%s(%s)", e.Kind, e.Card.Title)
		}
	}
	return string(e.Kind)
}

func TurnStartedEvent(player PlayerID) ClientEventView {
	return ClientEventView{Kind: ClientEventTurnStarted, PlayerID: player}
}

func TurnEndedEvent(player PlayerID) ClientEventView {
	return ClientEventView{Kind: ClientEventTurnEnded, PlayerID: player}
}
