package types

import "fmt"

type ActionKind string

const (
	ActionKindEndTurn        ActionKind = "end_turn"
	ActionKindSummonFromHand ActionKind = "summon_creature_from_hand"
)

// ActionEvent is a move chosen by a player in response to WaitingForAction.
type ActionEvent struct {
	Kind     ActionKind              `json:"kind"`
	PlayerID PlayerID                `json:"player_id"`
	Summon   *SummonCreatureFromHand `json:"summon,omitempty"`
}

type SummonCreatureFromHand struct {
	CardID CardInstanceID `json:"card_id"`
	Pos    BoardPos       `json:"pos"`
}

func EndTurn(player PlayerID) ActionEvent {
	return ActionEvent{
		Kind:     ActionKindEndTurn,
		PlayerID: player,
	}
}

func SummonFromHand(player PlayerID, card CardInstanceID, pos BoardPos) ActionEvent {
	return ActionEvent{
		Kind:     ActionKindSummonFromHand,
		PlayerID: player,
		Summon: &SummonCreatureFromHand{
			CardID: card,
			Pos:    pos,
		},
	}
}

// IsEndTurn reports whether the action terminates the action loop of a turn.
func (a ActionEvent) IsEndTurn() bool {
	return a.Kind == ActionKindEndTurn
}

func (a ActionEvent) String() string {
	if a.Summon != nil {
		return fmt.Sprintf("%s(%s -> %s)", a.Kind, a.Summon.CardID, a.Summon.Pos)
	}
	return string(a.Kind)
}

func (a ActionEvent) Validate() error {
	if a.PlayerID.IsZero() {
		return fmt.Errorf("action %s has no player", a.Kind)
	}
	switch a.Kind {
	case ActionKindEndTurn:
		if a.Summon != nil {
			return fmt.Errorf("end turn action must not carry a summon")
		}
	case ActionKindSummonFromHand:
		if a.Summon == nil {
			return fmt.Errorf("summon action is missing its card and position")
		}
		if a.Summon.CardID.IsZero() {
			return fmt.Errorf("summon action has no card")
		}
		if err := a.Summon.Pos.Validate(); err != nil {
			return fmt.Errorf("invalid summon position: %w", err)
		}
	default:
		return fmt.Errorf("unknown action kind %q", a.Kind)
	}
	return nil
}
