package types

import "fmt"

// PromptKind is the closed set of sub-requests the server can issue mid-turn.
type PromptKind string

const (
	PromptKindSlot                PromptKind = "slot"
	PromptKindCreaturePos         PromptKind = "creature_pos"
	PromptKindOpponentCreaturePos PromptKind = "opponent_creature_pos"
	PromptKindOpponentSlot        PromptKind = "opponent_slot"
	PromptKindPlayerCreaturePos   PromptKind = "player_creature_pos"
	PromptKindPlayerSlot          PromptKind = "player_slot"
)

// PromptKinds lists every prompt kind in declaration order.
func PromptKinds() []PromptKind {
	return []PromptKind{
		PromptKindSlot,
		PromptKindCreaturePos,
		PromptKindOpponentCreaturePos,
		PromptKindOpponentSlot,
		PromptKindPlayerCreaturePos,
		PromptKindPlayerSlot,
	}
}

func (k PromptKind) Valid() bool {
	for _, kind := range PromptKinds() {
		if k == kind {
			return true
		}
	}
	return false
}

// WantsCreature reports whether the answer must point at an occupied slot.
func (k PromptKind) WantsCreature() bool {
	switch k {
	case PromptKindCreaturePos, PromptKindOpponentCreaturePos, PromptKindPlayerCreaturePos:
		return true
	default:
		return false
	}
}

// Accepts reports whether slot is a legal answer to a prompt of this kind
// for the player me.
func (k PromptKind) Accepts(me PlayerID, slot BoardSlotView) bool {
	if !k.Valid() || slot.Empty() == k.WantsCreature() {
		return false
	}
	switch k {
	case PromptKindOpponentCreaturePos, PromptKindOpponentSlot:
		return slot.Pos.PlayerID != me
	case PromptKindPlayerCreaturePos, PromptKindPlayerSlot:
		return slot.Pos.PlayerID == me
	default:
		return true
	}
}

// PromptAnswer is the response to a Prompt. Kind always matches the prompt it answers.
type PromptAnswer struct {
	Kind PromptKind `json:"kind"`
	Pos  BoardPos   `json:"pos"`
}

func NewPromptAnswer(kind PromptKind, pos BoardPos) PromptAnswer {
	return PromptAnswer{
		Kind: kind,
		Pos:  pos,
	}
}

func (a PromptAnswer) Validate() error {
	if !a.Kind.Valid() {
		return fmt.Errorf("unknown prompt kind %q", a.Kind)
	}
	if err := a.Pos.Validate(); err != nil {
		return fmt.Errorf("invalid %s answer: %w", a.Kind, err)
	}
	return nil
}
