package types

type UnitCardInstancePlayerView struct {
	ID     CardInstanceID `json:"id"`
	Title  string         `json:"title"`
	Text   string         `json:"text,omitempty"`
	Cost   int            `json:"cost"`
	Attack int            `json:"attack"`
	Health int            `json:"health"`
}

// GameStatePlayerView is a read-only snapshot of the game as seen by one player.
// It is produced by the rules engine on the server and only ever forwarded here.
type GameStatePlayerView struct {
	PlayerID         PlayerID                     `json:"player_id"`
	OpponentID       PlayerID                     `json:"opponent_id"`
	CurrentPlayerID  PlayerID                     `json:"current_player_id"`
	Turn             int                          `json:"turn"`
	Mana             int                          `json:"mana"`
	ManaLimit        int                          `json:"mana_limit"`
	Hand             []UnitCardInstancePlayerView `json:"hand"`
	OpponentHandSize int                          `json:"opponent_hand_size"`
	Board            []BoardSlotView              `json:"board"`
}

func (v *GameStatePlayerView) IsMyTurn() bool {
	return v.CurrentPlayerID == v.PlayerID
}

// HandCard finds a card in the player's hand.
func (v *GameStatePlayerView) HandCard(id CardInstanceID) (UnitCardInstancePlayerView, bool) {
	for _, card := range v.Hand {
		if card.ID == id {
			return card, true
		}
	}
	return UnitCardInstancePlayerView{}, false
}

// Slot finds the slot at pos.
func (v *GameStatePlayerView) Slot(pos BoardPos) (BoardSlotView, bool) {
	for _, slot := range v.Board {
		if slot.Pos == pos {
			return slot, true
		}
	}
	return BoardSlotView{}, false
}

// Creatures returns the occupied slots of the board in board order.
func (v *GameStatePlayerView) Creatures() []BoardSlotView {
	var slots []BoardSlotView
	for _, slot := range v.Board {
		if !slot.Empty() {
			slots = append(slots, slot)
		}
	}
	return slots
}

// Clone returns a deep copy of the view.
func (v *GameStatePlayerView) Clone() *GameStatePlayerView {
	if v == nil {
		return nil
	}
	c := *v
	c.Hand = append([]UnitCardInstancePlayerView(nil), v.Hand...)
	if v.Board == nil {
		return &c
	}
	c.Board = make([]BoardSlotView, len(v.Board))
	for i, slot := range v.Board {
		c.Board[i] = slot
		if slot.Creature != nil {
			creature := *slot.Creature
			c.Board[i].Creature = &creature
		}
	}
	return &c
}
