package types

import "fmt"

type RowID string

const (
	RowFront RowID = "front"
	RowBack  RowID = "back"
	RowHero  RowID = "hero"
)

func (r RowID) Valid() bool {
	switch r {
	case RowFront, RowBack, RowHero:
		return true
	default:
		return false
	}
}

func ParseRowID(s string) (RowID, error) {
	r := RowID(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown row: %s", s)
	}
	return r, nil
}

// BoardPos addresses a single slot on one player's side of the board.
type BoardPos struct {
	PlayerID PlayerID `json:"player_id"`
	Row      RowID    `json:"row"`
	Index    int      `json:"index"`
}

func NewBoardPos(player PlayerID, row RowID, index int) BoardPos {
	return BoardPos{
		PlayerID: player,
		Row:      row,
		Index:    index,
	}
}

func (p BoardPos) String() string {
	return fmt.Sprintf("%s/%s/%d", p.PlayerID, p.Row, p.Index)
}

func (p BoardPos) Validate() error {
	if p.PlayerID.IsZero() {
		return fmt.Errorf("board position has no player")
	}
	if !p.Row.Valid() {
		return fmt.Errorf("board position has unknown row %q", p.Row)
	}
	if p.Index < 0 {
		return fmt.Errorf("board position has negative index %d", p.Index)
	}
	return nil
}

// BoardSlotView is a slot as one player sees it. Creature is nil for an empty slot.
type BoardSlotView struct {
	Pos      BoardPos                    `json:"pos"`
	Creature *UnitCardInstancePlayerView `json:"creature,omitempty"`
}

func (s BoardSlotView) Empty() bool {
	return s.Creature == nil
}
