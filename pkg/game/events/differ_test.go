package events

import (
	"testing"

	"github.com/cbodonnell/saltclient/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testView(me, opp types.PlayerID) *types.GameStatePlayerView {
	return &types.GameStatePlayerView{
		PlayerID:   me,
		OpponentID: opp,
		Mana:       3,
		ManaLimit:  3,
		Board: []types.BoardSlotView{
			{Pos: types.NewBoardPos(me, types.RowFront, 0)},
			{Pos: types.NewBoardPos(opp, types.RowFront, 0)},
		},
	}
}

func TestDiff(t *testing.T) {
	me := types.NewPlayerID()
	opp := types.NewPlayerID()
	card := types.UnitCardInstancePlayerView{ID: types.NewCardInstanceID(), Title: "Salt Golem", Cost: 2, Attack: 1, Health: 3}

	tests := []struct {
		name  string
		next  func(v *types.GameStatePlayerView)
		kinds []types.ClientEventKind
	}{
		{
			name:  "identical view",
			next:  func(v *types.GameStatePlayerView) {},
			kinds: nil,
		},
		{
			name:  "mana gained",
			next:  func(v *types.GameStatePlayerView) { v.Mana = 5 },
			kinds: []types.ClientEventKind{types.ClientEventManaGained},
		},
		{
			name:  "mana spent",
			next:  func(v *types.GameStatePlayerView) { v.Mana = 1 },
			kinds: []types.ClientEventKind{types.ClientEventManaSpent},
		},
		{
			name:  "card drawn",
			next:  func(v *types.GameStatePlayerView) { v.Hand = append(v.Hand, card) },
			kinds: []types.ClientEventKind{types.ClientEventCardAddedToHand},
		},
		{
			name: "creature summoned for mana",
			next: func(v *types.GameStatePlayerView) {
				v.Mana = 1
				c := card
				v.Board[0].Creature = &c
			},
			kinds: []types.ClientEventKind{types.ClientEventManaSpent, types.ClientEventCreatureSummoned},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := testView(me, opp)
			next := prev.Clone()
			tt.next(next)

			got := Diff(prev, next)

			var kinds []types.ClientEventKind
			for _, e := range got {
				kinds = append(kinds, e.Kind)
			}
			assert.Equal(t, tt.kinds, kinds)
		})
	}
}

func TestDiffAmounts(t *testing.T) {
	me := types.NewPlayerID()
	prev := testView(me, types.NewPlayerID())
	next := prev.Clone()
	next.Mana = 7

	got := Diff(prev, next)
	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].Amount)
	assert.Equal(t, me, got[0].PlayerID)
}

func TestDiffer_Observe(t *testing.T) {
	me := types.NewPlayerID()
	opp := types.NewPlayerID()
	d := NewDiffer()

	v0 := testView(me, opp)
	assert.Empty(t, d.Observe(v0), "first view has nothing to compare against")
	assert.Empty(t, d.Observe(v0), "replaying the same view yields no events")

	v1 := v0.Clone()
	c := types.UnitCardInstancePlayerView{ID: types.NewCardInstanceID(), Title: "Brine Imp"}
	v1.Board[1].Creature = &c
	got := d.Observe(v1)
	require.Len(t, got, 1)
	assert.Equal(t, types.ClientEventCreatureSummoned, got[0].Kind)
	assert.Equal(t, opp, got[0].PlayerID)
	assert.Equal(t, v1.Board[1].Pos, *got[0].Pos)

	// mutating the caller's view must not leak into the differ's copy
	v1.Mana = 0
	got = d.Observe(v1)
	require.Len(t, got, 1)
	assert.Equal(t, types.ClientEventManaSpent, got[0].Kind)
	assert.Equal(t, 3, got[0].Amount)
}
