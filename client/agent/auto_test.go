package agent

import (
	"context"
	"testing"

	"github.com/cbodonnell/saltclient/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoAgent_NextActionEndsTurn(t *testing.T) {
	me := types.NewPlayerID()
	a, err := AutoAgentFactory(context.Background(), me)
	require.NoError(t, err)
	assert.Equal(t, me, a.ID())

	action, err := a.NextAction(context.Background(), &types.GameStatePlayerView{PlayerID: me})
	require.NoError(t, err)
	assert.True(t, action.IsEndTurn())
	assert.Equal(t, me, action.PlayerID)
}

func TestAutoAgent_Prompter(t *testing.T) {
	me := types.NewPlayerID()
	opp := types.NewPlayerID()
	creature := &types.UnitCardInstancePlayerView{ID: types.NewCardInstanceID()}
	view := &types.GameStatePlayerView{
		PlayerID:   me,
		OpponentID: opp,
		Board: []types.BoardSlotView{
			{Pos: types.NewBoardPos(opp, types.RowFront, 0), Creature: creature},
			{Pos: types.NewBoardPos(opp, types.RowFront, 1)},
			{Pos: types.NewBoardPos(me, types.RowFront, 0), Creature: creature},
			{Pos: types.NewBoardPos(me, types.RowFront, 1)},
		},
	}

	p, err := NewAutoAgent(me).MakePrompter(context.Background())
	require.NoError(t, err)

	tests := []struct {
		kind types.PromptKind
		want types.BoardPos
	}{
		{types.PromptKindSlot, types.NewBoardPos(opp, types.RowFront, 1)},
		{types.PromptKindCreaturePos, types.NewBoardPos(opp, types.RowFront, 0)},
		{types.PromptKindOpponentCreaturePos, types.NewBoardPos(opp, types.RowFront, 0)},
		{types.PromptKindOpponentSlot, types.NewBoardPos(opp, types.RowFront, 1)},
		{types.PromptKindPlayerCreaturePos, types.NewBoardPos(me, types.RowFront, 0)},
		{types.PromptKindPlayerSlot, types.NewBoardPos(me, types.RowFront, 1)},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			answer, err := AnswerPrompt(context.Background(), p, tt.kind, view)
			require.NoError(t, err)
			assert.Equal(t, tt.want, answer.Pos)
			assert.Equal(t, tt.kind, answer.Kind)
		})
	}

	_, err = AnswerPrompt(context.Background(), p, types.PromptKindPlayerSlot, &types.GameStatePlayerView{PlayerID: me})
	assert.ErrorIs(t, err, ErrNoCandidate)
}
