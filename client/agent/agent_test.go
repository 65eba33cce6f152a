package agent_test

import (
	"context"
	"errors"
	"testing"

	"github.com/cbodonnell/saltclient/client/agent"
	mocks "github.com/cbodonnell/saltclient/mocks/github.com/cbodonnell/saltclient/client/agent"
	"github.com/cbodonnell/saltclient/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAnswerPrompt_DispatchesByKind(t *testing.T) {
	me := types.NewPlayerID()
	view := &types.GameStatePlayerView{PlayerID: me}
	pos := types.NewBoardPos(me, types.RowBack, 3)

	tests := []struct {
		kind  types.PromptKind
		setup func(p *mocks.Prompter)
	}{
		{types.PromptKindSlot, func(p *mocks.Prompter) { p.EXPECT().PromptSlot(mock.Anything, view).Return(pos, nil).Once() }},
		{types.PromptKindCreaturePos, func(p *mocks.Prompter) { p.EXPECT().PromptCreaturePos(mock.Anything, view).Return(pos, nil).Once() }},
		{types.PromptKindOpponentCreaturePos, func(p *mocks.Prompter) {
			p.EXPECT().PromptOpponentCreaturePos(mock.Anything, view).Return(pos, nil).Once()
		}},
		{types.PromptKindOpponentSlot, func(p *mocks.Prompter) { p.EXPECT().PromptOpponentSlot(mock.Anything, view).Return(pos, nil).Once() }},
		{types.PromptKindPlayerCreaturePos, func(p *mocks.Prompter) {
			p.EXPECT().PromptPlayerCreaturePos(mock.Anything, view).Return(pos, nil).Once()
		}},
		{types.PromptKindPlayerSlot, func(p *mocks.Prompter) { p.EXPECT().PromptPlayerSlot(mock.Anything, view).Return(pos, nil).Once() }},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			p := mocks.NewPrompter(t)
			tt.setup(p)

			answer, err := agent.AnswerPrompt(context.Background(), p, tt.kind, view)
			require.NoError(t, err)
			assert.Equal(t, types.NewPromptAnswer(tt.kind, pos), answer)
		})
	}
}

func TestAnswerPrompt_UnknownKind(t *testing.T) {
	p := mocks.NewPrompter(t)

	_, err := agent.AnswerPrompt(context.Background(), p, "graveyard", &types.GameStatePlayerView{})
	assert.ErrorIs(t, err, agent.ErrUnknownPromptKind)
}

func TestAnswerPrompt_PrompterError(t *testing.T) {
	p := mocks.NewPrompter(t)
	boom := errors.New("boom")
	p.EXPECT().PromptSlot(mock.Anything, mock.Anything).Return(types.BoardPos{}, boom).Once()

	_, err := agent.AnswerPrompt(context.Background(), p, types.PromptKindSlot, &types.GameStatePlayerView{})
	assert.ErrorIs(t, err, boom)
}

func TestMultiNotifier(t *testing.T) {
	event := types.TurnStartedEvent(types.NewPlayerID())
	boom := errors.New("boom")

	first := mocks.NewNotifier(t)
	first.EXPECT().Notify(mock.Anything, event).Return(boom).Once()
	second := mocks.NewNotifier(t)
	second.EXPECT().Notify(mock.Anything, event).Return(nil).Once()

	err := agent.MultiNotifier{first, nil, second}.Notify(context.Background(), event)
	assert.ErrorIs(t, err, boom)
}
