package main

import (
	"bytes"
	"testing"

	"github.com/cbodonnell/saltclient/pkg/game/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintView_Turn(t *testing.T) {
	me := types.NewPlayerID()
	opp := types.NewPlayerID()

	tests := []struct {
		name    string
		current types.PlayerID
		want    string
	}{
		{name: "mine", current: me, want: "turn 3 (your turn), mana 2/4"},
		{name: "opponent's", current: opp, want: "turn 3 (opponent's turn), mana 2/4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			printView(buf, &types.GameStatePlayerView{
				PlayerID:        me,
				OpponentID:      opp,
				CurrentPlayerID: tt.current,
				Turn:            3,
				Mana:            2,
				ManaLimit:       4,
			})
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}
