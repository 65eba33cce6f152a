package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/cbodonnell/saltclient/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_Notify(t *testing.T) {
	producer := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	player := types.NewPlayerID()
	event := types.ClientEventView{Kind: types.ClientEventManaGained, PlayerID: player, Amount: 2}

	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		assert.Equal(t, "game-events", msg.Topic)

		key, err := msg.Key.Encode()
		require.NoError(t, err)
		assert.Equal(t, player.String(), string(key))

		value, err := msg.Value.Encode()
		require.NoError(t, err)
		var got GameEvent
		require.NoError(t, json.Unmarshal(value, &got))
		assert.Equal(t, "session-1", got.SessionID)
		assert.Equal(t, event, got.Event)
		assert.True(t, got.Timestamp.Equal(time.Unix(100, 0)))
		return nil
	})

	p := NewPublisherWithProducer(producer, "game-events", "session-1")
	p.now = func() time.Time { return time.Unix(100, 0) }

	require.NoError(t, p.Notify(context.Background(), event))
	require.NoError(t, p.Close())
}

func TestPublisher_NotifyFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewPublisherWithProducer(producer, "game-events", "session-1")
	err := p.Notify(context.Background(), types.TurnStartedEvent(types.NewPlayerID()))

	assert.True(t, errors.Is(err, sarama.ErrOutOfBrokers))
	require.NoError(t, p.Close())
}

func TestPublisher_NotifyCancelled(t *testing.T) {
	producer := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	p := NewPublisherWithProducer(producer, "game-events", "session-1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, p.Notify(ctx, types.TurnEndedEvent(types.NewPlayerID())), context.Canceled)
	require.NoError(t, p.Close())
}
