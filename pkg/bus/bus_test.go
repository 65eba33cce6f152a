package bus

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cbodonnell/saltclient/pkg/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPair_FIFOPerDirection(t *testing.T) {
	network, consumer := NewPair[int, string]()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			assert.NoError(t, network.Send(i))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			assert.NoError(t, consumer.Send("intent"))
		}
	}()

	got := make([]int, 0, 500)
	for len(got) < 500 {
		msgs, err := consumer.Drain(7)
		require.NoError(t, err)
		got = append(got, msgs...)
	}
	wg.Wait()

	for i, v := range got {
		assert.Equal(t, i, v)
	}

	for i := 0; i < 500; i++ {
		msg, err := network.Recv(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "intent", msg)
	}
}

func TestEndpoint_RecvAfterPeerClose(t *testing.T) {
	network, consumer := NewPair[int, string]()
	require.NoError(t, consumer.Send("last words"))
	consumer.Close()

	msg, err := network.Recv(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "last words", msg)

	_, err = network.Recv(context.Background())
	assert.ErrorIs(t, err, ErrDisconnected)

	assert.ErrorIs(t, network.Send(1), ErrDisconnected)
}

func TestEndpoint_CloseWakesBlockedRecv(t *testing.T) {
	network, consumer := NewPair[int, string]()

	errCh := make(chan error, 1)
	go func() {
		_, err := network.Recv(context.Background())
		errCh <- err
	}()

	time.Sleep(10 * time.Millisecond)
	consumer.Close()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, ErrDisconnected)
	case <-time.After(time.Second):
		t.Fatal("recv did not observe the disconnect")
	}
}

func TestEndpoint_TryRecv(t *testing.T) {
	network, consumer := NewPair[int, string]()

	_, ok, err := consumer.TryRecv()
	assert.False(t, ok)
	assert.NoError(t, err)

	require.NoError(t, network.Send(3))
	assert.Equal(t, 1, consumer.Pending())
	v, ok, err := consumer.TryRecv()
	assert.True(t, ok)
	assert.NoError(t, err)
	assert.Equal(t, 3, v)

	network.Close()
	_, ok, err = consumer.TryRecv()
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrDisconnected)

	_, err = consumer.Drain(0)
	assert.ErrorIs(t, err, ErrDisconnected)
}

func TestPairWithOptions_Bounded(t *testing.T) {
	network, consumer := NewPairWithOptions(Options[int, string]{
		AtoB: queue.Options[int]{Capacity: 1, Overflow: queue.OverflowReject},
	})

	require.NoError(t, network.Send(1))
	assert.ErrorIs(t, network.Send(2), queue.ErrQueueFull)

	msgs, err := consumer.Drain(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, msgs)
}

func TestEndpoint_SendLastBypassesCapacity(t *testing.T) {
	network, consumer := NewPairWithOptions(Options[int, string]{
		AtoB: queue.Options[int]{Capacity: 1, Overflow: queue.OverflowReject},
	})

	require.NoError(t, network.Send(1))
	require.NoError(t, network.SendLast(-1))
	assert.ErrorIs(t, network.Send(2), ErrDisconnected)

	msgs, err := consumer.Drain(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, -1}, msgs)

	_, err = consumer.Drain(0)
	assert.ErrorIs(t, err, ErrDisconnected)
}

func TestEndpoint_Dropped(t *testing.T) {
	network, consumer := NewPairWithOptions(Options[int, string]{
		AtoB: queue.Options[int]{Capacity: 2, Overflow: queue.OverflowDropOldest},
	})

	for i := 1; i <= 4; i++ {
		require.NoError(t, network.Send(i))
	}
	assert.Equal(t, 2, network.Dropped())
	assert.Equal(t, 0, consumer.Dropped())

	msgs, err := consumer.Drain(0)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, msgs)
}
