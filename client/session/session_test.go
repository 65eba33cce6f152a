package session

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/cbodonnell/saltclient/client/agent"
	"github.com/cbodonnell/saltclient/client/driver"
	"github.com/cbodonnell/saltclient/client/network"
	"github.com/cbodonnell/saltclient/client/network/networktest"
	"github.com/cbodonnell/saltclient/client/world"
	"github.com/cbodonnell/saltclient/pkg/bus"
	"github.com/cbodonnell/saltclient/pkg/game/types"
	"github.com/cbodonnell/saltclient/pkg/messages"
	"github.com/cbodonnell/saltclient/pkg/repositories"
	"github.com/cbodonnell/saltclient/pkg/repositories/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialerFor(conn network.Connection) network.Dialer {
	return func(ctx context.Context, opts network.DialOptions) (network.Connection, error) {
		return conn, nil
	}
}

func testView(me, opp types.PlayerID, mana int) *types.GameStatePlayerView {
	return &types.GameStatePlayerView{
		PlayerID:        me,
		OpponentID:      opp,
		CurrentPlayerID: me,
		Mana:            mana,
		ManaLimit:       mana,
		Board: []types.BoardSlotView{
			{Pos: types.NewBoardPos(me, types.RowFront, 0)},
		},
	}
}

func recv(t *testing.T, consumer *agent.ConsumerEndpoint) agent.ToConsumer {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	msg, err := consumer.Recv(ctx)
	require.NoError(t, err)
	return msg
}

// recvUntil skips messages until one of type T arrives.
func recvUntil[T agent.ToConsumer](t *testing.T, consumer *agent.ConsumerEndpoint) T {
	t.Helper()
	for {
		if m, ok := recv(t, consumer).(T); ok {
			return m
		}
	}
}

func waitDone(t *testing.T, s *Session) {
	t.Helper()
	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("session did not end")
	}
}

func TestSession_BridgedTurn(t *testing.T) {
	me := types.NewPlayerID()
	opp := types.NewPlayerID()
	v0 := testView(me, opp, 1)
	conn := networktest.NewConn(
		messages.Hello{PlayerID: me},
		messages.GameStart{OpponentID: opp},
		messages.State{View: v0},
		messages.TurnStart{},
		messages.WaitingForAction{View: v0},
	)

	s := NewSession(NewSessionOptions{Dialer: dialerFor(conn), Driver: driver.DefaultConfig()})
	require.NoError(t, s.Start())
	consumer := s.Consumer()

	assert.Equal(t, agent.PlayerIDSet{PlayerID: me}, recv(t, consumer))
	assert.Equal(t, agent.GameStarted{OpponentID: opp}, recv(t, consumer))
	assert.Equal(t, agent.StateUpdate{View: v0}, recv(t, consumer))
	assert.Equal(t, agent.ClientEvent{Event: types.TurnStartedEvent(me)}, recv(t, consumer))
	assert.Equal(t, agent.TurnStarted{View: v0}, recv(t, consumer))
	assert.Equal(t, agent.ActionRequested{View: v0}, recv(t, consumer))

	require.NoError(t, consumer.Send(agent.EndTurnRequest{}))
	conn.ExpectSent(t, messages.Ready{})
	conn.ExpectSent(t, messages.ClientAction{Action: types.EndTurn(me)})

	conn.ServerClose()
	ended := recvUntil[agent.SessionEnded](t, consumer)
	assert.NoError(t, ended.Err)

	waitDone(t, s)
	assert.NoError(t, s.Err())
	assert.Equal(t, driver.StateClosed, s.State())
	require.NoError(t, s.Stop())
}

func TestSession_DialFailure(t *testing.T) {
	dialErr := errors.New("connection refused")
	s := NewSession(NewSessionOptions{
		Dialer: func(ctx context.Context, opts network.DialOptions) (network.Connection, error) {
			return nil, dialErr
		},
	})
	require.NoError(t, s.Start())

	ended := recvUntil[agent.SessionEnded](t, s.Consumer())
	assert.ErrorIs(t, ended.Err, driver.ErrConnection)
	assert.ErrorIs(t, ended.Err, dialErr)

	waitDone(t, s)
	assert.ErrorIs(t, s.Err(), driver.ErrConnection)
	assert.Equal(t, driver.StateClosed, s.State())

	// the consumer drains the end of the session, then sees the bus closed
	_, err := s.Consumer().Recv(context.Background())
	assert.ErrorIs(t, err, bus.ErrDisconnected)

	assert.ErrorIs(t, s.Stop(), driver.ErrConnection)
}

func TestSession_StopWhileWaitingForServer(t *testing.T) {
	conn := networktest.NewConn()
	s := NewSession(NewSessionOptions{Dialer: dialerFor(conn)})
	require.NoError(t, s.Start())

	require.NoError(t, s.Stop())
	waitDone(t, s)
	assert.NoError(t, s.Err())

	select {
	case <-conn.Closed():
	default:
		t.Fatal("connection was not closed")
	}

	ended := recvUntil[agent.SessionEnded](t, s.Consumer())
	assert.NoError(t, ended.Err)
}

func TestSession_ConsumerDisconnectIsOrderly(t *testing.T) {
	me := types.NewPlayerID()
	opp := types.NewPlayerID()
	v0 := testView(me, opp, 0)
	conn := networktest.NewConn(
		messages.Hello{PlayerID: me},
		messages.GameStart{OpponentID: opp},
		messages.State{View: v0},
		messages.TurnStart{},
		messages.WaitingForAction{View: v0},
	)
	s := NewSession(NewSessionOptions{Dialer: dialerFor(conn)})
	require.NoError(t, s.Start())

	recvUntil[agent.ActionRequested](t, s.Consumer())
	s.Consumer().Close()

	waitDone(t, s)
	assert.NoError(t, s.Err())
}

func TestSession_ProtocolViolationIsReported(t *testing.T) {
	conn := networktest.NewConn(messages.TurnStart{})
	s := NewSession(NewSessionOptions{Dialer: dialerFor(conn)})
	require.NoError(t, s.Start())

	ended := recvUntil[agent.SessionEnded](t, s.Consumer())
	assert.ErrorIs(t, ended.Err, driver.ErrProtocolViolation)
	waitDone(t, s)
	assert.ErrorIs(t, s.Err(), driver.ErrProtocolViolation)
}

func TestSession_EndOfSessionReachesFullBus(t *testing.T) {
	me := types.NewPlayerID()
	opp := types.NewPlayerID()
	conn := networktest.NewConn(
		messages.Hello{PlayerID: me},
		messages.GameStart{OpponentID: opp},
		messages.State{View: testView(me, opp, 0)},
		messages.Prompt{Kind: types.PromptKindSlot, View: testView(me, opp, 0)},
	)
	s := NewSession(NewSessionOptions{
		Dialer: dialerFor(conn),
		Bus:    agent.BusOptions{ToConsumerCapacity: 2},
	})
	require.NoError(t, s.Start())
	waitDone(t, s)
	require.ErrorIs(t, s.Err(), driver.ErrProtocolViolation)

	// PlayerIDSet and GameStarted fill the queue; the state update is rejected
	w := world.NewWorld(s.Consumer(), 1)
	for i := 0; i < 10 && !w.Ended(); i++ {
		require.NoError(t, w.Update())
	}
	require.True(t, w.Ended())
	assert.Equal(t, opp, w.OpponentID())
	assert.ErrorIs(t, w.Err(), driver.ErrProtocolViolation)
}

func TestSession_ConcurrentStartStop(t *testing.T) {
	s := NewSession(NewSessionOptions{Dialer: dialerFor(networktest.NewConn())})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = s.Start()
	}()
	go func() {
		defer wg.Done()
		_ = s.Stop()
	}()
	wg.Wait()

	require.NoError(t, s.Stop())
	waitDone(t, s)
	assert.NoError(t, s.Err())
}

func TestSession_AutoAgentForwardsEvents(t *testing.T) {
	me := types.NewPlayerID()
	opp := types.NewPlayerID()
	v0 := testView(me, opp, 0)
	v1 := testView(me, opp, 2)
	conn := networktest.NewConn(
		messages.Hello{PlayerID: me},
		messages.GameStart{OpponentID: opp},
		messages.State{View: v0},
		messages.TurnStart{},
		messages.WaitingForAction{View: v1},
	)
	sink := &eventLog{}
	s := NewSession(NewSessionOptions{
		Dialer:     dialerFor(conn),
		Agent:      AgentModeAuto,
		EventSinks: []agent.Notifier{sink},
	})
	require.NoError(t, s.Start())

	conn.ExpectSent(t, messages.Ready{})
	conn.ExpectSent(t, messages.ClientAction{Action: types.EndTurn(me)})
	conn.ServerClose()
	waitDone(t, s)

	var kinds []types.ClientEventKind
	for {
		msg := recv(t, s.Consumer())
		if ended, ok := msg.(agent.SessionEnded); ok {
			assert.NoError(t, ended.Err)
			break
		}
		event, ok := msg.(agent.ClientEvent)
		require.True(t, ok, "unexpected %T in auto mode", msg)
		kinds = append(kinds, event.Event.Kind)
	}
	want := []types.ClientEventKind{types.ClientEventTurnStarted, types.ClientEventManaGained, types.ClientEventTurnEnded}
	assert.Equal(t, want, kinds)
	assert.Equal(t, want, sink.kinds)
}

func TestSession_StartTwice(t *testing.T) {
	s := NewSession(NewSessionOptions{Dialer: dialerFor(networktest.NewConn())})
	require.NoError(t, s.Start())
	assert.ErrorIs(t, s.Start(), ErrAlreadyStarted)
	require.NoError(t, s.Stop())
	assert.NoError(t, s.Stop())
}

func TestSession_StopBeforeStart(t *testing.T) {
	s := NewSession(NewSessionOptions{})
	assert.NoError(t, s.Stop())
	assert.Equal(t, driver.StateAwaitHello, s.State())
}

func TestSession_Transcript(t *testing.T) {
	ctx := context.Background()
	repo, err := repositories.NewRepository(ctx, "sqlite://"+filepath.Join(t.TempDir(), "t.db"), "../../migrations")
	require.NoError(t, err)
	defer repo.Close(ctx)

	me := types.NewPlayerID()
	conn := networktest.NewConn(messages.Hello{PlayerID: me})
	var recorder network.Recorder
	s := NewSession(NewSessionOptions{
		Dial: network.DialOptions{Addr: "ws://game.example:9000"},
		Dialer: func(ctx context.Context, opts network.DialOptions) (network.Connection, error) {
			recorder = opts.Recorder
			return conn, nil
		},
		Transcripts: repo,
	})
	require.NoError(t, s.Start())
	conn.ExpectSent(t, messages.Ready{})
	conn.ServerClose()
	waitDone(t, s)

	require.NotNil(t, recorder)
	assert.IsType(t, &TranscriptRecorder{}, recorder)

	stored, err := repo.GetSession(ctx, s.ID())
	require.NoError(t, err)
	assert.Equal(t, "ws://game.example:9000", stored.ServerAddr)
	assert.True(t, stored.Ended())
	assert.Equal(t, me.String(), stored.PlayerID)
	assert.Contains(t, stored.EndReason, "connection closed before the game started")
}

func TestTranscriptRecorder(t *testing.T) {
	ctx := context.Background()
	repo, err := repositories.NewRepository(ctx, "sqlite://"+filepath.Join(t.TempDir(), "t.db"), "../../migrations")
	require.NoError(t, err)
	defer repo.Close(ctx)

	s := NewSession(NewSessionOptions{})
	require.NoError(t, repo.CreateSession(ctx, &models.Session{ID: s.ID(), ServerAddr: "ws://localhost:9000", StartedAt: 1}))

	r := NewTranscriptRecorder(repo, s.ID())
	r.now = func() time.Time { return time.UnixMilli(42) }

	hello, err := messages.NewMessage(1, messages.Hello{PlayerID: types.NewPlayerID()})
	require.NoError(t, err)
	ready, err := messages.NewMessage(1, messages.Ready{})
	require.NoError(t, err)
	require.NoError(t, r.Record(ctx, network.DirectionReceived, hello))
	require.NoError(t, r.Record(ctx, network.DirectionSent, ready))

	msgs, err := repo.ListMessages(ctx, s.ID())
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, 1, msgs[0].Ordinal)
	assert.Equal(t, string(network.DirectionReceived), msgs[0].Direction)
	assert.Equal(t, uint8(messages.MessageTypeServerHello), msgs[0].Type)
	assert.JSONEq(t, string(hello.Payload), string(msgs[0].Payload))
	assert.Equal(t, 2, msgs[1].Ordinal)
	assert.Equal(t, string(network.DirectionSent), msgs[1].Direction)
	assert.Equal(t, int64(42), msgs[1].RecordedAt)
}

type eventLog struct {
	kinds []types.ClientEventKind
}

func (l *eventLog) Notify(ctx context.Context, event types.ClientEventView) error {
	l.kinds = append(l.kinds, event.Kind)
	return nil
}
