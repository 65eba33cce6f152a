// Package session owns the network goroutine of one game session and the bus
// it shares with the frame loop.
package session

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cbodonnell/saltclient/client/agent"
	"github.com/cbodonnell/saltclient/client/driver"
	"github.com/cbodonnell/saltclient/client/network"
	"github.com/cbodonnell/saltclient/pkg/bus"
	"github.com/cbodonnell/saltclient/pkg/log"
	"github.com/cbodonnell/saltclient/pkg/repositories"
	"github.com/cbodonnell/saltclient/pkg/repositories/models"
	"github.com/google/uuid"
)

type AgentMode string

const (
	// AgentModeBus bridges decisions to the frame loop over the bus.
	AgentModeBus AgentMode = "bus"
	// AgentModeAuto decides locally. The frame loop still receives events and the end of the session.
	AgentModeAuto AgentMode = "auto"
)

var ErrAlreadyStarted = errors.New("session already started")

type NewSessionOptions struct {
	// ID names the session in transcripts and analytics. A random id is used when nil.
	ID     uuid.UUID
	Dial   network.DialOptions
	Dialer network.Dialer
	Driver driver.Config
	Agent  AgentMode
	Bus    agent.BusOptions
	// Transcripts records every envelope when set.
	Transcripts repositories.Repository
	// EventSinks receive every client event, e.g. an analytics publisher.
	EventSinks []agent.Notifier
}

// Session represents a session.
type Session struct {
	id         uuid.UUID
	opts       NewSessionOptions
	network    *agent.NetworkEndpoint
	consumer   *agent.ConsumerEndpoint
	runLock    sync.Mutex
	cancel     context.CancelFunc
	waitGroup  sync.WaitGroup
	stopped    atomic.Bool
	done       chan struct{}
	connLock   sync.Mutex
	conn       network.Connection
	driverLock sync.Mutex
	driver     *driver.Driver
	errLock    sync.Mutex
	err        error
}

func NewSession(opts NewSessionOptions) *Session {
	if opts.Dialer == nil {
		opts.Dialer = network.DefaultDialer
	}
	if opts.Agent == "" {
		opts.Agent = AgentModeBus
	}
	if opts.ID == uuid.Nil {
		opts.ID = uuid.New()
	}
	networkEndpoint, consumerEndpoint := agent.NewBus(opts.Bus)
	return &Session{
		id:       opts.ID,
		opts:     opts,
		network:  networkEndpoint,
		consumer: consumerEndpoint,
		done:     make(chan struct{}),
	}
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

// Consumer is the frame loop's end of the bus.
func (s *Session) Consumer() *agent.ConsumerEndpoint {
	return s.consumer
}

// Notifier pushes client events to the frame loop.
func (s *Session) Notifier() agent.Notifier {
	return agent.NewBusNotifier(s.network)
}

// Done is closed once the network goroutine has finished.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Err is the reason the session ended. It is nil while running and after an orderly end.
func (s *Session) Err() error {
	s.errLock.Lock()
	defer s.errLock.Unlock()
	return s.err
}

// State is the protocol state, or StateAwaitHello before the connection is up.
func (s *Session) State() driver.State {
	s.driverLock.Lock()
	defer s.driverLock.Unlock()
	if s.driver == nil {
		if s.isDone() {
			return driver.StateClosed
		}
		return driver.StateAwaitHello
	}
	return s.driver.State()
}

func (s *Session) isDone() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Start runs the session on its own goroutine. It returns once the goroutine is started;
// connection failures are reported through Err and a SessionEnded message.
func (s *Session) Start() error {
	s.runLock.Lock()
	defer s.runLock.Unlock()
	if s.cancel != nil {
		return ErrAlreadyStarted
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.waitGroup.Add(1)
	go func(ctx context.Context) {
		defer s.waitGroup.Done()
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		s.finish(s.run(ctx))
	}(ctx)

	return nil
}

func (s *Session) run(ctx context.Context) error {
	var recorder network.Recorder
	if s.opts.Transcripts != nil {
		err := s.opts.Transcripts.CreateSession(ctx, &models.Session{
			ID:         s.id,
			ServerAddr: s.opts.Dial.Addr,
			StartedAt:  time.Now().UnixMilli(),
		})
		if err != nil {
			log.Warn("Failed to create transcript, continuing without one: %v", err)
		} else {
			recorder = NewTranscriptRecorder(s.opts.Transcripts, s.id)
		}
	}

	dialOpts := s.opts.Dial
	if dialOpts.Recorder == nil && recorder != nil {
		dialOpts.Recorder = recorder
	}
	conn, err := s.opts.Dialer(ctx, dialOpts)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &driver.ConnectionError{Op: "dial", Err: err}
	}
	s.connLock.Lock()
	s.conn = conn
	s.connLock.Unlock()
	defer s.closeConn()
	log.Info("Connected to %s", dialOpts.Addr)

	d := driver.NewDriver(driver.NewDriverOptions{
		Connection:   conn,
		AgentFactory: s.agentFactory(),
		Config:       s.opts.Driver,
		EventSinks:   s.sinks(),
	})
	s.driverLock.Lock()
	s.driver = d
	s.driverLock.Unlock()

	return d.Run(ctx)
}

func (s *Session) agentFactory() agent.Factory {
	if s.opts.Agent == AgentModeAuto {
		return agent.AutoAgentFactory
	}
	return agent.BusAgentFactory(s.network)
}

func (s *Session) sinks() []agent.Notifier {
	sinks := append([]agent.Notifier{}, s.opts.EventSinks...)
	if s.opts.Agent == AgentModeAuto {
		sinks = append(sinks, s.Notifier())
	}
	return sinks
}

// finish classifies the end of the session, tells the frame loop and releases the bus.
func (s *Session) finish(err error) {
	reported := err
	switch {
	case err == nil:
	case errors.Is(err, bus.ErrDisconnected):
		log.Info("Consumer disconnected, ending session")
		reported = nil
	case errors.Is(err, context.Canceled) && s.stopped.Load():
		reported = nil
	default:
		log.Error("Session ended: %v", err)
	}

	s.errLock.Lock()
	s.err = reported
	s.errLock.Unlock()

	if dropped := s.network.Dropped(); dropped > 0 {
		log.Warn("Dropped %d state updates the frame loop did not read in time", dropped)
	}
	// the end of the session is delivered even when the bus is full
	if sendErr := s.network.SendLast(agent.SessionEnded{Err: reported}); sendErr != nil {
		log.Debug("Failed to deliver end of session: %v", sendErr)
	}

	if s.opts.Transcripts != nil {
		s.endTranscript(reported)
	}

	close(s.done)
}

func (s *Session) endTranscript(reason error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var playerID string
	s.driverLock.Lock()
	if s.driver != nil && !s.driver.PlayerID().IsZero() {
		playerID = s.driver.PlayerID().String()
	}
	s.driverLock.Unlock()

	var msg string
	if reason != nil {
		msg = reason.Error()
	}
	if err := s.opts.Transcripts.EndSession(ctx, s.id, playerID, time.Now().UnixMilli(), msg); err != nil {
		if repositories.IsNotFound(err) {
			return
		}
		log.Warn("Failed to end transcript: %v", err)
	}
}

func (s *Session) closeConn() {
	s.connLock.Lock()
	defer s.connLock.Unlock()
	if s.conn == nil {
		return
	}
	if err := s.conn.Close(); err != nil {
		log.Debug("Failed to close connection: %v", err)
	}
}

// Stop cancels the session, closes its connection and waits for the network goroutine.
func (s *Session) Stop() error {
	s.runLock.Lock()
	cancel := s.cancel
	s.runLock.Unlock()
	if cancel == nil {
		log.Warn("Session not started")
		return nil
	}
	if !s.stopped.CompareAndSwap(false, true) {
		log.Warn("Session already stopped")
		return nil
	}
	cancel()
	s.closeConn()

	log.Debug("Waiting for session to stop")
	s.waitGroup.Wait()
	log.Debug("Session stopped")

	if err := s.Err(); err != nil {
		return fmt.Errorf("session ended with error: %w", err)
	}
	return nil
}
