// Package driver walks the client side of the game protocol:
// Hello, Ready, GameStart and the initial State, then the turn loop.
package driver

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cbodonnell/saltclient/client/agent"
	"github.com/cbodonnell/saltclient/client/network"
	"github.com/cbodonnell/saltclient/pkg/bus"
	"github.com/cbodonnell/saltclient/pkg/game/events"
	"github.com/cbodonnell/saltclient/pkg/game/types"
	"github.com/cbodonnell/saltclient/pkg/log"
	"github.com/cbodonnell/saltclient/pkg/messages"
)

const (
	DefaultHandshakeTimeout = 10 * time.Second
)

type Config struct {
	// HandshakeTimeout bounds each receive before the turn loop. Zero waits forever.
	HandshakeTimeout time.Duration
	// ReadTimeout bounds each receive in the turn and action loops. Zero waits forever.
	ReadTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		HandshakeTimeout: DefaultHandshakeTimeout,
	}
}

type NewDriverOptions struct {
	Connection   network.Connection
	AgentFactory agent.Factory
	Config       Config
	// EventSinks receive every client event next to the agent's own notifier.
	EventSinks []agent.Notifier
}

// Driver runs the protocol for one session. It is not reusable: a reconnect
// needs a new Connection and a new Driver.
type Driver struct {
	conn       network.Connection
	newAgent   agent.Factory
	config     Config
	sinks      []agent.Notifier
	state      atomic.Int32
	idLock     sync.RWMutex
	playerID   types.PlayerID
	opponentID types.PlayerID
	agent      agent.Agent
	prompter   agent.Prompter
	notifier   agent.Notifier
	differ     *events.Differ
	view       *types.GameStatePlayerView
}

func NewDriver(opts NewDriverOptions) *Driver {
	return &Driver{
		conn:     opts.Connection,
		newAgent: opts.AgentFactory,
		config:   opts.Config,
		sinks:    opts.EventSinks,
		differ:   events.NewDiffer(),
	}
}

func (d *Driver) State() State {
	return State(d.state.Load())
}

func (d *Driver) setState(s State) {
	prev := State(d.state.Swap(int32(s)))
	if prev != s {
		log.Trace("Driver state %s -> %s", prev, s)
	}
}

// PlayerID is the id assigned by Hello, or the zero id before it.
func (d *Driver) PlayerID() types.PlayerID {
	d.idLock.RLock()
	defer d.idLock.RUnlock()
	return d.playerID
}

// OpponentID is the id announced by GameStart, or the zero id before it.
func (d *Driver) OpponentID() types.PlayerID {
	d.idLock.RLock()
	defer d.idLock.RUnlock()
	return d.opponentID
}

// Run drives the protocol until the session ends. It returns nil when the
// server closes the connection inside the turn loop. Otherwise the error is a
// *ConnectionError, a *ProtocolViolationError, an agent failure (wrapping
// bus.ErrDisconnected when the consumer went away) or the context error.
func (d *Driver) Run(ctx context.Context) error {
	defer d.setState(StateClosed)

	if err := d.handshake(ctx); err != nil {
		return err
	}

	err := d.turnLoop(ctx)
	if errors.Is(err, errServerClosed) {
		log.Info("Server closed the connection")
		return nil
	}
	return err
}

// errServerClosed ends the loops after an orderly close once the game has started.
var errServerClosed = errors.New("server closed the connection")

func (d *Driver) handshake(ctx context.Context) error {
	d.setState(StateAwaitHello)
	msg, err := d.recv(ctx, "await hello", d.config.HandshakeTimeout)
	if err != nil {
		return err
	}
	hello, ok := msg.(messages.Hello)
	if !ok {
		return d.violation(msg)
	}
	d.idLock.Lock()
	d.playerID = hello.PlayerID
	d.idLock.Unlock()
	log.Info("Received my ID: %s", hello.PlayerID)

	d.setState(StateHandshaking)
	a, err := d.newAgent(ctx, hello.PlayerID)
	if err != nil {
		return fmt.Errorf("failed to create agent: %w", err)
	}
	d.agent = a
	if d.prompter, err = a.MakePrompter(ctx); err != nil {
		return fmt.Errorf("failed to create prompter: %w", err)
	}
	notifier, err := a.MakeNotifier(ctx)
	if err != nil {
		return fmt.Errorf("failed to create notifier: %w", err)
	}
	d.notifier = append(agent.MultiNotifier{notifier}, d.sinks...)

	if err := d.send(ctx, messages.Ready{}); err != nil {
		return err
	}

	d.setState(StateAwaitGameStart)
	msg, err = d.recv(ctx, "await game start", d.config.HandshakeTimeout)
	if err != nil {
		return err
	}
	start, ok := msg.(messages.GameStart)
	if !ok {
		return d.violation(msg)
	}
	d.idLock.Lock()
	d.opponentID = start.OpponentID
	d.idLock.Unlock()
	log.Info("Game started against %s", start.OpponentID)
	if err := d.soft("forward game start", a.OnGameStart(ctx, start.OpponentID)); err != nil {
		return err
	}

	d.setState(StateAwaitInitialState)
	msg, err = d.recv(ctx, "await initial state", d.config.HandshakeTimeout)
	if err != nil {
		return err
	}
	state, ok := msg.(messages.State)
	if !ok {
		return d.violation(msg)
	}
	return d.observe(ctx, state.View)
}

func (d *Driver) turnLoop(ctx context.Context) error {
	for {
		d.setState(StateTurnLoop)
		msg, err := d.recv(ctx, "turn loop", d.config.ReadTimeout)
		if err != nil {
			return err
		}

		switch m := msg.(type) {
		case messages.TurnStart:
			if err := d.notify(ctx, types.TurnStartedEvent(d.PlayerID())); err != nil {
				return err
			}
			if err := d.soft("forward turn start", d.agent.OnTurnStart(ctx, d.view)); err != nil {
				return err
			}
			if err := d.actionLoop(ctx); err != nil {
				return err
			}
		case messages.State:
			if err := d.observe(ctx, m.View); err != nil {
				return err
			}
		default:
			return d.violation(msg)
		}
	}
}

// actionLoop returns nil once the agent ends its turn.
func (d *Driver) actionLoop(ctx context.Context) error {
	d.setState(StateActionLoop)
	for {
		msg, err := d.recv(ctx, "action loop", d.config.ReadTimeout)
		if err != nil {
			return err
		}

		switch m := msg.(type) {
		case messages.WaitingForAction:
			d.track(ctx, m.View)
			action, err := d.agent.NextAction(ctx, m.View)
			if err != nil {
				return fmt.Errorf("failed to get next action: %w", err)
			}
			if err := action.Validate(); err != nil {
				return fmt.Errorf("agent chose an invalid action: %w", err)
			}
			log.Debug("Sending action %s", action)
			if err := d.send(ctx, messages.ClientAction{Action: action}); err != nil {
				return err
			}
			if action.IsEndTurn() {
				return d.notify(ctx, types.TurnEndedEvent(d.PlayerID()))
			}
		case messages.Prompt:
			d.track(ctx, m.View)
			answer, err := agent.AnswerPrompt(ctx, d.prompter, m.Kind, m.View)
			if err != nil {
				return err
			}
			if answer.Kind != m.Kind {
				return fmt.Errorf("prompter answered %s to a %s prompt", answer.Kind, m.Kind)
			}
			log.Debug("Answering %s prompt with %s", m.Kind, answer.Pos)
			if err := d.send(ctx, messages.PromptResponse{Answer: answer}); err != nil {
				return err
			}
		case messages.State:
			if err := d.observe(ctx, m.View); err != nil {
				return err
			}
		default:
			return d.violation(msg)
		}
	}
}

// observe forwards a State snapshot to the agent, then reports what changed.
func (d *Driver) observe(ctx context.Context, view *types.GameStatePlayerView) error {
	d.view = view
	if err := d.soft("forward state update", d.agent.ObserveStateUpdate(ctx, view)); err != nil {
		return err
	}
	for _, event := range d.differ.Observe(view) {
		if err := d.notify(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

// track keeps the latest view from a request so later diffs stay accurate.
func (d *Driver) track(ctx context.Context, view *types.GameStatePlayerView) {
	d.view = view
	for _, event := range d.differ.Observe(view) {
		if err := d.notify(ctx, event); err != nil {
			log.Warn("Failed to deliver %s: %v", event.Kind, err)
		}
	}
}

func (d *Driver) notify(ctx context.Context, event types.ClientEventView) error {
	return d.soft("notify "+string(event.Kind), d.notifier.Notify(ctx, event))
}

// soft logs a failed one-way delivery. Only a disconnected consumer ends the session.
func (d *Driver) soft(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, bus.ErrDisconnected) {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	log.Warn("Failed to %s: %v", op, err)
	return nil
}

func (d *Driver) recv(ctx context.Context, op string, timeout time.Duration) (messages.ServerMessage, error) {
	rctx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		rctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	msg, err := d.conn.Recv(rctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if network.IsClosedByServer(err) {
			if d.State().GameStarted() {
				return nil, errServerClosed
			}
			return nil, &ConnectionError{Op: op, Err: fmt.Errorf("%w: %w", ErrUnexpectedClose, err)}
		}
		return nil, &ConnectionError{Op: op, Err: err}
	}

	log.Debug("Received %s in %s", msg.Type(), d.State())
	return msg, nil
}

func (d *Driver) send(ctx context.Context, msg messages.ClientMessage) error {
	if err := d.conn.Send(ctx, msg); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &ConnectionError{Op: "send " + msg.Type().String(), Err: err}
	}
	return nil
}

func (d *Driver) violation(msg messages.ServerMessage) error {
	err := &ProtocolViolationError{State: d.State(), Got: msg.Type()}
	log.Error("%v", err)
	return err
}
