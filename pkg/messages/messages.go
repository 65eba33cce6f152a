package messages

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cbodonnell/saltclient/pkg/game/types"
)

const (
	// MaxMessageSize is the largest frame, compressed or not, either side accepts.
	MaxMessageSize = 1 << 20
)

var (
	ErrUnknownMessageType = errors.New("unknown message type")
	ErrInvalidPayload     = errors.New("invalid message payload")
)

type MessageType uint8

// Server to client
const (
	MessageTypeServerHello MessageType = iota + 1
	MessageTypeServerGameStart
	MessageTypeServerState
	MessageTypeServerTurnStart
	MessageTypeServerWaitingForAction
	MessageTypeServerPrompt
)

// Client to server
const (
	MessageTypeClientReady MessageType = iota + 101
	MessageTypeClientAction
	MessageTypeClientPromptResponse
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeServerHello:
		return "Hello"
	case MessageTypeServerGameStart:
		return "GameStart"
	case MessageTypeServerState:
		return "State"
	case MessageTypeServerTurnStart:
		return "TurnStart"
	case MessageTypeServerWaitingForAction:
		return "WaitingForAction"
	case MessageTypeServerPrompt:
		return "Prompt"
	case MessageTypeClientReady:
		return "Ready"
	case MessageTypeClientAction:
		return "ClientAction"
	case MessageTypeClientPromptResponse:
		return "PromptResponse"
	default:
		return fmt.Sprintf("MessageType(%d)", uint8(t))
	}
}

func (t MessageType) IsServer() bool {
	return t >= MessageTypeServerHello && t <= MessageTypeServerPrompt
}

func (t MessageType) IsClient() bool {
	return t >= MessageTypeClientReady && t <= MessageTypeClientPromptResponse
}

// ParseMessageType is the inverse of MessageType.String.
func ParseMessageType(s string) (MessageType, error) {
	for t := MessageTypeServerHello; t <= MessageTypeServerPrompt; t++ {
		if t.String() == s {
			return t, nil
		}
	}
	for t := MessageTypeClientReady; t <= MessageTypeClientPromptResponse; t++ {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownMessageType, s)
}

func (t MessageType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *MessageType) UnmarshalText(b []byte) error {
	parsed, err := ParseMessageType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Message is the envelope every frame carries. Payload is the JSON body of the variant named by Type.
type Message struct {
	Seq     uint64          `json:"seq"`
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload is implemented by every message variant.
type Payload interface {
	Type() MessageType
}

// ServerMessage is one of Hello, GameStart, State, TurnStart, WaitingForAction or Prompt.
type ServerMessage interface {
	Payload
	isServerMessage()
}

// ClientMessage is one of Ready, ClientAction or PromptResponse.
type ClientMessage interface {
	Payload
	isClientMessage()
}

type Hello struct {
	PlayerID types.PlayerID `json:"player_id"`
}

type GameStart struct {
	OpponentID types.PlayerID `json:"opponent_id"`
}

type State struct {
	View *types.GameStatePlayerView `json:"view"`
}

type TurnStart struct{}

type WaitingForAction struct {
	View *types.GameStatePlayerView `json:"view"`
}

type Prompt struct {
	Kind types.PromptKind           `json:"kind"`
	View *types.GameStatePlayerView `json:"view"`
}

type Ready struct{}

type ClientAction struct {
	Action types.ActionEvent `json:"action"`
}

type PromptResponse struct {
	Answer types.PromptAnswer `json:"answer"`
}

func (Hello) Type() MessageType            { return MessageTypeServerHello }
func (GameStart) Type() MessageType        { return MessageTypeServerGameStart }
func (State) Type() MessageType            { return MessageTypeServerState }
func (TurnStart) Type() MessageType        { return MessageTypeServerTurnStart }
func (WaitingForAction) Type() MessageType { return MessageTypeServerWaitingForAction }
func (Prompt) Type() MessageType           { return MessageTypeServerPrompt }
func (Ready) Type() MessageType            { return MessageTypeClientReady }
func (ClientAction) Type() MessageType     { return MessageTypeClientAction }
func (PromptResponse) Type() MessageType   { return MessageTypeClientPromptResponse }

func (Hello) isServerMessage()            {}
func (GameStart) isServerMessage()        {}
func (State) isServerMessage()            {}
func (TurnStart) isServerMessage()        {}
func (WaitingForAction) isServerMessage() {}
func (Prompt) isServerMessage()           {}

func (Ready) isClientMessage()          {}
func (ClientAction) isClientMessage()   {}
func (PromptResponse) isClientMessage() {}

// NewMessage wraps a variant in an envelope.
func NewMessage(seq uint64, p Payload) (*Message, error) {
	var payload json.RawMessage
	switch p.(type) {
	case TurnStart, Ready:
		// no body
	default:
		b, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s payload: %w", p.Type(), err)
		}
		payload = b
	}
	return &Message{
		Seq:     seq,
		Type:    p.Type(),
		Payload: payload,
	}, nil
}

// DecodeServerMessage unpacks a server envelope into its variant.
// Client types, unknown types and payloads missing required fields are errors.
func DecodeServerMessage(msg *Message) (ServerMessage, error) {
	switch msg.Type {
	case MessageTypeServerHello:
		m := Hello{}
		if err := unmarshalPayload(msg, &m); err != nil {
			return nil, err
		}
		if m.PlayerID.IsZero() {
			return nil, fmt.Errorf("%w: Hello without player id", ErrInvalidPayload)
		}
		return m, nil
	case MessageTypeServerGameStart:
		m := GameStart{}
		if err := unmarshalPayload(msg, &m); err != nil {
			return nil, err
		}
		if m.OpponentID.IsZero() {
			return nil, fmt.Errorf("%w: GameStart without opponent id", ErrInvalidPayload)
		}
		return m, nil
	case MessageTypeServerState:
		m := State{}
		if err := unmarshalPayload(msg, &m); err != nil {
			return nil, err
		}
		if m.View == nil {
			return nil, fmt.Errorf("%w: State without view", ErrInvalidPayload)
		}
		return m, nil
	case MessageTypeServerTurnStart:
		return TurnStart{}, nil
	case MessageTypeServerWaitingForAction:
		m := WaitingForAction{}
		if err := unmarshalPayload(msg, &m); err != nil {
			return nil, err
		}
		if m.View == nil {
			return nil, fmt.Errorf("%w: WaitingForAction without view", ErrInvalidPayload)
		}
		return m, nil
	case MessageTypeServerPrompt:
		m := Prompt{}
		if err := unmarshalPayload(msg, &m); err != nil {
			return nil, err
		}
		if !m.Kind.Valid() {
			return nil, fmt.Errorf("%w: unknown prompt kind %q", ErrInvalidPayload, m.Kind)
		}
		if m.View == nil {
			return nil, fmt.Errorf("%w: Prompt without view", ErrInvalidPayload)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%w from server: %s", ErrUnknownMessageType, msg.Type)
	}
}

// DecodeClientMessage unpacks a client envelope into its variant.
func DecodeClientMessage(msg *Message) (ClientMessage, error) {
	switch msg.Type {
	case MessageTypeClientReady:
		return Ready{}, nil
	case MessageTypeClientAction:
		m := ClientAction{}
		if err := unmarshalPayload(msg, &m); err != nil {
			return nil, err
		}
		if err := m.Action.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		return m, nil
	case MessageTypeClientPromptResponse:
		m := PromptResponse{}
		if err := unmarshalPayload(msg, &m); err != nil {
			return nil, err
		}
		if err := m.Answer.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%w from client: %s", ErrUnknownMessageType, msg.Type)
	}
}

func unmarshalPayload(msg *Message, v interface{}) error {
	if len(msg.Payload) == 0 {
		return fmt.Errorf("%w: %s without payload", ErrInvalidPayload, msg.Type)
	}
	if err := json.Unmarshal(msg.Payload, v); err != nil {
		return fmt.Errorf("%w: failed to unmarshal %s: %v", ErrInvalidPayload, msg.Type, err)
	}
	return nil
}
