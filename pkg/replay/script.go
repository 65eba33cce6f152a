// Package replay serves scripted protocol sessions for client development.
package replay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cbodonnell/saltclient/pkg/messages"
	"github.com/cbodonnell/saltclient/pkg/repositories"
	"github.com/cbodonnell/saltclient/pkg/repositories/models"
	"github.com/google/uuid"
)

var ErrInvalidScript = errors.New("invalid script")

// Step either sends a server message or waits for a client message of the given type.
type Step struct {
	Send   *messages.Message   `json:"send,omitempty"`
	Expect messages.MessageType `json:"expect,omitempty"`
}

type Script struct {
	Name  string `json:"name,omitempty"`
	Steps []Step `json:"steps"`
}

// Validate checks every step. Sent payloads must decode as the server message they name.
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("%w: no steps", ErrInvalidScript)
	}
	for i, step := range s.Steps {
		switch {
		case step.Send != nil && step.Expect != 0:
			return fmt.Errorf("%w: step %d both sends and expects", ErrInvalidScript, i)
		case step.Send != nil:
			if _, err := messages.DecodeServerMessage(step.Send); err != nil {
				return fmt.Errorf("%w: step %d: %w", ErrInvalidScript, i, err)
			}
		case step.Expect != 0:
			if !step.Expect.IsClient() {
				return fmt.Errorf("%w: step %d expects %s, which is not a client message", ErrInvalidScript, i, step.Expect)
			}
		default:
			return fmt.Errorf("%w: step %d is empty", ErrInvalidScript, i)
		}
	}
	return nil
}

func ParseScript(r io.Reader) (*Script, error) {
	var s Script
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func LoadScript(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	s, err := ParseScript(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// ScriptFromTranscript replays what the server sent in a recorded session and
// expects the client to answer with the same message types it sent.
func ScriptFromTranscript(msgs []*models.TranscriptMessage) (*Script, error) {
	s := &Script{}
	for _, m := range msgs {
		typ := messages.MessageType(m.Type)
		switch m.Direction {
		case "received":
			s.Steps = append(s.Steps, Step{Send: &messages.Message{
				Type:    typ,
				Payload: append(json.RawMessage(nil), m.Payload...),
			}})
		case "sent":
			s.Steps = append(s.Steps, Step{Expect: typ})
		default:
			return nil, fmt.Errorf("%w: message %d has direction %q", ErrInvalidScript, m.Ordinal, m.Direction)
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadTranscriptScript builds a script from a recorded session. The nil id selects the latest session.
func LoadTranscriptScript(ctx context.Context, repo repositories.Repository, sessionID uuid.UUID) (*Script, error) {
	var session *models.Session
	var err error
	if sessionID == uuid.Nil {
		session, err = repo.LatestSession(ctx)
	} else {
		session, err = repo.GetSession(ctx, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	msgs, err := repo.ListMessages(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	s, err := ScriptFromTranscript(msgs)
	if err != nil {
		return nil, err
	}
	s.Name = "session " + session.ID.String()
	return s, nil
}
