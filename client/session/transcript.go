package session

import (
	"context"
	"sync"
	"time"

	"github.com/cbodonnell/saltclient/client/network"
	"github.com/cbodonnell/saltclient/pkg/messages"
	"github.com/cbodonnell/saltclient/pkg/repositories"
	"github.com/cbodonnell/saltclient/pkg/repositories/models"
	"github.com/google/uuid"
)

// TranscriptRecorder stores every envelope of one session in a repository.
type TranscriptRecorder struct {
	repo      repositories.Repository
	sessionID uuid.UUID
	lock      sync.Mutex
	ordinal   int
	now       func() time.Time
}

var _ network.Recorder = &TranscriptRecorder{}

func NewTranscriptRecorder(repo repositories.Repository, sessionID uuid.UUID) *TranscriptRecorder {
	return &TranscriptRecorder{
		repo:      repo,
		sessionID: sessionID,
		now:       time.Now,
	}
}

func (r *TranscriptRecorder) Record(ctx context.Context, dir network.Direction, msg *messages.Message) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.ordinal++
	return r.repo.RecordMessage(ctx, &models.TranscriptMessage{
		SessionID:  r.sessionID,
		Ordinal:    r.ordinal,
		Direction:  string(dir),
		Seq:        msg.Seq,
		Type:       uint8(msg.Type),
		Payload:    msg.Payload,
		RecordedAt: r.now().UnixMilli(),
	})
}
