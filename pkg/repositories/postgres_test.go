package repositories

import (
	"context"
	"os"
	"testing"

	"github.com/cbodonnell/saltclient/pkg/repositories/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real database when SALT_TEST_POSTGRES_URL is set.
func TestPostgresRepository_Transcript(t *testing.T) {
	url := os.Getenv("SALT_TEST_POSTGRES_URL")
	if url == "" {
		t.Skip("SALT_TEST_POSTGRES_URL not set")
	}

	ctx := context.Background()
	repo, err := NewRepository(ctx, url, testMigrations)
	require.NoError(t, err)
	defer repo.Close(ctx)

	session := &models.Session{ID: uuid.New(), ServerAddr: "ws://localhost:9000", StartedAt: 1}
	require.NoError(t, repo.CreateSession(ctx, session))
	require.NoError(t, repo.RecordMessage(ctx, &models.TranscriptMessage{
		SessionID: session.ID, Ordinal: 1, Direction: "received", Seq: 1, Type: 1, Payload: []byte(`{}`), RecordedAt: 2,
	}))
	require.NoError(t, repo.EndSession(ctx, session.ID, "p", 3, "done"))

	stored, err := repo.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "done", stored.EndReason)
	assert.Equal(t, int64(3), stored.EndedAt)

	msgs, err := repo.ListMessages(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, uint8(1), msgs[0].Type)

	_, err = repo.GetSession(ctx, uuid.New())
	assert.True(t, IsNotFound(err))
}
