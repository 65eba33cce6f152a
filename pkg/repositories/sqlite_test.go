package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cbodonnell/saltclient/pkg/repositories/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMigrations = "../../migrations"

func newTestSQLiteRepository(t *testing.T) Repository {
	t.Helper()
	url := "sqlite://" + filepath.Join(t.TempDir(), "transcripts.db")
	repo, err := NewRepository(context.Background(), url, testMigrations)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close(context.Background()) })
	return repo
}

func TestSQLiteRepository_Transcript(t *testing.T) {
	ctx := context.Background()
	repo := newTestSQLiteRepository(t)

	session := &models.Session{
		ID:         uuid.New(),
		ServerAddr: "ws://localhost:9000",
		StartedAt:  1000,
	}
	require.NoError(t, repo.CreateSession(ctx, session))

	msgs := []*models.TranscriptMessage{
		{SessionID: session.ID, Ordinal: 1, Direction: "received", Seq: 1, Type: 1, Payload: []byte(`{"player_id":"a"}`), RecordedAt: 1001},
		{SessionID: session.ID, Ordinal: 2, Direction: "sent", Seq: 1, Type: 101, RecordedAt: 1002},
		{SessionID: session.ID, Ordinal: 3, Direction: "received", Seq: 2, Type: 2, Payload: []byte(`{"opponent_id":"b"}`), RecordedAt: 1003},
	}
	// insertion order must not matter
	for _, i := range []int{2, 0, 1} {
		require.NoError(t, repo.RecordMessage(ctx, msgs[i]))
	}

	got, err := repo.ListMessages(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := range msgs {
		assert.Equal(t, msgs[i].Ordinal, got[i].Ordinal)
		assert.Equal(t, msgs[i].Direction, got[i].Direction)
		assert.Equal(t, msgs[i].Seq, got[i].Seq)
		assert.Equal(t, msgs[i].Type, got[i].Type)
		assert.Equal(t, msgs[i].RecordedAt, got[i].RecordedAt)
		assert.Equal(t, string(msgs[i].Payload), string(got[i].Payload))
	}

	stored, err := repo.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.False(t, stored.Ended())

	require.NoError(t, repo.EndSession(ctx, session.ID, "player-1", 2000, ""))
	stored, err = repo.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, stored.Ended())
	assert.Equal(t, "player-1", stored.PlayerID)
	assert.Equal(t, int64(2000), stored.EndedAt)
	assert.Equal(t, session.ServerAddr, stored.ServerAddr)
}

func TestSQLiteRepository_LatestSession(t *testing.T) {
	ctx := context.Background()
	repo := newTestSQLiteRepository(t)

	_, err := repo.LatestSession(ctx)
	assert.True(t, IsNotFound(err))

	older := &models.Session{ID: uuid.New(), ServerAddr: "a", StartedAt: 10}
	newer := &models.Session{ID: uuid.New(), ServerAddr: "b", StartedAt: 20}
	require.NoError(t, repo.CreateSession(ctx, newer))
	require.NoError(t, repo.CreateSession(ctx, older))

	latest, err := repo.LatestSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, latest.ID)
}

func TestSQLiteRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := newTestSQLiteRepository(t)

	_, err := repo.GetSession(ctx, uuid.New())
	assert.True(t, IsNotFound(err))

	err = repo.EndSession(ctx, uuid.New(), "", 1, "gone")
	assert.True(t, IsNotFound(err))

	msgs, err := repo.ListMessages(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestSQLiteRepository_DuplicateOrdinal(t *testing.T) {
	ctx := context.Background()
	repo := newTestSQLiteRepository(t)

	session := &models.Session{ID: uuid.New(), ServerAddr: "a", StartedAt: 1}
	require.NoError(t, repo.CreateSession(ctx, session))
	msg := &models.TranscriptMessage{SessionID: session.ID, Ordinal: 1, Direction: "sent", Seq: 1, Type: 101, RecordedAt: 2}
	require.NoError(t, repo.RecordMessage(ctx, msg))
	assert.Error(t, repo.RecordMessage(ctx, msg))
}

func TestNewRepository_Errors(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		migrations string
	}{
		{name: "unsupported scheme", url: "mysql://localhost/db", migrations: testMigrations},
		{name: "empty url", url: "", migrations: testMigrations},
		{name: "missing migrations", url: "sqlite://" + filepath.Join(os.TempDir(), uuid.NewString()+".db"), migrations: "does-not-exist"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := NewRepository(context.Background(), tt.url, tt.migrations)
			assert.Error(t, err)
			assert.Nil(t, repo)
		})
	}
}

func TestReadMigrations_Ordered(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "0002_b.sql"), []byte("B"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "0001_a.sql"), []byte("A"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("skip"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	ms, err := readMigrations(dir)
	require.NoError(t, err)
	require.Len(t, ms, 2)
	assert.Equal(t, "A", ms[0].sql)
	assert.Equal(t, "B", ms[1].sql)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&ErrNotFound{}))
	assert.False(t, IsNotFound(os.ErrNotExist))
	assert.False(t, IsNotFound(nil))
}
