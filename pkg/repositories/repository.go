package repositories

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cbodonnell/saltclient/pkg/repositories/models"
	"github.com/google/uuid"
)

// Repository stores session transcripts.
type Repository interface {
	Close(ctx context.Context) error
	CreateSession(ctx context.Context, session *models.Session) error
	RecordMessage(ctx context.Context, msg *models.TranscriptMessage) error
	EndSession(ctx context.Context, sessionID uuid.UUID, playerID string, endedAt int64, reason string) error
	GetSession(ctx context.Context, sessionID uuid.UUID) (*models.Session, error)
	LatestSession(ctx context.Context) (*models.Session, error)
	ListMessages(ctx context.Context, sessionID uuid.UUID) ([]*models.TranscriptMessage, error)
}

// NewRepository opens the repository named by databaseURL.
// sqlite://<path> selects SQLite, postgres:// or postgresql:// selects Postgres.
// migrations is the directory holding one subdirectory of .sql files per backend.
func NewRepository(ctx context.Context, databaseURL string, migrations string) (Repository, error) {
	switch {
	case strings.HasPrefix(databaseURL, "sqlite://"):
		path := strings.TrimPrefix(databaseURL, "sqlite://")
		return NewSQLiteRepository(ctx, path, filepath.Join(migrations, "sqlite"))
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return NewPostgresRepository(ctx, databaseURL, filepath.Join(migrations, "postgres"))
	default:
		return nil, fmt.Errorf("unsupported database url %q", databaseURL)
	}
}

type migration struct {
	name string
	sql  string
}

// readMigrations returns the .sql files in dir ordered by name.
func readMigrations(dir string) ([]migration, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var migrations []migration
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".sql" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %w", path, err)
		}
		migrations = append(migrations, migration{name: path, sql: string(b)})
	}
	sort.Slice(migrations, func(i, j int) bool { return migrations[i].name < migrations[j].name })

	return migrations, nil
}
