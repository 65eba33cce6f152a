package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/cbodonnell/saltclient/pkg/log"
	"github.com/cbodonnell/saltclient/pkg/repositories/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository connects to connStr and applies the migrations in the given directory.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string, migrations string) (Repository, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	var username string
	var database string
	err = pool.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to query database: %w", err)
	}
	log.Info("Connected to %s as %s", database, username)

	ms, err := readMigrations(migrations)
	if err != nil {
		pool.Close()
		return nil, err
	}
	for _, m := range ms {
		if _, err := pool.Exec(ctx, m.sql); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to execute migration %s: %w", m.name, err)
		}
	}

	return &PostgresRepository{
		pool: pool,
	}, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	r.pool.Close()
	return nil
}

func (r *PostgresRepository) CreateSession(ctx context.Context, session *models.Session) error {
	q := `
	INSERT INTO sessions (session_id, server_addr, player_id, started_at)
	VALUES ($1, $2, $3, $4);
	`
	_, err := r.pool.Exec(ctx, q, session.ID, session.ServerAddr, session.PlayerID, session.StartedAt)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	return nil
}

func (r *PostgresRepository) RecordMessage(ctx context.Context, msg *models.TranscriptMessage) error {
	q := `
	INSERT INTO transcript_messages (session_id, ordinal, direction, seq, type, payload, recorded_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, q, msg.SessionID, msg.Ordinal, msg.Direction, int64(msg.Seq), int16(msg.Type), msg.Payload, msg.RecordedAt)
	if err != nil {
		return fmt.Errorf("failed to insert transcript message: %w", err)
	}

	return nil
}

func (r *PostgresRepository) EndSession(ctx context.Context, sessionID uuid.UUID, playerID string, endedAt int64, reason string) error {
	q := `
	UPDATE sessions SET player_id = $1, ended_at = $2, end_reason = $3 WHERE session_id = $4;
	`
	tag, err := r.pool.Exec(ctx, q, playerID, endedAt, reason, sessionID)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &ErrNotFound{}
	}

	return nil
}

const postgresSessionColumns = `session_id, server_addr, player_id, started_at, ended_at, end_reason`

func (r *PostgresRepository) GetSession(ctx context.Context, sessionID uuid.UUID) (*models.Session, error) {
	q := `SELECT ` + postgresSessionColumns + ` FROM sessions WHERE session_id = $1;`
	return scanPostgresSession(r.pool.QueryRow(ctx, q, sessionID))
}

func (r *PostgresRepository) LatestSession(ctx context.Context) (*models.Session, error) {
	q := `SELECT ` + postgresSessionColumns + ` FROM sessions ORDER BY started_at DESC LIMIT 1;`
	return scanPostgresSession(r.pool.QueryRow(ctx, q))
}

func scanPostgresSession(row pgx.Row) (*models.Session, error) {
	var endedAt *int64
	session := &models.Session{}
	if err := row.Scan(&session.ID, &session.ServerAddr, &session.PlayerID, &session.StartedAt, &endedAt, &session.EndReason); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan session: %w", err)
	}
	if endedAt != nil {
		session.EndedAt = *endedAt
	}

	return session, nil
}

func (r *PostgresRepository) ListMessages(ctx context.Context, sessionID uuid.UUID) ([]*models.TranscriptMessage, error) {
	q := `
	SELECT ordinal, direction, seq, type, payload, recorded_at
	FROM transcript_messages WHERE session_id = $1 ORDER BY ordinal;
	`
	rows, err := r.pool.Query(ctx, q, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transcript messages: %w", err)
	}
	defer rows.Close()

	var msgs []*models.TranscriptMessage
	for rows.Next() {
		var seq int64
		var typ int16
		msg := &models.TranscriptMessage{SessionID: sessionID}
		if err := rows.Scan(&msg.Ordinal, &msg.Direction, &seq, &typ, &msg.Payload, &msg.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transcript message: %w", err)
		}
		msg.Seq = uint64(seq)
		msg.Type = uint8(typ)
		msgs = append(msgs, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transcript messages: %w", err)
	}

	return msgs, nil
}
