package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cbodonnell/saltclient/pkg/repositories/models"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(ctx context.Context, path string, migrations string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// sqlite serializes writers anyway.
	db.SetMaxOpenConns(1)

	ms, err := readMigrations(migrations)
	if err != nil {
		db.Close()
		return nil, err
	}
	for _, m := range ms {
		if _, err := db.ExecContext(ctx, m.sql); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute migration %s: %w", m.name, err)
		}
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) CreateSession(ctx context.Context, session *models.Session) error {
	q := `
	INSERT INTO sessions (session_id, server_addr, player_id, started_at)
	VALUES (?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, q, session.ID.String(), session.ServerAddr, session.PlayerID, session.StartedAt)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	return nil
}

func (r *SQLiteRepository) RecordMessage(ctx context.Context, msg *models.TranscriptMessage) error {
	q := `
	INSERT INTO transcript_messages (session_id, ordinal, direction, seq, type, payload, recorded_at)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, q, msg.SessionID.String(), msg.Ordinal, msg.Direction, int64(msg.Seq), int(msg.Type), msg.Payload, msg.RecordedAt)
	if err != nil {
		return fmt.Errorf("failed to insert transcript message: %w", err)
	}

	return nil
}

func (r *SQLiteRepository) EndSession(ctx context.Context, sessionID uuid.UUID, playerID string, endedAt int64, reason string) error {
	q := `
	UPDATE sessions SET player_id = ?, ended_at = ?, end_reason = ? WHERE session_id = ?;
	`
	res, err := r.db.ExecContext(ctx, q, playerID, endedAt, reason, sessionID.String())
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return &ErrNotFound{}
	}

	return nil
}

const sqliteSessionColumns = `session_id, server_addr, player_id, started_at, ended_at, end_reason`

func (r *SQLiteRepository) GetSession(ctx context.Context, sessionID uuid.UUID) (*models.Session, error) {
	q := `SELECT ` + sqliteSessionColumns + ` FROM sessions WHERE session_id = ?;`
	return scanSQLiteSession(r.db.QueryRowContext(ctx, q, sessionID.String()))
}

func (r *SQLiteRepository) LatestSession(ctx context.Context) (*models.Session, error) {
	q := `SELECT ` + sqliteSessionColumns + ` FROM sessions ORDER BY started_at DESC, rowid DESC LIMIT 1;`
	return scanSQLiteSession(r.db.QueryRowContext(ctx, q))
}

func scanSQLiteSession(row *sql.Row) (*models.Session, error) {
	var id string
	var endedAt sql.NullInt64
	session := &models.Session{}
	if err := row.Scan(&id, &session.ServerAddr, &session.PlayerID, &session.StartedAt, &endedAt, &session.EndReason); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan session: %w", err)
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("failed to parse session id %q: %w", id, err)
	}
	session.ID = parsed
	session.EndedAt = endedAt.Int64

	return session, nil
}

func (r *SQLiteRepository) ListMessages(ctx context.Context, sessionID uuid.UUID) ([]*models.TranscriptMessage, error) {
	q := `
	SELECT ordinal, direction, seq, type, payload, recorded_at
	FROM transcript_messages WHERE session_id = ? ORDER BY ordinal;
	`
	rows, err := r.db.QueryContext(ctx, q, sessionID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query transcript messages: %w", err)
	}
	defer rows.Close()

	var msgs []*models.TranscriptMessage
	for rows.Next() {
		var seq int64
		var typ int
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
