package models

import "github.com/google/uuid"

// Session is one recorded connection to a game server. Timestamps are unix milliseconds.
type Session struct {
	ID         uuid.UUID `json:"id"`
	ServerAddr string    `json:"server_addr"`
	PlayerID   string    `json:"player_id,omitempty"`
	StartedAt  int64     `json:"started_at"`
	EndedAt    int64     `json:"ended_at,omitempty"`
	EndReason  string    `json:"end_reason,omitempty"`
}

func (s *Session) Ended() bool {
	return s.EndedAt != 0
}

// TranscriptMessage is one envelope as it crossed the connection.
// Ordinal orders a session's messages across both directions.
type TranscriptMessage struct {
	SessionID  uuid.UUID `json:"session_id"`
	Ordinal    int       `json:"ordinal"`
	Direction  string    `json:"direction"`
	Seq        uint64    `json:"seq"`
	Type       uint8     `json:"type"`
	Payload    []byte    `json:"payload,omitempty"`
	RecordedAt int64     `json:"recorded_at"`
}
