package types

import (
	"fmt"

	"github.com/google/uuid"
)

// PlayerID is the opaque identifier the server assigns to a player at handshake time.
type PlayerID uuid.UUID

// NilPlayerID is the zero PlayerID. The server never assigns it.
var NilPlayerID PlayerID

func NewPlayerID() PlayerID {
	return PlayerID(uuid.New())
}

func ParsePlayerID(s string) (PlayerID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return NilPlayerID, fmt.Errorf("failed to parse player id %q: %w", s, err)
	}
	return PlayerID(id), nil
}

func (id PlayerID) String() string {
	return uuid.UUID(id).String()
}

func (id PlayerID) IsZero() bool {
	return id == NilPlayerID
}

func (id PlayerID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

func (id *PlayerID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

// CardInstanceID identifies one card instance for the lifetime of a game.
type CardInstanceID uuid.UUID

var NilCardInstanceID CardInstanceID

func NewCardInstanceID() CardInstanceID {
	return CardInstanceID(uuid.New())
}

func ParseCardInstanceID(s string) (CardInstanceID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return NilCardInstanceID, fmt.Errorf("failed to parse card instance id %q: %w", s, err)
	}
	return CardInstanceID(id), nil
}

func (id CardInstanceID) String() string {
	return uuid.UUID(id).String()
}

func (id CardInstanceID) IsZero() bool {
	return id == NilCardInstanceID
}

func (id CardInstanceID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

func (id *CardInstanceID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}
