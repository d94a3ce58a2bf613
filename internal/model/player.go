package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player represents someone who plays games and owns a profile
type Player struct {
	ID          PlayerID
	DisplayName string
	IsGuest     bool // true for unregistered players
	CreatedAt   time.Time
}

// RegisteredPlayer holds the authentication data for a registered account.
// Stored separately so credential data never travels with the Player value.
type RegisteredPlayer struct {
	PlayerID     PlayerID
	Username     string // login username (immutable)
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
