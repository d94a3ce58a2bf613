package model

import "time"

// SessionID uniquely identifies a running or finished game session
type SessionID string

// Difficulty is a player-selected setting. It is carried as metadata and does
// not alter simulation physics.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// GameMode is a player-selected setting, carried as metadata like Difficulty
type GameMode string

const (
	GameModeClassic GameMode = "classic"
	GameModeTimed   GameMode = "timed"
	GameModeEndless GameMode = "endless"
)

// SessionOptions are the settings chosen at the menu before a game starts
type SessionOptions struct {
	Difficulty Difficulty `json:"difficulty"`
	GameMode   GameMode   `json:"game_mode"`
	Track      int        `json:"track"` // starting music track index
}

// GameSummary is the record of a finished game session
type GameSummary struct {
	SessionID   SessionID         `json:"session_id"`
	PlayerID    PlayerID          `json:"player_id"`
	Score       int               `json:"score"`
	Lines       int               `json:"lines"`
	Difficulty  Difficulty        `json:"difficulty"`
	GameMode    GameMode          `json:"game_mode"`
	SpawnCounts map[PieceKind]int `json:"spawn_counts"`
	EndedAt     time.Time         `json:"ended_at"`
}
