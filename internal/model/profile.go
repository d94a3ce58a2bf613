package model

import "time"

// Profile is the persisted per-player configuration and best-result record,
// consumed at session start and shown as the high-score banner on the menu
type Profile struct {
	PlayerID    PlayerID  `json:"player_id"`
	DisplayName string    `json:"display_name"`
	LastTrack   int       `json:"last_track"` // last selected music track index
	HighScore   int       `json:"high_score"`
	LineCount   int       `json:"line_count"` // lines cleared in the high-score game
	GameMode    GameMode  `json:"game_mode"`  // mode of the high-score game
	UpdatedAt   time.Time `json:"updated_at"`
}

// DefaultProfile returns the profile used before a player has saved one
func DefaultProfile(playerID PlayerID) *Profile {
	return &Profile{
		PlayerID:    playerID,
		DisplayName: "Player",
		GameMode:    GameModeClassic,
	}
}

// HighScore is a leaderboard entry
type HighScore struct {
	PlayerID    PlayerID  `json:"player_id"`
	DisplayName string    `json:"display_name"`
	Score       int       `json:"score"`
	Lines       int       `json:"lines"`
	GameMode    GameMode  `json:"game_mode"`
	RecordedAt  time.Time `json:"recorded_at"`
}
