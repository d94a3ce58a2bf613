package response

import (
	"time"

	"github.com/pmorrell/blockfall/internal/model"
	"github.com/pmorrell/blockfall/internal/services/auth"
)

// Player represents a player in API responses
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		DisplayName: p.DisplayName,
		IsGuest:     p.IsGuest,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Player:       PlayerFromModel(&s.Player),
		SessionToken: s.Token,
	}
}

// Profile represents a player's settings and best result
type Profile struct {
	PlayerID    string    `json:"player_id"`
	DisplayName string    `json:"display_name"`
	LastTrack   int       `json:"last_track"`
	HighScore   int       `json:"high_score"`
	LineCount   int       `json:"line_count"`
	GameMode    string    `json:"game_mode"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProfileFromModel converts model.Profile
func ProfileFromModel(p *model.Profile) Profile {
	return Profile{
		PlayerID:    string(p.PlayerID),
		DisplayName: p.DisplayName,
		LastTrack:   p.LastTrack,
		HighScore:   p.HighScore,
		LineCount:   p.LineCount,
		GameMode:    string(p.GameMode),
		UpdatedAt:   p.UpdatedAt,
	}
}

// GameSummary represents a finished game in API responses
type GameSummary struct {
	SessionID   string         `json:"session_id"`
	PlayerID    string         `json:"player_id"`
	Score       int            `json:"score"`
	Lines       int            `json:"lines"`
	Difficulty  string         `json:"difficulty"`
	GameMode    string         `json:"game_mode"`
	SpawnCounts map[string]int `json:"spawn_counts,omitempty"`
	EndedAt     time.Time      `json:"ended_at"`
}

// GameSummaryFromModel converts model.GameSummary
func GameSummaryFromModel(g *model.GameSummary) GameSummary {
	var counts map[string]int
	if len(g.SpawnCounts) > 0 {
		counts = make(map[string]int, len(g.SpawnCounts))
		for kind, n := range g.SpawnCounts {
			counts[kind.String()] = n
		}
	}
	return GameSummary{
		SessionID:   string(g.SessionID),
		PlayerID:    string(g.PlayerID),
		Score:       g.Score,
		Lines:       g.Lines,
		Difficulty:  string(g.Difficulty),
		GameMode:    string(g.GameMode),
		SpawnCounts: counts,
		EndedAt:     g.EndedAt,
	}
}

// HighScore represents a leaderboard entry
type HighScore struct {
	Rank        int       `json:"rank"`
	PlayerID    string    `json:"player_id"`
	DisplayName string    `json:"display_name"`
	Score       int       `json:"score"`
	Lines       int       `json:"lines"`
	GameMode    string    `json:"game_mode"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// LeaderboardFromModel converts ranked high scores
func LeaderboardFromModel(scores []*model.HighScore) []HighScore {
	out := make([]HighScore, len(scores))
	for i, s := range scores {
		out[i] = HighScore{
			Rank:        i + 1,
			PlayerID:    string(s.PlayerID),
			DisplayName: s.DisplayName,
			Score:       s.Score,
			Lines:       s.Lines,
			GameMode:    string(s.GameMode),
			RecordedAt:  s.RecordedAt,
		}
	}
	return out
}
