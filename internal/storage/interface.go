package storage

import (
	"context"

	"github.com/pmorrell/blockfall/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Registered player operations
	SaveRegisteredPlayer(ctx context.Context, rp *model.RegisteredPlayer) error
	GetRegisteredPlayer(ctx context.Context, playerID model.PlayerID) (*model.RegisteredPlayer, error)
	GetRegisteredPlayerByUsername(ctx context.Context, username string) (*model.RegisteredPlayer, error)

	// Profile operations
	SaveProfile(ctx context.Context, profile *model.Profile) error
	GetProfile(ctx context.Context, playerID model.PlayerID) (*model.Profile, error)

	// Game summary operations
	SaveGameSummary(ctx context.Context, summary *model.GameSummary) error
	GetGameSummary(ctx context.Context, id model.SessionID) (*model.GameSummary, error)
	GetGameSummariesForPlayer(ctx context.Context, playerID model.PlayerID) ([]*model.GameSummary, error)

	// Leaderboard operations
	RecordHighScore(ctx context.Context, entry *model.HighScore) error
	TopScores(ctx context.Context, limit int) ([]*model.HighScore, error)
}
