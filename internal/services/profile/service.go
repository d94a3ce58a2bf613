// Package profile manages per-player settings and best-result records: the
// saved display name and music track, the high-score banner shown on the
// menu, and the shared leaderboard.
package profile

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pmorrell/blockfall/internal/dependencies/clock"
	"github.com/pmorrell/blockfall/internal/model"
	"github.com/pmorrell/blockfall/internal/storage"
)

// Service provides profile and leaderboard operations
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new ProfileService
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Get returns a player's saved profile
func (s *Service) Get(ctx context.Context, playerID model.PlayerID) (*model.Profile, error) {
	return s.storage.GetProfile(ctx, playerID)
}

// GetOrDefault returns a player's profile, or the default profile if none has
// been saved yet
func (s *Service) GetOrDefault(ctx context.Context, playerID model.PlayerID) (*model.Profile, error) {
	profile, err := s.storage.GetProfile(ctx, playerID)
	if errors.Is(err, model.ErrProfileNotFound) {
		return model.DefaultProfile(playerID), nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// Save persists profile settings. The best-result fields are managed by
// RecordResult; incoming values for them are ignored in favor of the stored
// ones so a settings save cannot erase a high score.
func (s *Service) Save(ctx context.Context, profile *model.Profile) error {
	existing, err := s.GetOrDefault(ctx, profile.PlayerID)
	if err != nil {
		return err
	}

	profile.HighScore = existing.HighScore
	profile.LineCount = existing.LineCount
	profile.GameMode = existing.GameMode
	profile.UpdatedAt = s.clock.Now()
	return s.storage.SaveProfile(ctx, profile)
}

// RecordResult records a finished game against the player's profile and the
// leaderboard. The profile banner and leaderboard both keep the best score.
func (s *Service) RecordResult(ctx context.Context, summary *model.GameSummary) error {
	if err := s.storage.SaveGameSummary(ctx, summary); err != nil {
		return err
	}

	profile, err := s.GetOrDefault(ctx, summary.PlayerID)
	if err != nil {
		return err
	}

	if summary.Score > profile.HighScore {
		profile.HighScore = summary.Score
		profile.LineCount = summary.Lines
		profile.GameMode = summary.GameMode
		profile.UpdatedAt = s.clock.Now()
		if err := s.storage.SaveProfile(ctx, profile); err != nil {
			return err
		}
		s.logger.Info("new personal best",
			slog.String("player_id", string(summary.PlayerID)),
			slog.Int("score", summary.Score),
			slog.Int("lines", summary.Lines))
	}

	entry := &model.HighScore{
		PlayerID:    summary.PlayerID,
		DisplayName: profile.DisplayName,
		Score:       summary.Score,
		Lines:       summary.Lines,
		GameMode:    summary.GameMode,
		RecordedAt:  s.clock.Now(),
	}
	return s.storage.RecordHighScore(ctx, entry)
}

// History returns a player's finished games, newest first
func (s *Service) History(ctx context.Context, playerID model.PlayerID) ([]*model.GameSummary, error) {
	return s.storage.GetGameSummariesForPlayer(ctx, playerID)
}

// Leaderboard returns the top scores across all players
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]*model.HighScore, error) {
	return s.storage.TopScores(ctx, limit)
}
