package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pmorrell/blockfall/internal/model"
	"github.com/pmorrell/blockfall/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players           map[model.PlayerID]*model.Player
	registeredPlayers map[model.PlayerID]*model.RegisteredPlayer
	usernameIndex     map[string]model.PlayerID
	profiles          map[model.PlayerID]*model.Profile
	summaries         map[model.SessionID]*model.GameSummary
	highScores        []*model.HighScore
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:           make(map[model.PlayerID]*model.Player),
		registeredPlayers: make(map[model.PlayerID]*model.RegisteredPlayer),
		usernameIndex:     make(map[string]model.PlayerID),
		profiles:          make(map[model.PlayerID]*model.Profile),
		summaries:         make(map[model.SessionID]*model.GameSummary),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = player
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, id)
	return nil
}

// Registered player operations

func (s *Storage) SaveRegisteredPlayer(ctx context.Context, rp *model.RegisteredPlayer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registeredPlayers[rp.PlayerID] = rp
	s.usernameIndex[rp.Username] = rp.PlayerID
	return nil
}

func (s *Storage) GetRegisteredPlayer(ctx context.Context, playerID model.PlayerID) (*model.RegisteredPlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rp, ok := s.registeredPlayers[playerID]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return rp, nil
}

func (s *Storage) GetRegisteredPlayerByUsername(ctx context.Context, username string) (*model.RegisteredPlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	playerID, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	rp, ok := s.registeredPlayers[playerID]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return rp, nil
}

// Profile operations

func (s *Storage) SaveProfile(ctx context.Context, profile *model.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.PlayerID] = profile
	return nil
}

func (s *Storage) GetProfile(ctx context.Context, playerID model.PlayerID) (*model.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[playerID]
	if !ok {
		return nil, model.ErrProfileNotFound
	}
	return profile, nil
}

// Game summary operations

func (s *Storage) SaveGameSummary(ctx context.Context, summary *model.GameSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summaries[summary.SessionID] = summary
	return nil
}

func (s *Storage) GetGameSummary(ctx context.Context, id model.SessionID) (*model.GameSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	summary, ok := s.summaries[id]
	if !ok {
		return nil, model.ErrSummaryNotFound
	}
	return summary, nil
}

func (s *Storage) GetGameSummariesForPlayer(ctx context.Context, playerID model.PlayerID) ([]*model.GameSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var summaries []*model.GameSummary
	for _, summary := range s.summaries {
		if summary.PlayerID == playerID {
			summaries = append(summaries, summary)
		}
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].EndedAt.After(summaries[j].EndedAt)
	})
	return summaries, nil
}

// Leaderboard operations

func (s *Storage) RecordHighScore(ctx context.Context, entry *model.HighScore) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// One entry per player; keep the better score
	for i, existing := range s.highScores {
		if existing.PlayerID == entry.PlayerID {
			if entry.Score > existing.Score {
				s.highScores[i] = entry
			}
			return nil
		}
	}
	s.highScores = append(s.highScores, entry)
	return nil
}

func (s *Storage) TopScores(ctx context.Context, limit int) ([]*model.HighScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*model.HighScore, len(s.highScores))
	copy(result, s.highScores)
	sort.Slice(result, func(i, j int) bool {
		return result[i].Score > result[j].Score
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
