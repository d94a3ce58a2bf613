package session

import (
	"github.com/pmorrell/blockfall/internal/model"
	"github.com/pmorrell/blockfall/internal/services/sim"
)

// Snapshot is the full observable state of a session at one instant, safe to
// hold after the session has moved on.
type Snapshot struct {
	SessionID model.SessionID      `json:"session_id"`
	PlayerID  model.PlayerID       `json:"player_id"`
	Options   model.SessionOptions `json:"options"`

	Board  *model.Board `json:"board"`
	Active *model.Piece `json:"active,omitempty"`
	Next   *model.Piece `json:"next,omitempty"`
	Held   *model.Piece `json:"held,omitempty"`

	HoldUsed bool `json:"hold_used"`
	Score    int  `json:"score"`
	Lines    int  `json:"lines"`

	Paused   bool `json:"paused"`
	Panic    bool `json:"panic"`
	GameOver bool `json:"game_over"`

	ClearingRows  []int   `json:"clearing_rows,omitempty"`
	ClearFraction float64 `json:"clear_fraction,omitempty"`

	Effects []sim.SquareEffect `json:"effects,omitempty"`

	Track int  `json:"track"`
	Muted bool `json:"muted"`
}

// snapshotOf locks the session and captures its state
func snapshotOf(s *Session) *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshotLocked(s)
}

// snapshotLocked captures the session's state. Caller holds s.mu.
func snapshotLocked(s *Session) *Snapshot {
	e := s.engine
	return &Snapshot{
		SessionID:     s.ID,
		PlayerID:      s.PlayerID,
		Options:       s.Options,
		Board:         e.Board(),
		Active:        e.Active(),
		Next:          e.Next(),
		Held:          e.Held(),
		HoldUsed:      e.HoldUsed(),
		Score:         e.Score(),
		Lines:         e.LinesCleared(),
		Paused:        e.Paused(),
		Panic:         e.InPanic(),
		GameOver:      e.GameOver(),
		ClearingRows:  e.ClearingRows(),
		ClearFraction: e.ClearFraction(),
		Effects:       e.Effects(),
		Track:         s.director.Track(),
		Muted:         s.director.Muted(),
	}
}
