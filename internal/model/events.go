package model

// BonusSquare describes a bonus square formed during a tick
type BonusSquare struct {
	Origin Offset `json:"origin"` // top-left of the 4x4 region
	Gold   bool   `json:"gold"`   // false means silver
}

// TickEvents reports the discrete occurrences of a single tick. Rendering and
// audio collaborators consume these to trigger effects; the simulation core
// never calls into them directly.
type TickEvents struct {
	Moved       bool      `json:"moved,omitempty"` // active piece moved horizontally by input
	Rotated     bool      `json:"rotated,omitempty"`
	SoftDropped bool      `json:"soft_dropped,omitempty"` // gravity step taken at soft-drop speed
	HardDropped bool      `json:"hard_dropped,omitempty"`
	Locked      bool      `json:"locked,omitempty"`
	Spawned     bool      `json:"spawned,omitempty"`
	SpawnedKind PieceKind `json:"spawned_kind"`

	LinesClearing []int `json:"lines_clearing,omitempty"` // rows now awaiting collapse
	LinesCleared  int   `json:"lines_cleared,omitempty"`  // rows collapsed this tick
	ClearBonus    int   `json:"clear_bonus,omitempty"`    // bonus score granted with the collapse

	BonusSquares []BonusSquare `json:"bonus_squares,omitempty"`

	PauseToggled bool `json:"pause_toggled,omitempty"`
	Paused       bool `json:"paused,omitempty"`
	PanicToggled bool `json:"panic_toggled,omitempty"`
	Panic        bool `json:"panic,omitempty"`
	GameOver     bool `json:"game_over,omitempty"`
}

// Any reports whether the tick produced any discrete occurrence
func (e *TickEvents) Any() bool {
	return e.Moved || e.Rotated || e.SoftDropped || e.HardDropped ||
		e.Locked || e.Spawned || len(e.LinesClearing) > 0 || e.LinesCleared > 0 ||
		len(e.BonusSquares) > 0 || e.PauseToggled || e.PanicToggled || e.GameOver
}
