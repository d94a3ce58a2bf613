package sim

import "github.com/pmorrell/blockfall/internal/model"

// Read-only snapshot accessors. Each returns a copy so callers cannot reach
// into live engine state.

// Board returns a deep copy of the playfield
func (e *Engine) Board() *model.Board {
	return e.board.Clone()
}

// Active returns a copy of the active piece, or nil while none is falling
func (e *Engine) Active() *model.Piece {
	return copyPiece(e.active)
}

// Next returns a copy of the piece queued to spawn next
func (e *Engine) Next() *model.Piece {
	return copyPiece(e.next)
}

// Held returns a copy of the held piece, or nil if the hold slot is empty
func (e *Engine) Held() *model.Piece {
	return copyPiece(e.held)
}

func copyPiece(p *model.Piece) *model.Piece {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// Score returns the current score
func (e *Engine) Score() int {
	return e.score
}

// LinesCleared returns the running cleared-line count
func (e *Engine) LinesCleared() int {
	return e.linesCleared
}

// SpawnCounts returns a copy of the per-kind spawn counters
func (e *Engine) SpawnCounts() map[model.PieceKind]int {
	counts := make(map[model.PieceKind]int, len(e.spawnCounts))
	for kind, n := range e.spawnCounts {
		counts[kind] = n
	}
	return counts
}

// Started reports whether a game is in progress
func (e *Engine) Started() bool {
	return e.started
}

// Paused reports whether the game is paused
func (e *Engine) Paused() bool {
	return e.paused
}

// GameOver reports whether the game has ended
func (e *Engine) GameOver() bool {
	return e.gameOver
}

// InPanic reports whether the board has crossed the panic threshold
func (e *Engine) InPanic() bool {
	return e.inPanic
}

// ClearingRows returns the rows awaiting collapse, or nil
func (e *Engine) ClearingRows() []int {
	return append([]int(nil), e.clearingRows...)
}

// ClearFraction returns the remaining fraction of the line-clear delay in
// [0, 1], for flash rendering. Zero when no clear is pending.
func (e *Engine) ClearFraction() float64 {
	if len(e.clearingRows) == 0 || e.clearTimer <= 0 {
		return 0
	}
	return e.clearTimer / LineClearDelay
}

// HoldUsed reports whether the hold swap has been consumed for the current
// spawned piece
func (e *Engine) HoldUsed() bool {
	return e.holdUsed
}

// Effects returns copies of the active bonus-square effects
func (e *Engine) Effects() []SquareEffect {
	effects := make([]SquareEffect, 0, len(e.effects))
	for _, eff := range e.effects {
		effects = append(effects, *eff)
	}
	return effects
}
