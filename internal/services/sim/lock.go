package sim

import (
	"log/slog"

	"github.com/pmorrell/blockfall/internal/model"
)

// lockPiece writes the active piece into the board under a fresh piece id,
// runs the bonus-square detector, and either schedules a delayed clear of any
// full rows or spawns the next piece immediately
func (e *Engine) lockPiece(ev *model.TickEvents) {
	if e.active == nil {
		return
	}
	id := e.nextPieceID
	e.nextPieceID++
	for _, cell := range e.active.Cells() {
		e.board.Set(cell.X, cell.Y, &model.Cell{
			Color:   e.active.Color,
			Kind:    e.active.Kind,
			PieceID: id,
		})
	}
	e.active = nil
	ev.Locked = true

	e.detectSquares(ev)

	full := e.board.FullRows()
	e.pendingBonus = 0
	for _, y := range full {
		e.pendingBonus += e.rowBonus(y)
	}
	if len(full) > 0 {
		e.clearingRows = full
		e.clearTimer = LineClearDelay
		ev.LinesClearing = append([]int(nil), full...)
		return
	}
	e.spawnNext(ev)
}

// rowBonus is the bonus contribution of one full row: gold beats silver,
// plain rows contribute nothing
func (e *Engine) rowBonus(y int) int {
	silver := false
	for x := 0; x < model.BoardWidth; x++ {
		cell := e.board.At(x, y)
		if cell == nil {
			continue
		}
		switch cell.Kind {
		case model.KindBonusGold:
			return GoldPoints
		case model.KindBonusSilver:
			silver = true
		}
	}
	if silver {
		return SilverPoints
	}
	return 0
}

// collapseRows removes the rows awaiting clear, credits lines and pending
// bonus score, spawns the next piece, and re-runs the detector since the
// collapse may have assembled a fresh 4x4 region
func (e *Engine) collapseRows(ev *model.TickEvents) {
	count := len(e.clearingRows)
	e.board.RemoveRows(e.clearingRows)
	e.linesCleared += count
	e.score += e.pendingBonus
	ev.LinesCleared = count
	ev.ClearBonus = e.pendingBonus
	e.pendingBonus = 0
	e.clearingRows = nil
	e.clearTimer = 0

	if !e.spawnNext(ev) {
		return
	}
	e.detectSquares(ev)
}

// spawnNext promotes the next piece to active and draws a new next piece.
// Returns false, flagging game over, if the spawn position already collides.
func (e *Engine) spawnNext(ev *model.TickEvents) bool {
	if !e.started || e.next == nil {
		return false
	}
	if e.board.Collides(e.next.Shape, e.next.Pos) {
		e.gameOver = true
		e.started = false
		ev.GameOver = true
		e.logger.Info("game over",
			slog.Int("score", e.score),
			slog.Int("lines", e.linesCleared))
		return false
	}
	e.active = e.next
	e.spawnCounts[e.active.Kind]++
	e.next = model.NewPiece(e.randomKind())
	e.holdUsed = false
	e.fallTimer = 0
	ev.Spawned = true
	ev.SpawnedKind = e.active.Kind
	return true
}
