package sim

import (
	"log/slog"

	"github.com/pmorrell/blockfall/internal/model"
)

// detectSquares scans every 4x4 window of the board for a bonus square: all
// 16 cells occupied, none already bonus filler, and every piece touching the
// window contained entirely within it. A qualifying window is immediately
// converted to bonus filler cells (piece id 0) and a blink effect registered;
// its score is awarded later, when a row holding filler cells is cleared.
func (e *Engine) detectSquares(ev *model.TickEvents) {
	for y := 0; y <= model.BoardHeight-4; y++ {
		for x := 0; x <= model.BoardWidth-4; x++ {
			e.tryWindow(x, y, ev)
		}
	}
}

func (e *Engine) tryWindow(x, y int, ev *model.TickEvents) {
	var original [4][4]model.Cell
	for dy := 0; dy < 4; dy++ {
		for dx := 0; dx < 4; dx++ {
			cell := e.board.At(x+dx, y+dy)
			if cell == nil || cell.Kind.Bonus() {
				return
			}
			original[dy][dx] = *cell
		}
	}

	// Distinct pieces touching the window, with a representative kind each
	pieceKinds := make(map[uint32]model.PieceKind)
	var order []uint32
	for dy := 0; dy < 4; dy++ {
		for dx := 0; dx < 4; dx++ {
			cell := original[dy][dx]
			if _, seen := pieceKinds[cell.PieceID]; !seen {
				pieceKinds[cell.PieceID] = cell.Kind
				order = append(order, cell.PieceID)
			}
		}
	}

	// A piece with any cell outside the window disqualifies it
	for by := 0; by < model.BoardHeight; by++ {
		for bx := 0; bx < model.BoardWidth; bx++ {
			cell := e.board.At(bx, by)
			if cell == nil {
				continue
			}
			if _, touching := pieceKinds[cell.PieceID]; !touching {
				continue
			}
			if bx < x || bx >= x+4 || by < y || by >= y+4 {
				return
			}
		}
	}

	// No duplicate effect for a window already revealing
	for _, eff := range e.effects {
		if eff.X == x && eff.Y == y {
			return
		}
	}

	gold := true
	for _, id := range order {
		if pieceKinds[id] != pieceKinds[order[0]] {
			gold = false
			break
		}
	}

	kind := model.KindBonusSilver
	color := model.ColorSilver
	if gold {
		kind = model.KindBonusGold
		color = model.ColorGold
	}
	for dy := 0; dy < 4; dy++ {
		for dx := 0; dx < 4; dx++ {
			e.board.Set(x+dx, y+dy, &model.Cell{Color: color, Kind: kind, PieceID: 0})
		}
	}

	e.effects = append(e.effects, &SquareEffect{
		X:               x,
		Y:               y,
		Gold:            gold,
		Timer:           BlinkPhase,
		FlashOn:         true,
		BlinksRemaining: BlinkCycles,
		Original:        original,
	})
	ev.BonusSquares = append(ev.BonusSquares, model.BonusSquare{
		Origin: model.Offset{X: x, Y: y},
		Gold:   gold,
	})
	e.logger.Info("bonus square formed",
		slog.Int("x", x),
		slog.Int("y", y),
		slog.Bool("gold", gold))
}
