// Package bot drives a game headlessly: a strategy looks at the current
// state each tick and produces input, and a runner feeds that input to an
// engine until the game ends. Used for demos and soak testing.
package bot

import "github.com/pmorrell/blockfall/internal/model"

// View is the read-only state a strategy decides from
type View struct {
	Board  *model.Board
	Active *model.Piece
	Next   *model.Piece
	Held   *model.Piece
	Score  int
	Lines  int
	Panic  bool
}

// Strategy produces one tick's input from the current game state
type Strategy interface {
	Act(view View) model.Input
}
