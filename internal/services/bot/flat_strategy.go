package bot

import (
	"github.com/pmorrell/blockfall/internal/model"
)

// FlatStrategy steers each piece over the shallowest column and hard-drops
// it. No rotation; it keeps the stack low rather than playing well.
type FlatStrategy struct{}

// NewFlatStrategy creates a new FlatStrategy
func NewFlatStrategy() *FlatStrategy {
	return &FlatStrategy{}
}

// Act moves the active piece one column toward its target, dropping once
// aligned
func (s *FlatStrategy) Act(view View) model.Input {
	if view.Active == nil || view.Board == nil {
		return model.Input{}
	}

	target := s.targetAnchor(view.Board, view.Active)
	switch {
	case view.Active.Pos.X > target:
		return model.Input{Left: model.KeyState{Pressed: true}}
	case view.Active.Pos.X < target:
		return model.Input{Right: model.KeyState{Pressed: true}}
	default:
		return model.Input{Up: model.KeyState{Pressed: true}}
	}
}

// targetAnchor picks the anchor column that puts the piece over the
// shallowest stack, clamped so the piece stays in bounds
func (s *FlatStrategy) targetAnchor(board *model.Board, piece *model.Piece) int {
	heights := columnHeights(board)

	bestCol := 0
	for col := 1; col < model.BoardWidth; col++ {
		if heights[col] < heights[bestCol] {
			bestCol = col
		}
	}

	minX, maxX := piece.Shape[0].X, piece.Shape[0].X
	for _, off := range piece.Shape[1:] {
		if off.X < minX {
			minX = off.X
		}
		if off.X > maxX {
			maxX = off.X
		}
	}

	anchor := bestCol - minX
	if anchor < -minX {
		anchor = -minX
	}
	if anchor > model.BoardWidth-1-maxX {
		anchor = model.BoardWidth - 1 - maxX
	}
	return anchor
}

// columnHeights returns the stack height of each column
func columnHeights(board *model.Board) [model.BoardWidth]int {
	var heights [model.BoardWidth]int
	for col := 0; col < model.BoardWidth; col++ {
		for row := 0; row < model.BoardHeight; row++ {
			if board.At(col, row) != nil {
				heights[col] = model.BoardHeight - row
				break
			}
		}
	}
	return heights
}
