package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpawnPosition(t *testing.T) {
	p := NewPiece(KindT)
	assert.Equal(t, Offset{X: 3, Y: 0}, p.Pos)
	assert.Equal(t, KindShape(KindT), p.Shape)
	assert.Equal(t, KindColor(KindT), p.Color)
}

func TestCellsAreAbsolute(t *testing.T) {
	p := NewPiece(KindO)
	p.Pos = Offset{X: 4, Y: 10}

	cells := p.Cells()
	assert.ElementsMatch(t,
		[]Offset{{4, 10}, {5, 10}, {4, 11}, {5, 11}},
		cells[:])
}

func TestRotateOIsInvariant(t *testing.T) {
	shape := KindShape(KindO)
	assert.Equal(t, shape, RotateShape(shape, KindO, true))
	assert.Equal(t, shape, RotateShape(shape, KindO, false))
}

func TestRotateRoundTrips(t *testing.T) {
	for _, kind := range MovableKinds {
		shape := KindShape(kind)
		cw := RotateShape(shape, kind, true)
		back := RotateShape(cw, kind, false)
		assert.Equal(t, shape, back, "cw then ccw must restore %s", kind)

		full := shape
		for i := 0; i < 4; i++ {
			full = RotateShape(full, kind, true)
		}
		assert.Equal(t, shape, full, "four cw rotations must restore %s", kind)
	}
}

func TestRotateIClockwise(t *testing.T) {
	// I pivots about (1, 0): the flat bar becomes a vertical bar through x=1
	got := RotateShape(KindShape(KindI), KindI, true)
	assert.ElementsMatch(t,
		[]Offset{{1, 1}, {1, 0}, {1, -1}, {1, -2}},
		got[:])
}

func TestBonusKindsAreNotMovable(t *testing.T) {
	assert.False(t, KindBonusGold.Movable())
	assert.False(t, KindBonusSilver.Movable())
	assert.True(t, KindBonusGold.Bonus())
	for _, kind := range MovableKinds {
		assert.True(t, kind.Movable())
		assert.False(t, kind.Bonus())
	}
}
