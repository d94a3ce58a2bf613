package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollidesWalls(t *testing.T) {
	b := NewBoard()
	shape := KindShape(KindI) // occupies columns 0..3 of its row

	assert.False(t, b.Collides(shape, Offset{X: 0, Y: 0}))
	assert.False(t, b.Collides(shape, Offset{X: BoardWidth - 4, Y: 0}))
	assert.True(t, b.Collides(shape, Offset{X: -1, Y: 0}), "left wall")
	assert.True(t, b.Collides(shape, Offset{X: BoardWidth - 3, Y: 0}), "right wall")
	assert.True(t, b.Collides(shape, Offset{X: 0, Y: BoardHeight}), "floor")
	assert.True(t, b.Collides(shape, Offset{X: 0, Y: -1}), "ceiling")
}

func TestCollidesOccupiedCell(t *testing.T) {
	b := NewBoard()
	b.Set(4, 10, &Cell{Kind: KindO, PieceID: 1})

	shape := KindShape(KindO)
	assert.True(t, b.Collides(shape, Offset{X: 4, Y: 10}))
	assert.True(t, b.Collides(shape, Offset{X: 3, Y: 9}), "overlaps via (1,1) offset")
	assert.False(t, b.Collides(shape, Offset{X: 5, Y: 10}))
	assert.False(t, b.Collides(shape, Offset{X: 4, Y: 11}))
}

func TestCollidesIsPure(t *testing.T) {
	b := NewBoard()
	b.Set(0, 19, &Cell{Kind: KindI, PieceID: 1})

	_ = b.Collides(KindShape(KindI), Offset{X: 0, Y: 19})

	occupied := 0
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			if b.At(x, y) != nil {
				occupied++
			}
		}
	}
	assert.Equal(t, 1, occupied)
}

func fillRow(b *Board, y int, id uint32) {
	for x := 0; x < BoardWidth; x++ {
		b.Set(x, y, &Cell{Kind: KindI, PieceID: id})
	}
}

func TestRemoveRowsShiftsAndInsertsEmpty(t *testing.T) {
	b := NewBoard()
	fillRow(b, 3, 1)
	fillRow(b, 7, 2)
	// A marker cell above row 3 and one between the full rows
	b.Set(0, 2, &Cell{Kind: KindT, PieceID: 3})
	b.Set(5, 5, &Cell{Kind: KindS, PieceID: 4})

	rows := b.FullRows()
	require.Equal(t, []int{3, 7}, rows)

	b.RemoveRows(rows)

	// Marker above both removed rows shifts down by 2
	require.NotNil(t, b.At(0, 4))
	assert.Equal(t, uint32(3), b.At(0, 4).PieceID)
	// Marker between the removed rows shifts down by 1 (only row 7 was below it)
	require.NotNil(t, b.At(5, 6))
	assert.Equal(t, uint32(4), b.At(5, 6).PieceID)
	// Top rows are empty
	for y := 0; y < 2; y++ {
		for x := 0; x < BoardWidth; x++ {
			assert.Nil(t, b.At(x, y))
		}
	}
	assert.Empty(t, b.FullRows())
}

func TestFullness(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, 0, b.Fullness())

	b.Set(9, 19, &Cell{Kind: KindI, PieceID: 1})
	assert.Equal(t, 1, b.Fullness())

	b.Set(0, 8, &Cell{Kind: KindI, PieceID: 2})
	assert.Equal(t, 12, b.Fullness())
}

func TestCloneIsDeep(t *testing.T) {
	b := NewBoard()
	b.Set(2, 2, &Cell{Kind: KindZ, PieceID: 7})

	clone := b.Clone()
	clone.At(2, 2).PieceID = 99
	clone.Set(3, 3, &Cell{Kind: KindJ, PieceID: 8})

	assert.Equal(t, uint32(7), b.At(2, 2).PieceID)
	assert.Nil(t, b.At(3, 3))
}
