package model

// Board dimensions
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Cell is an occupied board cell. PieceID records which locked piece produced
// the cell; 0 is reserved for bonus-square filler, which has no originating
// piece.
type Cell struct {
	Color   Color     `json:"color"`
	Kind    PieceKind `json:"kind"`
	PieceID uint32    `json:"piece_id"`
}

// Board is the fixed-size playfield. A nil entry is an empty cell.
type Board struct {
	Cells [BoardHeight][BoardWidth]*Cell `json:"cells"`
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{}
}

// At returns the cell at (x, y), or nil if empty or out of bounds
func (b *Board) At(x, y int) *Cell {
	if x < 0 || x >= BoardWidth || y < 0 || y >= BoardHeight {
		return nil
	}
	return b.Cells[y][x]
}

// Set places a cell at (x, y). Out-of-bounds coordinates are ignored.
func (b *Board) Set(x, y int, cell *Cell) {
	if x < 0 || x >= BoardWidth || y < 0 || y >= BoardHeight {
		return
	}
	b.Cells[y][x] = cell
}

// Collides reports whether the shape at the given anchor position would fall
// outside the playfield or land on an occupied cell. Pure query; used before
// every attempted move, rotation, or spawn.
func (b *Board) Collides(shape Shape, pos Offset) bool {
	for _, off := range shape {
		x := pos.X + off.X
		y := pos.Y + off.Y
		if x < 0 || x >= BoardWidth || y < 0 || y >= BoardHeight {
			return true
		}
		if b.Cells[y][x] != nil {
			return true
		}
	}
	return false
}

// RowFull reports whether every cell in the row is occupied, of any kind
// including bonus fillers
func (b *Board) RowFull(y int) bool {
	for x := 0; x < BoardWidth; x++ {
		if b.Cells[y][x] == nil {
			return false
		}
	}
	return true
}

// FullRows returns the indices of all full rows, top to bottom
func (b *Board) FullRows() []int {
	var rows []int
	for y := 0; y < BoardHeight; y++ {
		if b.RowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// RemoveRows deletes the given rows, shifts the rows above them down, and
// inserts empty rows at the top
func (b *Board) RemoveRows(rows []int) {
	if len(rows) == 0 {
		return
	}
	remove := make(map[int]bool, len(rows))
	for _, y := range rows {
		remove[y] = true
	}
	dst := BoardHeight - 1
	for y := BoardHeight - 1; y >= 0; y-- {
		if remove[y] {
			continue
		}
		b.Cells[dst] = b.Cells[y]
		dst--
	}
	for ; dst >= 0; dst-- {
		b.Cells[dst] = [BoardWidth]*Cell{}
	}
}

// Fullness returns the number of rows from the topmost occupied row to the
// floor, or 0 for an empty board. Panic mode triggers off this value.
func (b *Board) Fullness() int {
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			if b.Cells[y][x] != nil {
				return BoardHeight - y
			}
		}
	}
	return 0
}

// Clone returns a deep copy of the board for read-only snapshots
func (b *Board) Clone() *Board {
	clone := &Board{}
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			if cell := b.Cells[y][x]; cell != nil {
				c := *cell
				clone.Cells[y][x] = &c
			}
		}
	}
	return clone
}
