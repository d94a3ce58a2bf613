package model

// PieceKind identifies one of the seven movable tetromino shapes, or one of
// the two bonus-filler markers that only ever appear on locked board cells.
type PieceKind int

const (
	KindI PieceKind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
	KindBonusGold
	KindBonusSilver
)

// MovableKinds lists the kinds a spawned piece can take, in catalog order.
var MovableKinds = [7]PieceKind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// String returns a short human-readable name for the kind
func (k PieceKind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindBonusGold:
		return "bonus-gold"
	case KindBonusSilver:
		return "bonus-silver"
	}
	return "unknown"
}

// Movable returns true for the seven kinds a spawned piece can take
func (k PieceKind) Movable() bool {
	return k >= KindI && k <= KindL
}

// Bonus returns true for the two bonus-filler marker kinds
func (k PieceKind) Bonus() bool {
	return k == KindBonusGold || k == KindBonusSilver
}

// Offset is a grid coordinate or a relative cell offset
type Offset struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Shape is the set of cells a piece occupies, relative to its anchor
type Shape [4]Offset

// Color is an RGBA color with components in [0, 1]
type Color struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
	A float32 `json:"a"`
}

// Canonical shapes for the seven movable kinds
var pieceShapes = [7]Shape{
	{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, // I
	{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, // O
	{{1, 0}, {0, 1}, {1, 1}, {2, 1}}, // T
	{{1, 0}, {2, 0}, {0, 1}, {1, 1}}, // S
	{{0, 0}, {1, 0}, {1, 1}, {2, 1}}, // Z
	{{0, 0}, {0, 1}, {1, 1}, {2, 1}}, // J
	{{0, 0}, {1, 0}, {2, 0}, {0, 1}}, // L
}

// Rotation pivots. O has a zero pivot and is rotation-invariant.
var piecePivots = [7]Offset{
	{1, 0}, // I
	{0, 0}, // O
	{1, 1}, // T
	{1, 1}, // S
	{1, 1}, // Z
	{1, 1}, // J
	{1, 1}, // L
}

var pieceColors = [7]Color{
	{0.0, 1.0, 1.0, 1.0},    // I
	{1.0, 1.0, 0.0, 1.0},    // O
	{0.6667, 0.0, 1.0, 1.0}, // T
	{0.0, 1.0, 0.0, 1.0},    // S
	{1.0, 0.0, 0.0, 1.0},    // Z
	{0.0, 0.0, 1.0, 1.0},    // J
	{1.0, 0.3334, 0.0, 1.0}, // L
}

// Bonus filler colors
var (
	ColorGold   = Color{1.0, 0.84, 0.0, 1.0}
	ColorSilver = Color{0.75, 0.75, 0.75, 1.0}
)

// KindShape returns the canonical (unrotated) shape for a movable kind
func KindShape(k PieceKind) Shape {
	return pieceShapes[k]
}

// KindColor returns the catalog color for a movable kind
func KindColor(k PieceKind) Color {
	return pieceColors[k]
}

// SpawnPosition is the canonical anchor position for a freshly spawned piece:
// horizontally centered on the top row.
func SpawnPosition() Offset {
	return Offset{X: BoardWidth/2 - 2, Y: 0}
}

// Piece is an active, next, or held tetromino. It is a value: moved and
// rotated in place while active, consumed into board cells at lock time.
type Piece struct {
	Shape Shape     `json:"shape"`
	Pos   Offset    `json:"pos"`
	Color Color     `json:"color"`
	Kind  PieceKind `json:"kind"`
}

// NewPiece creates a piece of the given movable kind at the spawn position
func NewPiece(kind PieceKind) *Piece {
	return &Piece{
		Shape: pieceShapes[kind],
		Pos:   SpawnPosition(),
		Color: pieceColors[kind],
		Kind:  kind,
	}
}

// Cells returns the absolute board coordinates the piece occupies
func (p *Piece) Cells() [4]Offset {
	var cells [4]Offset
	for i, off := range p.Shape {
		cells[i] = Offset{X: p.Pos.X + off.X, Y: p.Pos.Y + off.Y}
	}
	return cells
}

// RotateShape rotates a shape 90 degrees about the kind's pivot.
// Clockwise maps a pivot-relative (x, y) to (y, -x); counter-clockwise maps
// it to (-y, x). No wall-kick search is performed; callers reject rotations
// that collide and keep the shape unchanged.
func RotateShape(shape Shape, kind PieceKind, clockwise bool) Shape {
	pivot := piecePivots[kind]
	var rotated Shape
	for i, off := range shape {
		relX := off.X - pivot.X
		relY := off.Y - pivot.Y
		if clockwise {
			rotated[i] = Offset{X: pivot.X + relY, Y: pivot.Y - relX}
		} else {
			rotated[i] = Offset{X: pivot.X - relY, Y: pivot.Y + relX}
		}
	}
	return rotated
}
