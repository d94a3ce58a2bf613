package sim

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/pmorrell/blockfall/internal/dependencies/mocks"
	"github.com/pmorrell/blockfall/internal/model"
	"github.com/pmorrell/blockfall/internal/testutil"
)

type BonusSuite struct {
	suite.Suite
	engine *Engine
}

func TestBonusSuite(t *testing.T) {
	suite.Run(t, new(BonusSuite))
}

func (s *BonusSuite) SetupTest() {
	s.engine = New(mocks.NewMockRandom(), testutil.NopLogger())
	s.engine.Start()
}

// placeBlock fills a 2x2 region with cells of one piece id and kind
func (s *BonusSuite) placeBlock(id uint32, kind model.PieceKind, x, y int) {
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 2; dx++ {
			s.engine.board.Set(x+dx, y+dy, &model.Cell{
				Color:   model.KindColor(kind),
				Kind:    kind,
				PieceID: id,
			})
		}
	}
}

func (s *BonusSuite) TestGoldSquareFromMatchingKinds() {
	s.placeBlock(101, model.KindO, 0, 16)
	s.placeBlock(102, model.KindO, 2, 16)
	s.placeBlock(103, model.KindO, 0, 18)
	s.placeBlock(104, model.KindO, 2, 18)

	var ev model.TickEvents
	s.engine.detectSquares(&ev)

	s.Require().Len(ev.BonusSquares, 1)
	s.Equal(model.Offset{X: 0, Y: 16}, ev.BonusSquares[0].Origin)
	s.True(ev.BonusSquares[0].Gold)

	for y := 16; y < 20; y++ {
		for x := 0; x < 4; x++ {
			cell := s.engine.board.At(x, y)
			s.Require().NotNil(cell)
			s.Equal(model.KindBonusGold, cell.Kind)
			s.Equal(uint32(0), cell.PieceID)
			s.Equal(model.ColorGold, cell.Color)
		}
	}

	effects := s.engine.Effects()
	s.Require().Len(effects, 1)
	s.True(effects[0].Gold)
	s.True(effects[0].FlashOn)
	s.Equal(BlinkCycles, effects[0].BlinksRemaining)
	s.Equal(model.KindO, effects[0].Original[0][0].Kind, "original cells preserved for the off phase")
}

func (s *BonusSuite) TestSilverSquareFromMixedKinds() {
	s.placeBlock(101, model.KindO, 0, 16)
	s.placeBlock(102, model.KindO, 2, 16)
	s.placeBlock(103, model.KindS, 0, 18)
	s.placeBlock(104, model.KindZ, 2, 18)

	var ev model.TickEvents
	s.engine.detectSquares(&ev)

	s.Require().Len(ev.BonusSquares, 1)
	s.False(ev.BonusSquares[0].Gold)
	s.Equal(model.KindBonusSilver, s.engine.board.At(0, 16).Kind)
	s.Equal(model.ColorSilver, s.engine.board.At(3, 19).Color)
}

func (s *BonusSuite) TestStraddlingPieceDisqualifiesWindow() {
	s.placeBlock(101, model.KindO, 0, 16)
	s.placeBlock(102, model.KindO, 2, 16)
	s.placeBlock(103, model.KindO, 0, 18)
	s.placeBlock(104, model.KindO, 2, 18)
	// One extra cell of piece 104 outside the window
	s.engine.board.Set(4, 19, &model.Cell{Kind: model.KindO, PieceID: 104})

	var ev model.TickEvents
	s.engine.detectSquares(&ev)

	s.Empty(ev.BonusSquares)
	s.Equal(model.KindO, s.engine.board.At(0, 16).Kind, "no conversion on a disqualified window")
	s.Empty(s.engine.Effects())
}

func (s *BonusSuite) TestDetectionIsIdempotent() {
	s.placeBlock(101, model.KindO, 0, 16)
	s.placeBlock(102, model.KindO, 2, 16)
	s.placeBlock(103, model.KindO, 0, 18)
	s.placeBlock(104, model.KindO, 2, 18)

	var ev model.TickEvents
	s.engine.detectSquares(&ev)
	s.Require().Len(ev.BonusSquares, 1)

	var again model.TickEvents
	s.engine.detectSquares(&again)
	s.Empty(again.BonusSquares)
	s.Len(s.engine.Effects(), 1)
}

func (s *BonusSuite) TestRowBonusPrecedence() {
	for x := 0; x < model.BoardWidth; x++ {
		s.engine.board.Set(x, 17, &model.Cell{Kind: model.KindO, PieceID: 80})
		s.engine.board.Set(x, 18, &model.Cell{Kind: model.KindO, PieceID: 81})
		s.engine.board.Set(x, 19, &model.Cell{Kind: model.KindO, PieceID: 82})
	}
	s.engine.board.Set(0, 18, &model.Cell{Kind: model.KindBonusSilver, PieceID: 0})
	s.engine.board.Set(0, 19, &model.Cell{Kind: model.KindBonusSilver, PieceID: 0})
	s.engine.board.Set(9, 19, &model.Cell{Kind: model.KindBonusGold, PieceID: 0})

	s.Equal(0, s.engine.rowBonus(17), "plain full row scores nothing")
	s.Equal(SilverPoints, s.engine.rowBonus(18))
	s.Equal(GoldPoints, s.engine.rowBonus(19), "gold wins over silver in the same row")
}

func (s *BonusSuite) TestGoldScoredWhenFillerRowClears() {
	s.placeBlock(101, model.KindO, 0, 16)
	s.placeBlock(102, model.KindO, 2, 16)
	s.placeBlock(103, model.KindO, 0, 18)
	s.placeBlock(104, model.KindO, 2, 18)
	var ev model.TickEvents
	s.engine.detectSquares(&ev)
	s.Require().Len(ev.BonusSquares, 1)
	s.Zero(s.engine.Score(), "formation alone awards nothing")

	for x := 4; x < 9; x++ {
		s.engine.board.Set(x, 19, &model.Cell{Kind: model.KindJ, PieceID: 110})
	}
	// Drop a vertical I into the last column to complete the bottom row
	s.engine.active = &model.Piece{
		Shape: model.RotateShape(model.KindShape(model.KindI), model.KindI, true),
		Pos:   model.Offset{X: 8, Y: 18},
		Color: model.KindColor(model.KindI),
		Kind:  model.KindI,
	}

	tick := s.engine.Tick(0.016, model.Input{Up: model.KeyState{Pressed: true, Held: true}})
	s.True(tick.Locked)
	s.Equal([]int{19}, tick.LinesClearing)

	tick = s.engine.Tick(LineClearDelay+0.01, model.Input{})
	s.Equal(1, tick.LinesCleared)
	s.Equal(GoldPoints, tick.ClearBonus)
	s.Equal(GoldPoints, s.engine.Score())
	s.Equal(1, s.engine.LinesCleared())
}

func (s *BonusSuite) TestSquareFormedByCollapse() {
	// Two matching blocks above a soon-to-clear full row, two below it. The
	// collapse closes the gap and assembles the 4x4.
	s.placeBlock(101, model.KindO, 0, 14)
	s.placeBlock(102, model.KindO, 2, 14)
	for x := 0; x < model.BoardWidth; x++ {
		s.engine.board.Set(x, 16, &model.Cell{Kind: model.KindJ, PieceID: 199})
	}
	s.placeBlock(103, model.KindO, 0, 17)
	s.placeBlock(104, model.KindO, 2, 17)

	var pre model.TickEvents
	s.engine.detectSquares(&pre)
	s.Require().Empty(pre.BonusSquares, "no square before the collapse")

	// Lock a vertical I clear of the structure to trigger the row scan
	s.engine.active = &model.Piece{
		Shape: model.RotateShape(model.KindShape(model.KindI), model.KindI, true),
		Pos:   model.Offset{X: 8, Y: 14},
		Color: model.KindColor(model.KindI),
		Kind:  model.KindI,
	}
	tick := s.engine.Tick(0.016, model.Input{Up: model.KeyState{Pressed: true, Held: true}})
	s.Require().Equal([]int{16}, tick.LinesClearing)

	tick = s.engine.Tick(LineClearDelay+0.01, model.Input{})
	s.Equal(1, tick.LinesCleared)
	s.Require().Len(tick.BonusSquares, 1)
	s.Equal(model.Offset{X: 0, Y: 15}, tick.BonusSquares[0].Origin)
	s.True(tick.BonusSquares[0].Gold)
	s.Equal(model.KindBonusGold, s.engine.board.At(0, 15).Kind)
}

func (s *BonusSuite) TestEffectBlinksAndExpires() {
	s.placeBlock(101, model.KindO, 0, 16)
	s.placeBlock(102, model.KindO, 2, 16)
	s.placeBlock(103, model.KindO, 0, 18)
	s.placeBlock(104, model.KindO, 2, 18)
	var ev model.TickEvents
	s.engine.detectSquares(&ev)
	s.Require().Len(s.engine.Effects(), 1)

	// Park the simulation so only effect timers advance
	s.engine.active = nil

	s.engine.Tick(BlinkPhase+0.01, model.Input{})
	effects := s.engine.Effects()
	s.Require().Len(effects, 1)
	s.False(effects[0].FlashOn)
	s.Equal(BlinkCycles-1, effects[0].BlinksRemaining)

	s.engine.Tick(BlinkPhase+0.01, model.Input{})
	effects = s.engine.Effects()
	s.Require().Len(effects, 1)
	s.True(effects[0].FlashOn)

	for i := 0; i < 2*BlinkCycles; i++ {
		s.engine.Tick(BlinkPhase+0.01, model.Input{})
	}
	s.Empty(s.engine.Effects())
}
