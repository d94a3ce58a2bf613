// Package sim implements the deterministic game-state simulation core: the
// board, piece movement and rotation legality, the lock and line-clear
// pipeline, bonus-square detection, and per-tick orchestration under player
// input and gravity.
package sim

import (
	"log/slog"

	"github.com/pmorrell/blockfall/internal/dependencies/random"
	"github.com/pmorrell/blockfall/internal/model"
)

// Timing and scoring constants. Times are in seconds.
const (
	FallSpeed     = 3.0  // cells per second under normal gravity
	SoftDropSpeed = 15.0 // cells per second while down is held

	InitialHorizontalDelay = 0.2 // before horizontal auto-repeat begins
	HorizontalRepeatDelay  = 0.1 // between auto-repeated horizontal moves

	LineClearDelay = 0.27 // full rows stay visible this long before collapse

	BlinkPhase  = 0.3 // seconds per bonus-square flash phase
	BlinkCycles = 6   // on-off cycles before a bonus effect settles

	GoldPoints   = 500
	SilverPoints = 200

	PanicThreshold = 12 // board fullness at which panic mode engages
)

// SquareEffect is an in-progress bonus-square reveal: the region flashes
// between the bonus color and the original cell colors until its blink budget
// is exhausted. The cells themselves were converted at detection time.
type SquareEffect struct {
	X               int              `json:"x"` // top-left of the 4x4 region
	Y               int              `json:"y"`
	Gold            bool             `json:"gold"` // false means silver
	Timer           float64          `json:"timer"`
	FlashOn         bool             `json:"flash_on"`
	BlinksRemaining int              `json:"blinks_remaining"`
	Original        [4][4]model.Cell `json:"original"` // colors shown during the off phase
}

// Engine owns one game's mutable state and advances it tick by tick. It has a
// single owner and a single mutator; it is not safe for concurrent use.
type Engine struct {
	rnd    random.Random
	logger *slog.Logger

	board  *model.Board
	active *model.Piece
	next   *model.Piece
	held   *model.Piece

	holdUsed bool
	started  bool
	paused   bool
	inPanic  bool
	gameOver bool

	score        int
	linesCleared int

	leftTimer  float64
	rightTimer float64
	fallTimer  float64

	clearTimer   float64
	clearingRows []int
	pendingBonus int

	effects     []*SquareEffect
	nextPieceID uint32
	spawnCounts map[model.PieceKind]int
}

// New creates an engine. Call Start to begin a game.
func New(rnd random.Random, logger *slog.Logger) *Engine {
	return &Engine{
		rnd:         rnd,
		logger:      logger,
		board:       model.NewBoard(),
		nextPieceID: 1,
		spawnCounts: newSpawnCounts(),
	}
}

func newSpawnCounts() map[model.PieceKind]int {
	counts := make(map[model.PieceKind]int, len(model.MovableKinds))
	for _, kind := range model.MovableKinds {
		counts[kind] = 0
	}
	return counts
}

// Start resets all state and spawns the first piece. It may be called again
// after game over to begin a fresh game.
func (e *Engine) Start() {
	e.board = model.NewBoard()
	e.active = nil
	e.next = nil
	e.held = nil
	e.holdUsed = false
	e.started = true
	e.paused = false
	e.inPanic = false
	e.gameOver = false
	e.score = 0
	e.linesCleared = 0
	e.leftTimer = 0
	e.rightTimer = 0
	e.fallTimer = 0
	e.clearTimer = 0
	e.clearingRows = nil
	e.pendingBonus = 0
	e.effects = nil
	e.nextPieceID = 1
	e.spawnCounts = newSpawnCounts()

	first := e.randomKind()
	e.active = model.NewPiece(first)
	e.spawnCounts[first]++
	e.next = model.NewPiece(e.randomKind())

	e.logger.Info("game started", slog.String("first_piece", first.String()))
}

func (e *Engine) randomKind() model.PieceKind {
	return model.MovableKinds[e.rnd.Intn(len(model.MovableKinds))]
}

// Tick advances the game by dt seconds under the given input snapshot and
// returns the discrete events the tick produced.
func (e *Engine) Tick(dt float64, in model.Input) model.TickEvents {
	var ev model.TickEvents

	if in.Pause.Pressed && !e.gameOver {
		e.paused = !e.paused
		ev.PauseToggled = true
		ev.Paused = e.paused
	}
	if e.paused || !e.started || e.gameOver {
		return ev
	}

	// A pending line clear freezes everything except its own timer.
	if len(e.clearingRows) > 0 {
		e.clearTimer -= dt
		if e.clearTimer <= 0 {
			e.collapseRows(&ev)
		}
		return ev
	}

	e.processInput(dt, in, &ev)
	if e.gameOver {
		return ev
	}

	if e.active != nil && len(e.clearingRows) == 0 {
		e.advanceGravity(dt, in.Down.Held, &ev)
	}
	if e.gameOver {
		return ev
	}

	e.updateEffects(dt)
	e.updatePanic(&ev)
	return ev
}

// advanceGravity accumulates dt against the current fall interval and steps
// the piece down once per elapsed interval, locking when blocked
func (e *Engine) advanceGravity(dt float64, softDrop bool, ev *model.TickEvents) {
	speed := FallSpeed
	if softDrop {
		speed = SoftDropSpeed
	}
	interval := 1.0 / speed

	e.fallTimer += dt
	for e.fallTimer >= interval {
		e.fallTimer -= interval
		below := model.Offset{X: e.active.Pos.X, Y: e.active.Pos.Y + 1}
		if e.board.Collides(e.active.Shape, below) {
			e.lockPiece(ev)
			return
		}
		e.active.Pos.Y++
		if softDrop {
			ev.SoftDropped = true
		}
	}
}

// processInput handles hard drop, horizontal movement with auto-repeat,
// rotation, and hold-swap. Movement on an absent active piece is a no-op.
func (e *Engine) processInput(dt float64, in model.Input, ev *model.TickEvents) {
	if in.Up.Pressed && e.active != nil {
		for {
			below := model.Offset{X: e.active.Pos.X, Y: e.active.Pos.Y + 1}
			if e.board.Collides(e.active.Shape, below) {
				break
			}
			e.active.Pos.Y++
		}
		ev.HardDropped = true
		e.lockPiece(ev)
		return
	}
	if e.active == nil {
		return
	}

	e.leftTimer = e.repeatHorizontal(dt, in.Left, -1, e.leftTimer, ev)
	e.rightTimer = e.repeatHorizontal(dt, in.Right, 1, e.rightTimer, ev)

	if in.RotateCCW.Pressed {
		e.tryRotate(false, ev)
	}
	if in.RotateCW.Pressed {
		e.tryRotate(true, ev)
	}

	if in.Hold.Pressed && !e.holdUsed {
		e.holdSwap(ev)
	}
}

// repeatHorizontal implements the initial-delay plus repeat-delay auto-repeat
// scheme for one direction and returns the updated direction timer
func (e *Engine) repeatHorizontal(dt float64, key model.KeyState, dx int, timer float64, ev *model.TickEvents) float64 {
	switch {
	case key.Pressed:
		if e.tryMove(dx, ev) {
			return InitialHorizontalDelay
		}
		return timer
	case key.Held:
		timer -= dt
		if timer <= 0 {
			if e.tryMove(dx, ev) {
				return HorizontalRepeatDelay
			}
		}
		return timer
	default:
		return 0
	}
}

func (e *Engine) tryMove(dx int, ev *model.TickEvents) bool {
	target := model.Offset{X: e.active.Pos.X + dx, Y: e.active.Pos.Y}
	if e.board.Collides(e.active.Shape, target) {
		return false
	}
	e.active.Pos = target
	ev.Moved = true
	return true
}

func (e *Engine) tryRotate(clockwise bool, ev *model.TickEvents) {
	rotated := model.RotateShape(e.active.Shape, e.active.Kind, clockwise)
	if e.board.Collides(rotated, e.active.Pos) {
		return
	}
	e.active.Shape = rotated
	ev.Rotated = true
}

// holdSwap banks the active piece. With an empty hold slot the current piece
// is stored and a new one spawned; with an occupied slot the pieces are
// exchanged, the retrieved piece reset to the spawn position. An exchange
// whose spawn position collides is rejected with no state change.
func (e *Engine) holdSwap(ev *model.TickEvents) {
	current := *e.active
	current.Shape = model.KindShape(current.Kind)
	current.Pos = model.SpawnPosition()

	if e.held != nil {
		retrieved := *e.held
		retrieved.Shape = model.KindShape(retrieved.Kind)
		retrieved.Pos = model.SpawnPosition()
		if e.board.Collides(retrieved.Shape, retrieved.Pos) {
			return
		}
		e.held = &current
		e.active = &retrieved
		e.holdUsed = true
		e.fallTimer = 0
		return
	}

	e.held = &current
	e.active = nil
	if e.spawnNext(ev) {
		// The spawn inside the swap does not re-arm the hold; only the next
		// post-lock spawn does.
		e.holdUsed = true
	}
}

// updateEffects advances bonus-square blink timers, toggling the flash each
// phase and dropping effects whose blink budget is spent
func (e *Engine) updateEffects(dt float64) {
	remaining := e.effects[:0]
	for _, eff := range e.effects {
		eff.Timer -= dt
		if eff.Timer <= 0 {
			eff.Timer = BlinkPhase
			eff.FlashOn = !eff.FlashOn
			if !eff.FlashOn && eff.BlinksRemaining > 0 {
				eff.BlinksRemaining--
			}
		}
		if eff.BlinksRemaining > 0 {
			remaining = append(remaining, eff)
		}
	}
	e.effects = remaining
}

func (e *Engine) updatePanic(ev *model.TickEvents) {
	fullness := e.board.Fullness()
	if fullness >= PanicThreshold && !e.inPanic {
		e.inPanic = true
		ev.PanicToggled = true
		ev.Panic = true
	} else if fullness < PanicThreshold && e.inPanic {
		e.inPanic = false
		ev.PanicToggled = true
		ev.Panic = false
	}
}
