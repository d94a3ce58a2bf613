package bot

import (
	"context"
	"log/slog"

	"github.com/pmorrell/blockfall/internal/dependencies/random"
	"github.com/pmorrell/blockfall/internal/model"
	"github.com/pmorrell/blockfall/internal/services/audio"
	"github.com/pmorrell/blockfall/internal/services/sim"
)

const (
	// DefaultTickSeconds is the simulated time per tick for headless runs
	DefaultTickSeconds = 1.0 / 60.0
	// DefaultMaxTicks bounds a run that never tops out
	DefaultMaxTicks = 100000
)

// Result is the outcome of one headless run
type Result struct {
	Ticks       int                     `json:"ticks"`
	Score       int                     `json:"score"`
	Lines       int                     `json:"lines"`
	GameOver    bool                    `json:"game_over"`
	SpawnCounts map[model.PieceKind]int `json:"spawn_counts"`
}

// Runner plays one game to completion without a human attached
type Runner struct {
	engine   *sim.Engine
	director *audio.Director
	strategy Strategy
	logger   *slog.Logger
}

// NewRunner creates a runner with a fresh engine. Audio cues go to the given
// sink.
func NewRunner(rnd random.Random, strategy Strategy, sink audio.Sink, logger *slog.Logger) *Runner {
	return &Runner{
		engine:   sim.New(rnd, logger),
		director: audio.NewDirector(sink, logger),
		strategy: strategy,
		logger:   logger.With(slog.String("component", "bot-runner")),
	}
}

// Run plays until game over, maxTicks elapses, or the context is cancelled
func (r *Runner) Run(ctx context.Context, maxTicks int, dt float64) (*Result, error) {
	if maxTicks <= 0 {
		maxTicks = DefaultMaxTicks
	}
	if dt <= 0 {
		dt = DefaultTickSeconds
	}

	r.engine.Start()
	r.director.PlayNext()

	result := &Result{}
	for result.Ticks < maxTicks {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		in := r.strategy.Act(View{
			Board:  r.engine.Board(),
			Active: r.engine.Active(),
			Next:   r.engine.Next(),
			Held:   r.engine.Held(),
			Score:  r.engine.Score(),
			Lines:  r.engine.LinesCleared(),
			Panic:  r.engine.InPanic(),
		})

		ev := r.engine.Tick(dt, in)
		r.director.Consume(ev)
		result.Ticks++

		if ev.GameOver {
			result.GameOver = true
			break
		}
	}

	result.Score = r.engine.Score()
	result.Lines = r.engine.LinesCleared()
	result.SpawnCounts = r.engine.SpawnCounts()

	r.logger.Info("headless run finished",
		slog.Int("ticks", result.Ticks),
		slog.Int("score", result.Score),
		slog.Int("lines", result.Lines),
		slog.Bool("game_over", result.GameOver),
	)

	return result, nil
}
