package bot_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/pmorrell/blockfall/internal/dependencies/random"
	"github.com/pmorrell/blockfall/internal/model"
	"github.com/pmorrell/blockfall/internal/services/audio"
	"github.com/pmorrell/blockfall/internal/services/bot"
	"github.com/pmorrell/blockfall/internal/testutil"
)

type discardSink struct{}

func (discardSink) Cue(audio.Cue) {}

type RunnerSuite struct {
	suite.Suite
	ctx context.Context
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerSuite))
}

func (s *RunnerSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *RunnerSuite) TestRandomRunCompletes() {
	runner := bot.NewRunner(random.New(), bot.NewRandomStrategy(random.New()), discardSink{}, testutil.NopLogger())

	result, err := runner.Run(s.ctx, 50000, 0)
	s.Require().NoError(err)
	s.Positive(result.Ticks)
	s.GreaterOrEqual(result.Score, 0)
	s.GreaterOrEqual(result.Lines, 0)
	if result.GameOver {
		s.Less(result.Ticks, 50000)
	}

	total := 0
	for _, kind := range model.MovableKinds {
		total += result.SpawnCounts[kind]
	}
	s.Positive(total)
}

func (s *RunnerSuite) TestFlatRunTopsOut() {
	// Flat stacking never rotates, so overhanging shapes bury holes and the
	// stack eventually reaches the spawn row.
	runner := bot.NewRunner(random.New(), bot.NewFlatStrategy(), discardSink{}, testutil.NopLogger())

	result, err := runner.Run(s.ctx, 0, 0)
	s.Require().NoError(err)
	s.True(result.GameOver)
}

func (s *RunnerSuite) TestRunHonorsContextCancellation() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	runner := bot.NewRunner(random.New(), bot.NewFlatStrategy(), discardSink{}, testutil.NopLogger())
	_, err := runner.Run(ctx, 100, 0)
	s.ErrorIs(err, context.Canceled)
}
