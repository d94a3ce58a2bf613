package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/pmorrell/blockfall/internal/dependencies/mocks"
	"github.com/pmorrell/blockfall/internal/model"
	"github.com/pmorrell/blockfall/internal/services/profile"
	"github.com/pmorrell/blockfall/internal/sse"
	"github.com/pmorrell/blockfall/internal/storage/memory"
	"github.com/pmorrell/blockfall/internal/testutil"
)

type ManagerSuite struct {
	suite.Suite
	ctx      context.Context
	clock    *mocks.MockClock
	random   *mocks.MockRandom
	storage  *memory.Storage
	profiles *profile.Service
	manager  *Manager
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerSuite))
}

func (s *ManagerSuite) SetupTest() {
	logger := testutil.NopLogger()
	s.ctx = context.Background()
	s.clock = mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.storage = memory.New()
	s.profiles = profile.New(s.storage, s.clock, logger)
	broadcaster := sse.NewBroadcaster(sse.NewHubManager(logger), logger)
	s.manager = NewManager(s.profiles, s.clock, s.random, broadcaster, logger)
	// Keep the background loop dormant so tests drive ticks themselves.
	s.manager.tickInterval = time.Hour
}

func (s *ManagerSuite) TearDownTest() {
	s.manager.CloseAll()
}

func (s *ManagerSuite) create(opts model.SessionOptions) *Session {
	s.random.QueueString("SESSAAAAAAAA")
	snap, err := s.manager.Create(s.ctx, "player-1", opts)
	s.Require().NoError(err)
	sess, err := s.manager.Get(snap.SessionID)
	s.Require().NoError(err)
	return sess
}

func pressed() model.KeyState { return model.KeyState{Pressed: true, Held: true} }

func (s *ManagerSuite) TestCreateDefaultsOptionsAndSpawns() {
	s.random.QueueString("SESSAAAAAAAA")
	snap, err := s.manager.Create(s.ctx, "player-1", model.SessionOptions{})
	s.Require().NoError(err)

	s.Equal(model.SessionID("SESSAAAAAAAA"), snap.SessionID)
	s.Equal(model.PlayerID("player-1"), snap.PlayerID)
	s.Equal(model.DifficultyNormal, snap.Options.Difficulty)
	s.Equal(model.GameModeClassic, snap.Options.GameMode)
	s.Require().NotNil(snap.Active)
	s.Require().NotNil(snap.Next)
	s.Nil(snap.Held)
	s.Equal(0, snap.Score)
	s.False(snap.GameOver)
	s.Equal(1, s.manager.Count())
}

func (s *ManagerSuite) TestCreateUsesProfileTrack() {
	prof := model.DefaultProfile("player-1")
	prof.LastTrack = 2
	s.Require().NoError(s.profiles.Save(s.ctx, prof))

	sess := s.create(model.SessionOptions{})
	s.Equal(2, sess.Options.Track)

	snap, err := s.manager.Snapshot(sess.ID)
	s.Require().NoError(err)
	s.Equal(2, snap.Track)
}

func (s *ManagerSuite) TestCreateSavesSelectedTrack() {
	s.create(model.SessionOptions{Track: 1})

	prof, err := s.profiles.Get(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(1, prof.LastTrack)
}

func (s *ManagerSuite) TestInputUnknownSession() {
	err := s.manager.Input("missing", model.Input{})
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *ManagerSuite) TestStepAdvancesGravity() {
	sess := s.create(model.SessionOptions{})

	s.clock.Advance(400 * time.Millisecond)
	s.False(s.manager.step(sess))

	snap, err := s.manager.Snapshot(sess.ID)
	s.Require().NoError(err)
	s.Require().NotNil(snap.Active)
	s.Equal(1, snap.Active.Pos.Y)
}

func (s *ManagerSuite) TestPressedEdgeConsumedOnce() {
	sess := s.create(model.SessionOptions{})

	s.Require().NoError(s.manager.Input(sess.ID, model.Input{Left: model.KeyState{Pressed: true}}))

	s.clock.Advance(10 * time.Millisecond)
	s.manager.step(sess)
	snap, err := s.manager.Snapshot(sess.ID)
	s.Require().NoError(err)
	s.Equal(2, snap.Active.Pos.X)

	// No new input: the consumed edge must not move the piece again.
	s.clock.Advance(10 * time.Millisecond)
	s.manager.step(sess)
	snap, err = s.manager.Snapshot(sess.ID)
	s.Require().NoError(err)
	s.Equal(2, snap.Active.Pos.X)
}

func (s *ManagerSuite) TestHeldLevelPersistsAcrossTicks() {
	sess := s.create(model.SessionOptions{})

	s.Require().NoError(s.manager.Input(sess.ID, model.Input{Down: model.KeyState{Held: true}}))

	// Two soft-drop intervals at 15 cells per second.
	s.clock.Advance(140 * time.Millisecond)
	s.manager.step(sess)
	s.clock.Advance(140 * time.Millisecond)
	s.manager.step(sess)

	snap, err := s.manager.Snapshot(sess.ID)
	s.Require().NoError(err)
	s.Equal(4, snap.Active.Pos.Y)
}

func (s *ManagerSuite) TestGameOverRecordsResult() {
	sess := s.create(model.SessionOptions{Difficulty: model.DifficultyHard})

	// Hard-drop flat I pieces onto the same columns until the stack reaches
	// the spawn row and tops the game out.
	finished := false
	for i := 0; i < 30 && !finished; i++ {
		s.Require().NoError(s.manager.Input(sess.ID, model.Input{Up: pressed()}))
		s.clock.Advance(time.Millisecond)
		finished = s.manager.step(sess)
	}
	s.Require().True(finished)

	snap, err := s.manager.Snapshot(sess.ID)
	s.Require().NoError(err)
	s.True(snap.GameOver)

	err = s.manager.Input(sess.ID, model.Input{})
	s.ErrorIs(err, model.ErrSessionFinished)

	history, err := s.profiles.History(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Require().Len(history, 1)
	s.Equal(sess.ID, history[0].SessionID)
	s.Equal(model.DifficultyHard, history[0].Difficulty)
	s.Equal(0, history[0].Lines)
	s.Positive(history[0].SpawnCounts[model.KindI])

	scores, err := s.profiles.Leaderboard(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(scores, 1)
	s.Equal(model.PlayerID("player-1"), scores[0].PlayerID)
}

func (s *ManagerSuite) TestToggleMuteReflectedInSnapshot() {
	sess := s.create(model.SessionOptions{})

	snap, err := s.manager.ToggleMute(sess.ID)
	s.Require().NoError(err)
	s.True(snap.Muted)

	snap, err = s.manager.ToggleMute(sess.ID)
	s.Require().NoError(err)
	s.False(snap.Muted)

	_, err = s.manager.ToggleMute("missing")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *ManagerSuite) TestNextTrackAdvancesAndSavesProfile() {
	sess := s.create(model.SessionOptions{Track: 1})

	snap, err := s.manager.NextTrack(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.Equal(2, snap.Track)

	prof, err := s.profiles.Get(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(2, prof.LastTrack)

	// The playlist wraps back to the first track.
	snap, err = s.manager.NextTrack(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.Equal(0, snap.Track)
}

func (s *ManagerSuite) TestAudioControlsRejectFinishedSession() {
	sess := s.create(model.SessionOptions{})

	finished := false
	for i := 0; i < 30 && !finished; i++ {
		s.Require().NoError(s.manager.Input(sess.ID, model.Input{Up: pressed()}))
		s.clock.Advance(time.Millisecond)
		finished = s.manager.step(sess)
	}
	s.Require().True(finished)

	_, err := s.manager.ToggleMute(sess.ID)
	s.ErrorIs(err, model.ErrSessionFinished)

	_, err = s.manager.NextTrack(s.ctx, sess.ID)
	s.ErrorIs(err, model.ErrSessionFinished)
}

func (s *ManagerSuite) TestCloseRemovesSession() {
	sess := s.create(model.SessionOptions{})

	s.Require().NoError(s.manager.Close(sess.ID))
	_, err := s.manager.Get(sess.ID)
	s.ErrorIs(err, model.ErrSessionNotFound)

	err = s.manager.Close(sess.ID)
	s.ErrorIs(err, model.ErrSessionNotFound)
}
