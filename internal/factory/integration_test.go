package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/pmorrell/blockfall/internal/model"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func (s *IntegrationSuite) TearDownTest() {
	s.app.SessionManager.CloseAll()
}

// Test: guest signup provisions a profile and can start a game
func (s *IntegrationSuite) TestGuestSignupToSession() {
	authSession, err := s.app.AuthService.CreateGuestPlayer(s.ctx, "Casey")
	s.Require().NoError(err)
	s.True(authSession.Player.IsGuest)

	prof, err := s.app.ProfileService.Get(s.ctx, authSession.PlayerID)
	s.Require().NoError(err)
	s.Equal("Casey", prof.DisplayName)

	s.app.MockRandom.QueueString("SESSAAAAAAAA")
	snap, err := s.app.SessionManager.Create(s.ctx, authSession.PlayerID, model.SessionOptions{})
	s.Require().NoError(err)
	s.Require().NotNil(snap.Active)
	s.False(snap.GameOver)

	err = s.app.SessionManager.Input(snap.SessionID, model.Input{Left: model.KeyState{Pressed: true}})
	s.Require().NoError(err)

	s.Require().NoError(s.app.SessionManager.Close(snap.SessionID))
}

// Test: register, log in, and keep the same identity and profile
func (s *IntegrationSuite) TestRegisterLoginKeepsProfile() {
	registered, err := s.app.AuthService.RegisterPlayer(s.ctx, "casey", "hunter22", "Casey")
	s.Require().NoError(err)
	s.False(registered.Player.IsGuest)

	prof, err := s.app.ProfileService.Get(s.ctx, registered.PlayerID)
	s.Require().NoError(err)
	prof.LastTrack = 2
	s.Require().NoError(s.app.ProfileService.Save(s.ctx, prof))

	loggedIn, err := s.app.AuthService.Login(s.ctx, "casey", "hunter22")
	s.Require().NoError(err)
	s.Equal(registered.PlayerID, loggedIn.PlayerID)

	prof, err = s.app.ProfileService.Get(s.ctx, loggedIn.PlayerID)
	s.Require().NoError(err)
	s.Equal(2, prof.LastTrack)
}

// Test: recorded results flow into history, best banner, and leaderboard
func (s *IntegrationSuite) TestResultsFeedLeaderboard() {
	first, err := s.app.AuthService.CreateGuestPlayer(s.ctx, "Alex")
	s.Require().NoError(err)
	second, err := s.app.AuthService.CreateGuestPlayer(s.ctx, "Sam")
	s.Require().NoError(err)

	record := func(playerID model.PlayerID, sessionID string, score, lines int) {
		err := s.app.ProfileService.RecordResult(s.ctx, &model.GameSummary{
			SessionID: model.SessionID(sessionID),
			PlayerID:  playerID,
			Score:     score,
			Lines:     lines,
			GameMode:  model.GameModeClassic,
			EndedAt:   s.app.MockClock.Now(),
		})
		s.Require().NoError(err)
	}

	record(first.PlayerID, "sess-1", 700, 4)
	s.app.MockClock.Advance(time.Minute)
	record(first.PlayerID, "sess-2", 300, 2) // worse run keeps the best
	s.app.MockClock.Advance(time.Minute)
	record(second.PlayerID, "sess-3", 500, 3)

	prof, err := s.app.ProfileService.Get(s.ctx, first.PlayerID)
	s.Require().NoError(err)
	s.Equal(700, prof.HighScore)
	s.Equal(4, prof.LineCount)

	history, err := s.app.ProfileService.History(s.ctx, first.PlayerID)
	s.Require().NoError(err)
	s.Len(history, 2)

	scores, err := s.app.ProfileService.Leaderboard(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(scores, 2)
	s.Equal(first.PlayerID, scores[0].PlayerID)
	s.Equal(700, scores[0].Score)
	s.Equal(second.PlayerID, scores[1].PlayerID)
}

// Test: a session start records the chosen track on the profile
func (s *IntegrationSuite) TestSessionTrackRoundTrip() {
	authSession, err := s.app.AuthService.CreateGuestPlayer(s.ctx, "Robin")
	s.Require().NoError(err)

	s.app.MockRandom.QueueString("SESSBBBBBBBB")
	snap, err := s.app.SessionManager.Create(s.ctx, authSession.PlayerID, model.SessionOptions{Track: 1})
	s.Require().NoError(err)
	s.Equal(1, snap.Track)

	prof, err := s.app.ProfileService.Get(s.ctx, authSession.PlayerID)
	s.Require().NoError(err)
	s.Equal(1, prof.LastTrack)
}
