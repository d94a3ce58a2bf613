// Package session owns the lifecycle of running games: it creates an engine
// and an audio director per session, drives them from a per-session tick
// goroutine, fans results out over SSE, and records the final result when a
// game ends.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pmorrell/blockfall/internal/dependencies/clock"
	"github.com/pmorrell/blockfall/internal/dependencies/random"
	"github.com/pmorrell/blockfall/internal/model"
	"github.com/pmorrell/blockfall/internal/services/audio"
	"github.com/pmorrell/blockfall/internal/services/profile"
	"github.com/pmorrell/blockfall/internal/services/sim"
	"github.com/pmorrell/blockfall/internal/sse"
)

const (
	// SessionIDLength is the length of generated session IDs
	SessionIDLength = 12
	// SessionIDAlphabet is the characters used in session IDs
	SessionIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	// DefaultTickInterval is how often a session's simulation advances
	DefaultTickInterval = time.Second / 60

	// snapshotEveryTicks is the cadence of full-state broadcasts on quiet
	// ticks; ticks that produce events always broadcast a snapshot
	snapshotEveryTicks = 30
)

// cueSink buffers the cues one tick produces so they can be drained and
// broadcast as a batch. Guarded by the owning session's mutex.
type cueSink struct {
	cues []audio.Cue
}

func (s *cueSink) Cue(c audio.Cue) {
	s.cues = append(s.cues, c)
}

func (s *cueSink) drain() []audio.Cue {
	cues := s.cues
	s.cues = nil
	return cues
}

// Session is one running (or finished) game. The engine and director are
// mutated only under mu, by the tick loop and by manager calls.
type Session struct {
	ID        model.SessionID
	PlayerID  model.PlayerID
	Options   model.SessionOptions
	StartedAt time.Time

	mu       sync.Mutex
	engine   *sim.Engine
	director *audio.Director
	sink     *cueSink
	pending  model.Input
	lastTick time.Time
	tickNum  int
	finished bool
	stop     chan struct{}
	stopOnce sync.Once
}

// Manager creates sessions, drives their tick loops, and routes input to them
type Manager struct {
	profiles    *profile.Service
	clock       clock.Clock
	random      random.Random
	broadcaster *sse.Broadcaster
	logger      *slog.Logger

	tickInterval time.Duration

	mu       sync.RWMutex
	sessions map[model.SessionID]*Session
}

// NewManager creates a new session manager
func NewManager(
	profiles *profile.Service,
	clock clock.Clock,
	random random.Random,
	broadcaster *sse.Broadcaster,
	logger *slog.Logger,
) *Manager {
	return &Manager{
		profiles:     profiles,
		clock:        clock,
		random:       random,
		broadcaster:  broadcaster,
		logger:       logger,
		tickInterval: DefaultTickInterval,
		sessions:     make(map[model.SessionID]*Session),
	}
}

// Create starts a new game session for the player. A zero Track in the
// options falls back to the player's last selected track.
func (m *Manager) Create(ctx context.Context, playerID model.PlayerID, opts model.SessionOptions) (*Snapshot, error) {
	if opts.Difficulty == "" {
		opts.Difficulty = model.DifficultyNormal
	}
	if opts.GameMode == "" {
		opts.GameMode = model.GameModeClassic
	}

	prof, err := m.profiles.GetOrDefault(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if opts.Track == 0 {
		opts.Track = prof.LastTrack
	}
	if prof.LastTrack != opts.Track {
		prof.LastTrack = opts.Track
		if err := m.profiles.Save(ctx, prof); err != nil {
			return nil, err
		}
	}

	now := m.clock.Now()
	sink := &cueSink{}
	director := audio.NewDirector(sink, m.logger)
	director.SetTrack(opts.Track)

	s := &Session{
		ID:        model.SessionID(m.random.String(SessionIDLength, SessionIDAlphabet)),
		PlayerID:  playerID,
		Options:   opts,
		StartedAt: now,
		engine:    sim.New(m.random, m.logger),
		director:  director,
		sink:      sink,
		lastTick:  now,
		stop:      make(chan struct{}),
	}
	s.engine.Start()
	s.director.PlayNext()
	s.sink.drain() // opening cues have no listeners yet

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	go m.run(s)

	m.logger.Info("session created",
		slog.String("session", string(s.ID)),
		slog.String("player_id", string(playerID)),
		slog.String("difficulty", string(opts.Difficulty)),
		slog.String("game_mode", string(opts.GameMode)),
		slog.Int("track", opts.Track),
	)

	return snapshotOf(s), nil
}

// Get returns the session with the given ID
func (m *Manager) Get(sessionID model.SessionID) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return s, nil
}

// Input merges one input report into the session's pending input. Pressed
// edges accumulate until the next tick consumes them; held levels overwrite.
func (m *Manager) Input(sessionID model.SessionID, in model.Input) error {
	s, err := m.Get(sessionID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return model.ErrSessionFinished
	}
	s.pending = mergeInput(s.pending, in)
	return nil
}

// ToggleMute flips the session's mute state and returns the resulting state
func (m *Manager) ToggleMute(sessionID model.SessionID) (*Snapshot, error) {
	s, err := m.Get(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.finished {
		s.mu.Unlock()
		return nil, model.ErrSessionFinished
	}
	s.director.ToggleMute()
	cues := s.sink.drain()
	snap := snapshotLocked(s)
	s.mu.Unlock()

	m.broadcaster.BroadcastAudio(s.ID, cues)
	m.broadcaster.BroadcastSnapshot(s.ID, snap)
	return snap, nil
}

// NextTrack advances the session to the next playlist track, records it as
// the player's last selected track, and returns the resulting state.
func (m *Manager) NextTrack(ctx context.Context, sessionID model.SessionID) (*Snapshot, error) {
	s, err := m.Get(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.finished {
		s.mu.Unlock()
		return nil, model.ErrSessionFinished
	}
	s.director.PlayNext()
	cues := s.sink.drain()
	snap := snapshotLocked(s)
	s.mu.Unlock()

	prof, err := m.profiles.GetOrDefault(ctx, s.PlayerID)
	if err == nil && prof.LastTrack != snap.Track {
		prof.LastTrack = snap.Track
		err = m.profiles.Save(ctx, prof)
	}
	if err != nil {
		m.logger.Error("failed to save track selection",
			slog.String("session", string(s.ID)),
			slog.String("player_id", string(s.PlayerID)),
			slog.Any("error", err),
		)
	}

	m.broadcaster.BroadcastAudio(s.ID, cues)
	m.broadcaster.BroadcastSnapshot(s.ID, snap)
	return snap, nil
}

// Snapshot returns the session's current state
func (m *Manager) Snapshot(sessionID model.SessionID) (*Snapshot, error) {
	s, err := m.Get(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshotLocked(s), nil
}

// Close stops the session's tick loop and removes it. A session closed before
// game over records no result.
func (m *Manager) Close(sessionID model.SessionID) error {
	m.mu.Lock()
	s, ok := m.sessions[sessionID]
	if ok {
		delete(m.sessions, sessionID)
	}
	m.mu.Unlock()
	if !ok {
		return model.ErrSessionNotFound
	}

	s.stopOnce.Do(func() { close(s.stop) })
	m.logger.Info("session closed", slog.String("session", string(s.ID)))
	return nil
}

// CloseAll stops every session's tick loop, for shutdown
func (m *Manager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		s.stopOnce.Do(func() { close(s.stop) })
		delete(m.sessions, id)
	}
}

// Count returns the number of tracked sessions
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// run drives one session until it finishes or is closed
func (m *Manager) run(s *Session) {
	ticker := time.NewTicker(m.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			if m.step(s) {
				return
			}
		}
	}
}

// step advances the session by the wall-clock time since the previous tick
// and broadcasts the results. It returns true once the session has finished.
func (m *Manager) step(s *Session) bool {
	s.mu.Lock()

	if s.finished {
		s.mu.Unlock()
		return true
	}

	now := m.clock.Now()
	dt := now.Sub(s.lastTick).Seconds()
	s.lastTick = now

	in := s.pending
	s.pending = clearEdges(s.pending)

	ev := s.engine.Tick(dt, in)
	s.director.Consume(ev)
	cues := s.sink.drain()

	s.tickNum++
	var snap *Snapshot
	if ev.Any() || s.tickNum%snapshotEveryTicks == 0 {
		snap = snapshotLocked(s)
	}

	var summary *model.GameSummary
	if ev.GameOver {
		s.finished = true
		summary = &model.GameSummary{
			SessionID:   s.ID,
			PlayerID:    s.PlayerID,
			Score:       s.engine.Score(),
			Lines:       s.engine.LinesCleared(),
			Difficulty:  s.Options.Difficulty,
			GameMode:    s.Options.GameMode,
			SpawnCounts: s.engine.SpawnCounts(),
			EndedAt:     now,
		}
	}

	s.mu.Unlock()

	if ev.Any() {
		m.broadcaster.BroadcastEvents(s.ID, ev)
	}
	m.broadcaster.BroadcastAudio(s.ID, cues)
	if snap != nil {
		m.broadcaster.BroadcastSnapshot(s.ID, snap)
	}

	if summary != nil {
		m.finish(s, summary)
		return true
	}
	return false
}

// finish records the final result and announces it to watchers
func (m *Manager) finish(s *Session, summary *model.GameSummary) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := m.profiles.RecordResult(ctx, summary); err != nil {
		m.logger.Error("failed to record session result",
			slog.String("session", string(s.ID)),
			slog.String("player_id", string(s.PlayerID)),
			slog.Any("error", err),
		)
	}
	m.broadcaster.BroadcastGameOver(s.ID, summary)

	m.logger.Info("session finished",
		slog.String("session", string(s.ID)),
		slog.String("player_id", string(s.PlayerID)),
		slog.Int("score", summary.Score),
		slog.Int("lines", summary.Lines),
	)
}

// mergeInput folds a new input report into the pending input for the next
// tick. Edges are sticky so a quick press between ticks is not lost.
func mergeInput(pending, in model.Input) model.Input {
	merge := func(p, n model.KeyState) model.KeyState {
		return model.KeyState{
			Pressed: p.Pressed || n.Pressed,
			Held:    n.Held,
		}
	}
	return model.Input{
		Left:      merge(pending.Left, in.Left),
		Right:     merge(pending.Right, in.Right),
		Up:        merge(pending.Up, in.Up),
		Down:      merge(pending.Down, in.Down),
		RotateCW:  merge(pending.RotateCW, in.RotateCW),
		RotateCCW: merge(pending.RotateCCW, in.RotateCCW),
		Hold:      merge(pending.Hold, in.Hold),
		Pause:     merge(pending.Pause, in.Pause),
	}
}

// clearEdges drops consumed press edges while keeping held levels
func clearEdges(in model.Input) model.Input {
	held := func(k model.KeyState) model.KeyState {
		return model.KeyState{Held: k.Held}
	}
	return model.Input{
		Left:      held(in.Left),
		Right:     held(in.Right),
		Up:        held(in.Up),
		Down:      held(in.Down),
		RotateCW:  held(in.RotateCW),
		RotateCCW: held(in.RotateCCW),
		Hold:      held(in.Hold),
		Pause:     held(in.Pause),
	}
}
