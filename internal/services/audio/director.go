// Package audio decides what the game should sound like. The Director
// consumes tick events and emits playback cues to an injected Sink; it never
// touches an audio device itself, so servers and tests can run it headlessly.
package audio

import (
	"log/slog"

	"github.com/pmorrell/blockfall/internal/model"
)

// TrackCount is the size of the looping music playlist
const TrackCount = 3

// Per-track playback speed while panic mode is engaged
var panicSpeeds = [TrackCount]float64{1.5, 2.0, 1.25}

// PanicSpeed returns the panic-mode speed factor for a playlist track
func PanicSpeed(track int) float64 {
	idx := track % TrackCount
	if idx < 0 {
		idx += TrackCount
	}
	return panicSpeeds[idx]
}

// Sfx identifies a sound effect
type Sfx int

const (
	SfxRotate Sfx = iota
	SfxMove
	SfxDrop
	SfxLock
	SfxPause
	SfxLine
)

func (s Sfx) String() string {
	switch s {
	case SfxRotate:
		return "rotate"
	case SfxMove:
		return "move"
	case SfxDrop:
		return "drop"
	case SfxLock:
		return "lock"
	case SfxPause:
		return "pause"
	case SfxLine:
		return "line"
	}
	return "unknown"
}

// CueKind identifies a playback instruction
type CueKind int

const (
	CuePlayTrack CueKind = iota
	CueStopMusic
	CuePauseMusic
	CueResumeMusic
	CueSetSpeed
	CueSetVolume
	CuePlaySfx
)

func (k CueKind) String() string {
	switch k {
	case CuePlayTrack:
		return "play-track"
	case CueStopMusic:
		return "stop-music"
	case CuePauseMusic:
		return "pause-music"
	case CueResumeMusic:
		return "resume-music"
	case CueSetSpeed:
		return "set-speed"
	case CueSetVolume:
		return "set-volume"
	case CuePlaySfx:
		return "play-sfx"
	}
	return "unknown"
}

// Cue is one playback instruction. Track, Sfx, Speed, and Volume are only
// meaningful for the cue kinds that use them.
type Cue struct {
	Kind   CueKind `json:"kind"`
	Track  int     `json:"track,omitempty"`
	Sfx    Sfx     `json:"sfx,omitempty"`
	Speed  float64 `json:"speed,omitempty"`
	Volume float64 `json:"volume,omitempty"`
}

// Sink receives cues. Implementations render them however they like: a
// client-side player, an SSE stream, or a test recorder.
type Sink interface {
	Cue(c Cue)
}

// Tracks are loud; everything plays at half volume
const defaultVolume = 0.5

// Director tracks playlist position and mute/pause/panic state and turns
// game events into cues. It has a single owner and is not safe for
// concurrent use.
type Director struct {
	sink   Sink
	logger *slog.Logger

	track   int // next playlist index to play
	playing bool
	muted   bool
	paused  bool
	panic   bool
}

// NewDirector creates a director that emits cues to the given sink
func NewDirector(sink Sink, logger *slog.Logger) *Director {
	return &Director{
		sink:   sink,
		logger: logger,
	}
}

// PlayNext starts the next playlist track on loop and advances the playlist
// position. Panic speed is applied immediately if panic mode is engaged.
func (d *Director) PlayNext() {
	track := d.track % TrackCount
	volume := defaultVolume
	if d.muted {
		volume = 0
	}
	speed := 1.0
	if d.panic {
		speed = PanicSpeed(track)
	}
	d.sink.Cue(Cue{Kind: CuePlayTrack, Track: track, Volume: volume, Speed: speed})
	d.track++
	d.playing = true
	d.logger.Debug("track started", slog.Int("track", track))
}

// Consume maps one tick's events onto cues
func (d *Director) Consume(ev model.TickEvents) {
	if ev.PauseToggled {
		d.playSfx(SfxPause)
		if ev.Paused {
			d.pauseMusic()
		} else {
			d.resumeMusic()
		}
	}
	if ev.Paused {
		return
	}

	if ev.Rotated {
		d.playSfx(SfxRotate)
	}
	if ev.Moved {
		d.playSfx(SfxMove)
	}
	if ev.HardDropped {
		d.playSfx(SfxDrop)
	}
	if ev.Locked {
		d.playSfx(SfxLock)
	}
	if len(ev.LinesClearing) > 0 {
		d.playSfx(SfxLine)
	}
	if ev.PanicToggled {
		d.setPanic(ev.Panic)
	}
	if ev.GameOver {
		d.stopMusic()
	}
}

func (d *Director) playSfx(sfx Sfx) {
	if d.muted {
		return
	}
	d.sink.Cue(Cue{Kind: CuePlaySfx, Sfx: sfx, Volume: defaultVolume})
}

func (d *Director) pauseMusic() {
	if !d.playing || d.paused {
		return
	}
	d.paused = true
	d.sink.Cue(Cue{Kind: CuePauseMusic})
}

func (d *Director) resumeMusic() {
	if !d.paused {
		return
	}
	d.paused = false
	d.sink.Cue(Cue{Kind: CueResumeMusic})
}

// setPanic adjusts the speed of the track currently playing
func (d *Director) setPanic(on bool) {
	d.panic = on
	if !d.playing {
		return
	}
	speed := 1.0
	if on {
		speed = PanicSpeed(d.track - 1)
	}
	d.sink.Cue(Cue{Kind: CueSetSpeed, Speed: speed})
}

func (d *Director) stopMusic() {
	if !d.playing {
		return
	}
	d.playing = false
	d.sink.Cue(Cue{Kind: CueStopMusic})
}

// ToggleMute silences or restores both music and sfx
func (d *Director) ToggleMute() {
	d.muted = !d.muted
	volume := defaultVolume
	if d.muted {
		volume = 0
	}
	d.sink.Cue(Cue{Kind: CueSetVolume, Volume: volume})
}

// Muted reports whether the director is muted
func (d *Director) Muted() bool {
	return d.muted
}

// Track returns the playlist index now playing, or the index the next
// PlayNext will start while playback is stopped
func (d *Director) Track() int {
	if d.playing {
		return (d.track - 1) % TrackCount
	}
	return d.track % TrackCount
}

// SetTrack positions the playlist so the next PlayNext starts this track
func (d *Director) SetTrack(track int) {
	if track < 0 {
		track = 0
	}
	d.track = track % TrackCount
}

// Reset stops playback and restores playlist position, speed, and panic state
func (d *Director) Reset() {
	d.stopMusic()
	d.track = 0
	d.paused = false
	d.panic = false
	d.sink.Cue(Cue{Kind: CueSetSpeed, Speed: 1.0})
}
