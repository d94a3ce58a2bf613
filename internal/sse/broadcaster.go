package sse

import (
	"encoding/json"
	"log/slog"

	"github.com/pmorrell/blockfall/internal/model"
	"github.com/pmorrell/blockfall/internal/services/audio"
)

// Broadcaster pushes session updates to SSE clients as JSON events
type Broadcaster struct {
	hubManager *HubManager
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// broadcastJSON marshals the payload and broadcasts it under the event name.
// No-op when the session has no hub (nobody is watching).
func (b *Broadcaster) broadcastJSON(sessionID model.SessionID, eventName string, payload any) {
	hub := b.hubManager.GetHub(sessionID)
	if hub == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		b.logger.Error("sse failed to marshal payload",
			slog.String("session", string(sessionID)),
			slog.String("event", eventName),
			slog.Any("error", err))
		return
	}
	hub.BroadcastEvent(eventName, string(data))
}

// BroadcastEvents broadcasts the discrete events one tick produced
func (b *Broadcaster) BroadcastEvents(sessionID model.SessionID, ev model.TickEvents) {
	b.broadcastJSON(sessionID, "events", ev)
}

// BroadcastAudio broadcasts the audio cues one tick produced
func (b *Broadcaster) BroadcastAudio(sessionID model.SessionID, cues []audio.Cue) {
	if len(cues) == 0 {
		return
	}
	b.broadcastJSON(sessionID, "audio", cues)
}

// BroadcastSnapshot broadcasts a full session snapshot
func (b *Broadcaster) BroadcastSnapshot(sessionID model.SessionID, snapshot any) {
	b.broadcastJSON(sessionID, "snapshot", snapshot)
}

// BroadcastGameOver broadcasts the final result of a finished session
func (b *Broadcaster) BroadcastGameOver(sessionID model.SessionID, summary *model.GameSummary) {
	b.broadcastJSON(sessionID, "game-over", summary)
}
