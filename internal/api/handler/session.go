package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pmorrell/blockfall/internal/api/middleware"
	"github.com/pmorrell/blockfall/internal/api/request"
	"github.com/pmorrell/blockfall/internal/api/response"
	"github.com/pmorrell/blockfall/internal/model"
	"github.com/pmorrell/blockfall/internal/services/session"
	"github.com/pmorrell/blockfall/internal/sse"
)

// SessionHandler handles game session endpoints
type SessionHandler struct {
	sessions   *session.Manager
	hubManager *sse.HubManager
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *session.Manager, hubManager *sse.HubManager) *SessionHandler {
	return &SessionHandler{
		sessions:   sessions,
		hubManager: hubManager,
	}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.CreateSessionRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, NewInvalidRequestError("invalid request body"))
			return
		}
	}
	if req.Track < 0 {
		WriteError(w, NewInvalidRequestError("track must not be negative"))
		return
	}

	snapshot, err := h.sessions.Create(r.Context(), player.ID, model.SessionOptions{
		Difficulty: model.Difficulty(req.Difficulty),
		GameMode:   model.GameMode(req.GameMode),
		Track:      req.Track,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, snapshot)
}

// Get handles GET /api/v1/sessions/{session_id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := model.SessionID(mux.Vars(r)["session_id"])

	snapshot, err := h.sessions.Snapshot(sessionID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, snapshot)
}

// Input handles POST /api/v1/sessions/{session_id}/input.
// Only the session's owner may send input.
func (h *SessionHandler) Input(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	sessionID := model.SessionID(mux.Vars(r)["session_id"])

	sess, err := h.sessions.Get(sessionID)
	if err != nil {
		WriteError(w, err)
		return
	}
	if sess.PlayerID != player.ID {
		WriteError(w, NewForbiddenError())
		return
	}

	var in model.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.sessions.Input(sessionID, in); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Audio handles POST /api/v1/sessions/{session_id}/audio.
// Only the session's owner may change mute or track state.
func (h *SessionHandler) Audio(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	sessionID := model.SessionID(mux.Vars(r)["session_id"])

	sess, err := h.sessions.Get(sessionID)
	if err != nil {
		WriteError(w, err)
		return
	}
	if sess.PlayerID != player.ID {
		WriteError(w, NewForbiddenError())
		return
	}

	var req request.SessionAudioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	var snapshot *session.Snapshot
	switch req.Action {
	case request.AudioActionToggleMute:
		snapshot, err = h.sessions.ToggleMute(sessionID)
	case request.AudioActionNextTrack:
		snapshot, err = h.sessions.NextTrack(r.Context(), sessionID)
	default:
		WriteError(w, NewInvalidRequestError("action must be toggle_mute or next_track"))
		return
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, snapshot)
}

// Close handles DELETE /api/v1/sessions/{session_id}
func (h *SessionHandler) Close(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	sessionID := model.SessionID(mux.Vars(r)["session_id"])

	sess, err := h.sessions.Get(sessionID)
	if err != nil {
		WriteError(w, err)
		return
	}
	if sess.PlayerID != player.ID {
		WriteError(w, NewForbiddenError())
		return
	}

	if err := h.sessions.Close(sessionID); err != nil {
		WriteError(w, err)
		return
	}
	h.hubManager.RemoveHub(sessionID)

	response.NoContent(w)
}

// Events handles GET /api/v1/sessions/{session_id}/events.
// Any authenticated player may watch a session.
func (h *SessionHandler) Events(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	sessionID := model.SessionID(mux.Vars(r)["session_id"])

	if _, err := h.sessions.Get(sessionID); err != nil {
		WriteError(w, err)
		return
	}

	hub := h.hubManager.GetOrCreateHub(sessionID)
	sse.ServeSSE(w, r, hub, player.ID)
}
