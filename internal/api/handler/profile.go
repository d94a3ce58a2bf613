package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pmorrell/blockfall/internal/api/middleware"
	"github.com/pmorrell/blockfall/internal/api/request"
	"github.com/pmorrell/blockfall/internal/api/response"
	"github.com/pmorrell/blockfall/internal/model"
	"github.com/pmorrell/blockfall/internal/services/profile"
)

// ProfileHandler handles profile and history endpoints
type ProfileHandler struct {
	profileService *profile.Service
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *profile.Service) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// Get handles GET /api/v1/profile
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	prof, err := h.profileService.GetOrDefault(r.Context(), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProfileFromModel(prof))
}

// Update handles PUT /api/v1/profile. Absent fields keep their saved values.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	prof, err := h.profileService.GetOrDefault(r.Context(), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	if req.DisplayName != "" {
		prof.DisplayName = req.DisplayName
	}
	if req.LastTrack != nil {
		if *req.LastTrack < 0 {
			WriteError(w, NewInvalidRequestError("last_track must not be negative"))
			return
		}
		prof.LastTrack = *req.LastTrack
	}
	if req.GameMode != "" {
		prof.GameMode = model.GameMode(req.GameMode)
	}

	if err := h.profileService.Save(r.Context(), prof); err != nil {
		WriteError(w, err)
		return
	}

	saved, err := h.profileService.Get(r.Context(), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.ProfileFromModel(saved))
}

// History handles GET /api/v1/profile/history
func (h *ProfileHandler) History(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	summaries, err := h.profileService.History(r.Context(), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.GameSummary, len(summaries))
	for i, s := range summaries {
		out[i] = response.GameSummaryFromModel(s)
	}
	response.JSON(w, http.StatusOK, out)
}
