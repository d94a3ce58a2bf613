package handler

import (
	"net/http"
	"strconv"

	"github.com/pmorrell/blockfall/internal/api/response"
	"github.com/pmorrell/blockfall/internal/services/profile"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

// ScoresHandler handles the leaderboard endpoint
type ScoresHandler struct {
	profileService *profile.Service
}

// NewScoresHandler creates a new scores handler
func NewScoresHandler(profileService *profile.Service) *ScoresHandler {
	return &ScoresHandler{
		profileService: profileService,
	}
}

// Get handles GET /api/v1/scores?limit=N
func (h *ScoresHandler) Get(w http.ResponseWriter, r *http.Request) {
	limit := defaultLeaderboardLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			WriteError(w, NewInvalidRequestError("limit must be a positive integer"))
			return
		}
		limit = n
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	scores, err := h.profileService.Leaderboard(r.Context(), limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromModel(scores))
}
