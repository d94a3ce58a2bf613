package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pmorrell/blockfall/internal/api/handler"
	"github.com/pmorrell/blockfall/internal/api/middleware"
	"github.com/pmorrell/blockfall/internal/services/auth"
	"github.com/pmorrell/blockfall/internal/services/profile"
	"github.com/pmorrell/blockfall/internal/services/session"
	"github.com/pmorrell/blockfall/internal/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	AuthService    *auth.Service
	ProfileService *profile.Service
	SessionManager *session.Manager
	HubManager     *sse.HubManager
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.AuthService)
	profileHandler := handler.NewProfileHandler(cfg.ProfileService)
	sessionHandler := handler.NewSessionHandler(cfg.SessionManager, cfg.HubManager)
	scoresHandler := handler.NewScoresHandler(cfg.ProfileService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player routes (no auth required for creating players/logging in)
	api.HandleFunc("/players/guest", playerHandler.CreateGuest).Methods(http.MethodPost)
	api.HandleFunc("/players/register", playerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/players/login", playerHandler.Login).Methods(http.MethodPost)

	// Protected player routes
	playerProtected := api.PathPrefix("/players").Subrouter()
	playerProtected.Use(authMiddleware)
	playerProtected.HandleFunc("/me", playerHandler.GetMe).Methods(http.MethodGet)

	// Profile routes (all require auth)
	profiles := api.PathPrefix("/profile").Subrouter()
	profiles.Use(authMiddleware)
	profiles.HandleFunc("", profileHandler.Get).Methods(http.MethodGet)
	profiles.HandleFunc("", profileHandler.Update).Methods(http.MethodPut)
	profiles.HandleFunc("/history", profileHandler.History).Methods(http.MethodGet)

	// Session routes (all require auth)
	sessions := api.PathPrefix("/sessions").Subrouter()
	sessions.Use(authMiddleware)
	sessions.HandleFunc("", sessionHandler.Create).Methods(http.MethodPost)
	sessions.HandleFunc("/{session_id}", sessionHandler.Get).Methods(http.MethodGet)
	sessions.HandleFunc("/{session_id}", sessionHandler.Close).Methods(http.MethodDelete)
	sessions.HandleFunc("/{session_id}/input", sessionHandler.Input).Methods(http.MethodPost)
	sessions.HandleFunc("/{session_id}/audio", sessionHandler.Audio).Methods(http.MethodPost)
	sessions.HandleFunc("/{session_id}/events", sessionHandler.Events).Methods(http.MethodGet)

	// Leaderboard (requires auth)
	scores := api.PathPrefix("/scores").Subrouter()
	scores.Use(authMiddleware)
	scores.HandleFunc("", scoresHandler.Get).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
