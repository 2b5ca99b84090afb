package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/playhub/portal/internal/api/handler"
	"github.com/playhub/portal/internal/api/middleware"
	"github.com/playhub/portal/internal/services/arcade"
	"github.com/playhub/portal/internal/services/profile"
	"github.com/playhub/portal/internal/services/registry"
	"github.com/playhub/portal/internal/services/scores"
	"github.com/playhub/portal/internal/services/stats"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger     *slog.Logger
	Registry   *registry.Service
	Arcade     *arcade.Service
	Profile    *profile.Service
	Scores     *scores.Service
	SnakeStats *stats.Store
	WordsStats *stats.Store
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.Registry, cfg.Arcade)
	profileHandler := handler.NewProfileHandler(cfg.Profile)
	snakeHandler := handler.NewSnakeHandler(cfg.Arcade)
	wordsHandler := handler.NewWordsHandler(cfg.Arcade)
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.Scores, cfg.SnakeStats, cfg.WordsStats)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.Registry)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes (no session required)
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/password-strength", authHandler.PasswordStrength).Methods(http.MethodPost)

	// Protected auth routes
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(authMiddleware)
	authProtected.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", authHandler.Me).Methods(http.MethodGet)
	authProtected.HandleFunc("/rename", authHandler.Rename).Methods(http.MethodPost)

	// Profile routes (all require auth)
	profiles := api.PathPrefix("/profile").Subrouter()
	profiles.Use(authMiddleware)
	profiles.HandleFunc("", profileHandler.Get).Methods(http.MethodGet)
	profiles.HandleFunc("/display-name", profileHandler.SetDisplayName).Methods(http.MethodPut)
	profiles.HandleFunc("/reset", profileHandler.ResetProgress).Methods(http.MethodPost)

	// Preferences
	prefs := api.PathPrefix("/preferences").Subrouter()
	prefs.Use(authMiddleware)
	prefs.HandleFunc("/dark-mode", profileHandler.GetDarkMode).Methods(http.MethodGet)
	prefs.HandleFunc("/dark-mode", profileHandler.SetDarkMode).Methods(http.MethodPut)

	// Game routes (all require auth)
	games := api.PathPrefix("/games").Subrouter()
	games.Use(authMiddleware)
	games.HandleFunc("/snake/start", snakeHandler.Start).Methods(http.MethodPost)
	games.HandleFunc("/snake/steer", snakeHandler.Steer).Methods(http.MethodPost)
	games.HandleFunc("/snake/pause", snakeHandler.Pause).Methods(http.MethodPost)
	games.HandleFunc("/snake/resume", snakeHandler.Resume).Methods(http.MethodPost)
	games.HandleFunc("/snake/stop", snakeHandler.Stop).Methods(http.MethodPost)
	games.HandleFunc("/snake/state", snakeHandler.State).Methods(http.MethodGet)
	games.HandleFunc("/words/start", wordsHandler.Start).Methods(http.MethodPost)
	games.HandleFunc("/words/letters", wordsHandler.AddLetter).Methods(http.MethodPost)
	games.HandleFunc("/words/letters", wordsHandler.DeleteLetter).Methods(http.MethodDelete)
	games.HandleFunc("/words/guess", wordsHandler.SubmitGuess).Methods(http.MethodPost)
	games.HandleFunc("/words/reveal", wordsHandler.FinishReveal).Methods(http.MethodPost)
	games.HandleFunc("/words/state", wordsHandler.State).Methods(http.MethodGet)

	// Leaderboard and score routes (all require auth)
	boards := api.PathPrefix("/leaderboards").Subrouter()
	boards.Use(authMiddleware)
	boards.HandleFunc("/{game}", leaderboardHandler.Leaderboard).Methods(http.MethodGet)

	scoreRoutes := api.PathPrefix("/scores").Subrouter()
	scoreRoutes.Use(authMiddleware)
	scoreRoutes.HandleFunc("/mine", leaderboardHandler.Mine).Methods(http.MethodGet)
	scoreRoutes.HandleFunc("/{game}/top", leaderboardHandler.Top).Methods(http.MethodGet)
	scoreRoutes.HandleFunc("/{game}/recent", leaderboardHandler.Recent).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
