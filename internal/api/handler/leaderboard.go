package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/playhub/portal/internal/api/middleware"
	"github.com/playhub/portal/internal/api/response"
	"github.com/playhub/portal/internal/model"
	"github.com/playhub/portal/internal/services/scores"
	"github.com/playhub/portal/internal/services/stats"
)

const defaultTopLimit = 10

// LeaderboardHandler handles leaderboard and score-history endpoints
type LeaderboardHandler struct {
	scores     *scores.Service
	snakeStats *stats.Store
	wordsStats *stats.Store
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(sc *scores.Service, snakeStats, wordsStats *stats.Store) *LeaderboardHandler {
	return &LeaderboardHandler{
		scores:     sc,
		snakeStats: snakeStats,
		wordsStats: wordsStats,
	}
}

// gameStats resolves the {game} path variable to a stat store.
func (h *LeaderboardHandler) gameStats(r *http.Request) (*stats.Store, error) {
	switch mux.Vars(r)["game"] {
	case "snake":
		return h.snakeStats, nil
	case "words":
		return h.wordsStats, nil
	default:
		return nil, NewInvalidRequestError("unknown game")
	}
}

// Leaderboard handles GET /api/v1/leaderboards/{game}
func (h *LeaderboardHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	st, err := h.gameStats(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, h.scores.Leaderboard(r.Context(), st))
}

// Top handles GET /api/v1/scores/{game}/top?limit=N
func (h *LeaderboardHandler) Top(w http.ResponseWriter, r *http.Request) {
	st, err := h.gameStats(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	limit := defaultTopLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			WriteError(w, NewInvalidRequestError("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	response.JSON(w, http.StatusOK, h.scores.Top(r.Context(), st.Keys().Game, limit))
}

// Mine handles GET /api/v1/scores/mine
func (h *LeaderboardHandler) Mine(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	response.JSON(w, http.StatusOK, h.scores.ForUser(r.Context(), session.Username))
}

// Recent handles GET /api/v1/scores/{game}/recent. It returns the caller's
// recent results for the game, newest first, capped at five.
func (h *LeaderboardHandler) Recent(w http.ResponseWriter, r *http.Request) {
	st, err := h.gameStats(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	session := middleware.MustGetSession(r.Context())
	recent := st.Recent(r.Context(), session.Username)
	if recent == nil {
		recent = []model.RecentResult{}
	}
	response.JSON(w, http.StatusOK, recent)
}
