package handler

import (
	"encoding/json"
	"net/http"

	"github.com/playhub/portal/internal/api/middleware"
	"github.com/playhub/portal/internal/api/request"
	"github.com/playhub/portal/internal/api/response"
	"github.com/playhub/portal/internal/model"
	"github.com/playhub/portal/internal/services/arcade"
	"github.com/playhub/portal/internal/services/snake"
)

// SnakeHandler handles the snake game endpoints
type SnakeHandler struct {
	arcade *arcade.Service
}

// NewSnakeHandler creates a new snake handler
func NewSnakeHandler(arc *arcade.Service) *SnakeHandler {
	return &SnakeHandler{arcade: arc}
}

func (h *SnakeHandler) engine(r *http.Request) *snake.Engine {
	session := middleware.MustGetSession(r.Context())
	return h.arcade.Snake(session.Token, session.Username)
}

// Start handles POST /api/v1/games/snake/start
func (h *SnakeHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req request.SnakeStartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	engine := h.engine(r)
	if err := engine.Start(r.Context(), model.Difficulty(req.Difficulty)); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, engine.Snapshot())
}

// Steer handles POST /api/v1/games/snake/steer
func (h *SnakeHandler) Steer(w http.ResponseWriter, r *http.Request) {
	var req request.SteerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	engine := h.engine(r)
	if err := engine.Steer(model.Direction(req.Direction)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Pause handles POST /api/v1/games/snake/pause
func (h *SnakeHandler) Pause(w http.ResponseWriter, r *http.Request) {
	engine := h.engine(r)
	if err := engine.Pause(); err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, engine.Snapshot())
}

// Resume handles POST /api/v1/games/snake/resume
func (h *SnakeHandler) Resume(w http.ResponseWriter, r *http.Request) {
	engine := h.engine(r)
	if err := engine.Resume(); err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, engine.Snapshot())
}

// Stop handles POST /api/v1/games/snake/stop
func (h *SnakeHandler) Stop(w http.ResponseWriter, r *http.Request) {
	engine := h.engine(r)
	engine.Stop()
	response.NoContent(w)
}

// State handles GET /api/v1/games/snake/state
func (h *SnakeHandler) State(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.engine(r).Snapshot())
}
