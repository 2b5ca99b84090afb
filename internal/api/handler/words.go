package handler

import (
	"encoding/json"
	"net/http"

	"github.com/playhub/portal/internal/api/middleware"
	"github.com/playhub/portal/internal/api/request"
	"github.com/playhub/portal/internal/api/response"
	"github.com/playhub/portal/internal/model"
	"github.com/playhub/portal/internal/services/arcade"
	"github.com/playhub/portal/internal/services/words"
)

// WordsHandler handles the word-guess game endpoints
type WordsHandler struct {
	arcade *arcade.Service
}

// NewWordsHandler creates a new words handler
func NewWordsHandler(arc *arcade.Service) *WordsHandler {
	return &WordsHandler{arcade: arc}
}

func (h *WordsHandler) engine(r *http.Request) *words.Engine {
	session := middleware.MustGetSession(r.Context())
	return h.arcade.Words(session.Token, session.Username)
}

// GuessResponse is the response to a submitted guess: the marks for the
// revealed row plus the resulting game state.
type GuessResponse struct {
	Marks []model.Mark   `json:"marks"`
	State words.Snapshot `json:"state"`
}

// Start handles POST /api/v1/games/words/start
func (h *WordsHandler) Start(w http.ResponseWriter, r *http.Request) {
	engine := h.engine(r)
	if err := engine.Start(r.Context()); err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, engine.Snapshot())
}

// AddLetter handles POST /api/v1/games/words/letters
func (h *WordsHandler) AddLetter(w http.ResponseWriter, r *http.Request) {
	var req request.LetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	engine := h.engine(r)
	if err := engine.AddLetter(req.Letter); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// DeleteLetter handles DELETE /api/v1/games/words/letters
func (h *WordsHandler) DeleteLetter(w http.ResponseWriter, r *http.Request) {
	engine := h.engine(r)
	if err := engine.DeleteLetter(); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// SubmitGuess handles POST /api/v1/games/words/guess
func (h *WordsHandler) SubmitGuess(w http.ResponseWriter, r *http.Request) {
	engine := h.engine(r)

	marks, err := engine.SubmitGuess(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, GuessResponse{
		Marks: marks,
		State: engine.Snapshot(),
	})
}

// FinishReveal handles POST /api/v1/games/words/reveal
func (h *WordsHandler) FinishReveal(w http.ResponseWriter, r *http.Request) {
	engine := h.engine(r)
	if err := engine.FinishReveal(r.Context()); err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, engine.Snapshot())
}

// State handles GET /api/v1/games/words/state
func (h *WordsHandler) State(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.engine(r).Snapshot())
}
