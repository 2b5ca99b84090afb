package handler

import (
	"encoding/json"
	"net/http"

	"github.com/playhub/portal/internal/api/middleware"
	"github.com/playhub/portal/internal/api/request"
	"github.com/playhub/portal/internal/api/response"
	"github.com/playhub/portal/internal/services/profile"
)

// ProfileHandler handles profile endpoints
type ProfileHandler struct {
	profile *profile.Service
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(svc *profile.Service) *ProfileHandler {
	return &ProfileHandler{profile: svc}
}

// Get handles GET /api/v1/profile
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	summary, err := h.profile.Summary(r.Context(), session.Username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, summary)
}

// SetDisplayName handles PUT /api/v1/profile/display-name
func (h *ProfileHandler) SetDisplayName(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	var req request.DisplayNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.profile.SetDisplayName(r.Context(), session.Username, req.DisplayName); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// ResetProgress handles POST /api/v1/profile/reset
func (h *ProfileHandler) ResetProgress(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	if err := h.profile.ResetProgress(r.Context(), session.Username); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// GetDarkMode handles GET /api/v1/preferences/dark-mode
func (h *ProfileHandler) GetDarkMode(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.DarkModeResponse{
		Enabled: h.profile.DarkMode(r.Context()),
	})
}

// SetDarkMode handles PUT /api/v1/preferences/dark-mode
func (h *ProfileHandler) SetDarkMode(w http.ResponseWriter, r *http.Request) {
	var req request.DarkModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	h.profile.SetDarkMode(r.Context(), req.Enabled)
	response.JSON(w, http.StatusOK, response.DarkModeResponse{Enabled: req.Enabled})
}
