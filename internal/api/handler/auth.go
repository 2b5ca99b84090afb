package handler

import (
	"encoding/json"
	"net/http"

	"github.com/playhub/portal/internal/api/middleware"
	"github.com/playhub/portal/internal/api/request"
	"github.com/playhub/portal/internal/api/response"
	"github.com/playhub/portal/internal/services/arcade"
	"github.com/playhub/portal/internal/services/registry"
)

// AuthHandler handles account and session endpoints
type AuthHandler struct {
	registry *registry.Service
	arcade   *arcade.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(reg *registry.Service, arc *arcade.Service) *AuthHandler {
	return &AuthHandler{
		registry: reg,
		arcade:   arc,
	}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	session, err := h.registry.Register(r.Context(), req.Username, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AuthResponseFromSession(session))
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	session, err := h.registry.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuthResponseFromSession(session))
}

// Logout handles POST /api/v1/auth/logout. Any game the session left
// running is torn down with it.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	h.arcade.Teardown(session.Token)
	h.registry.Logout(r.Context())

	response.NoContent(w)
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	user, err := h.registry.User(r.Context(), session.Username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UserFromModel(user))
}

// Rename handles POST /api/v1/auth/rename. The response always carries the
// outcome message; an incomplete migration reports failure rather than
// pretending the rename happened.
func (h *AuthHandler) Rename(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	var req request.RenameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	result := h.registry.Rename(r.Context(), session.Username, req.NewUsername)

	resp := response.RenameResponse{
		Success:  result.Success,
		Message:  result.Message,
		Username: session.Username,
	}
	status := http.StatusBadRequest
	if result.Success {
		resp.Username = req.NewUsername
		status = http.StatusOK
	}
	response.JSON(w, status, resp)
}

// PasswordStrength handles POST /api/v1/auth/password-strength
func (h *AuthHandler) PasswordStrength(w http.ResponseWriter, r *http.Request) {
	var req request.PasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	response.JSON(w, http.StatusOK, response.StrengthFromModel(registry.PasswordStrength(req.Password)))
}
