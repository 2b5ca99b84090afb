package response

import (
	"time"

	"github.com/playhub/portal/internal/model"
	"github.com/playhub/portal/internal/services/registry"
)

// User represents a user in API responses. The password never leaves the
// server.
type User struct {
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registeredAt"`
	LastLogin    time.Time `json:"lastLogin,omitzero"`
	TotalLogins  int       `json:"totalLogins"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		Username:     u.Username,
		Email:        u.Email,
		RegisteredAt: u.RegisteredAt,
		LastLogin:    u.LastLogin,
		TotalLogins:  u.TotalLogins,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Username     string    `json:"username"`
	SessionToken string    `json:"sessionToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *model.Session) AuthResponse {
	return AuthResponse{
		Username:     s.Username,
		SessionToken: s.Token,
		ExpiresAt:    s.ExpiresAt,
	}
}

// RenameResponse reports a username change
type RenameResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Username string `json:"username"`
}

// StrengthResponse reports the password strength checks
type StrengthResponse struct {
	Length bool   `json:"length"`
	Upper  bool   `json:"upper"`
	Lower  bool   `json:"lower"`
	Digit  bool   `json:"digit"`
	Symbol bool   `json:"symbol"`
	Passed int    `json:"passed"`
	Label  string `json:"label"`
}

// StrengthFromModel converts a registry.Strength
func StrengthFromModel(st registry.Strength) StrengthResponse {
	return StrengthResponse{
		Length: st.Length,
		Upper:  st.Upper,
		Lower:  st.Lower,
		Digit:  st.Digit,
		Symbol: st.Symbol,
		Passed: st.Passed,
		Label:  st.Label,
	}
}

// DarkModeResponse reports the dark mode preference
type DarkModeResponse struct {
	Enabled bool `json:"enabled"`
}
