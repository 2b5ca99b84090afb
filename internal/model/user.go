package model

import "time"

// User is a registered portal account.
//
// Password is stored in plain text, matching the portal's persisted data
// layout. This is an acknowledged non-goal of the security model, not a
// pattern to reuse elsewhere.
type User struct {
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Password     string    `json:"password"`
	RegisteredAt time.Time `json:"registeredAt"`
	LastLogin    time.Time `json:"lastLogin,omitzero"`
	TotalLogins  int       `json:"totalLogins"`
	GamesPlayed  int       `json:"gamesPlayed"`
	BestStreak   int       `json:"bestStreak"`
}

// Session is a logged-in browser context. The active session lives in the
// volatile store; historical copies are appended to the durable audit log.
type Session struct {
	Username  string    `json:"username"`
	LoginTime time.Time `json:"loginTime"`
	ExpiresAt time.Time `json:"expiresAt"`
	Token     string    `json:"token"`
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// RenameResult is returned by the username-rename migration. Callers render
// the message directly, so this is a value rather than an error.
type RenameResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
