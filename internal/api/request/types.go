package request

// RegisterRequest is the request body for creating an account
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PasswordRequest is the request body for the password strength check
type PasswordRequest struct {
	Password string `json:"password"`
}

// RenameRequest is the request body for changing a username
type RenameRequest struct {
	NewUsername string `json:"newUsername"`
}

// DisplayNameRequest is the request body for setting a display name
type DisplayNameRequest struct {
	DisplayName string `json:"displayName"`
}

// DarkModeRequest is the request body for the dark mode preference
type DarkModeRequest struct {
	Enabled bool `json:"enabled"`
}

// SnakeStartRequest is the request body for starting a snake game
type SnakeStartRequest struct {
	Difficulty string `json:"difficulty"`
}

// SteerRequest is the request body for steering the snake
type SteerRequest struct {
	Direction string `json:"direction"`
}

// LetterRequest is the request body for typing a letter in the word game
type LetterRequest struct {
	Letter string `json:"letter"`
}
