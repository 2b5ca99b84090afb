package cli

import "time"

// HealthResult is the health endpoint response
type HealthResult struct {
	Status string `json:"status"`
}

// AuthResult is the authentication endpoint response
type AuthResult struct {
	Username     string    `json:"username"`
	SessionToken string    `json:"sessionToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// User is the account endpoint response
type User struct {
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registeredAt"`
	LastLogin    time.Time `json:"lastLogin"`
	TotalLogins  int       `json:"totalLogins"`
}

// RenameResult is the rename endpoint response
type RenameResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Username string `json:"username"`
}

// StrengthResult is the password strength endpoint response
type StrengthResult struct {
	Length bool   `json:"length"`
	Upper  bool   `json:"upper"`
	Lower  bool   `json:"lower"`
	Digit  bool   `json:"digit"`
	Symbol bool   `json:"symbol"`
	Passed int    `json:"passed"`
	Label  string `json:"label"`
}

// RecentResult is one recent game outcome
type RecentResult struct {
	Game       string    `json:"game"`
	Score      int       `json:"score"`
	Date       time.Time `json:"date"`
	Difficulty string    `json:"difficulty,omitempty"`
	Attempts   int       `json:"attempts,omitempty"`
}

// GameStats is one game's block of the profile summary
type GameStats struct {
	BestScore      int            `json:"bestScore"`
	TotalPoints    int            `json:"totalPoints"`
	GamesPlayed    int            `json:"gamesPlayed"`
	Sessions       int            `json:"sessions"`
	Wins           int            `json:"wins,omitempty"`
	CurrentStreak  int            `json:"currentStreak,omitempty"`
	BestStreak     int            `json:"bestStreak,omitempty"`
	LastDifficulty string         `json:"lastDifficulty,omitempty"`
	Recent         []RecentResult `json:"recent"`
}

// ProfileSummary is the profile endpoint response
type ProfileSummary struct {
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	MemberSince time.Time `json:"memberSince"`
	TotalLogins int       `json:"totalLogins"`
	Snake       GameStats `json:"snake"`
	Words       GameStats `json:"words"`
}

// LeaderboardRow is one user's leaderboard entry
type LeaderboardRow struct {
	Username    string     `json:"username"`
	BestScore   int        `json:"bestScore"`
	TotalPoints int        `json:"totalPoints"`
	GamesPlayed int        `json:"gamesPlayed"`
	Wins        int        `json:"wins,omitempty"`
	BestStreak  int        `json:"bestStreak,omitempty"`
	LastPlayed  *time.Time `json:"lastPlayed,omitempty"`
}

// ScoreRecord is one global score log entry
type ScoreRecord struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Game      string    `json:"game"`
	Score     int       `json:"score"`
	Attempts  int       `json:"attempts,omitempty"`
	Won       bool      `json:"won,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
