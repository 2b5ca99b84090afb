package model

import "time"

// Game identifies one of the portal's games in score records and stat keys.
type Game string

const (
	GameSnake Game = "Snake"
	GameWords Game = "Wordle"
)

// ScoreRecord is one entry in the global append-only score log. Records are
// never mutated, only appended and filtered/sorted for display.
type ScoreRecord struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Game      Game      `json:"game"`
	Score     int       `json:"score"`
	Attempts  int       `json:"attempts,omitempty"`
	Won       bool      `json:"won,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// RecentResult is one entry in a per-user recent-results ring buffer
// (newest first, capped at RecentResultsMax).
type RecentResult struct {
	Game       Game      `json:"game"`
	Score      int       `json:"score"`
	Date       time.Time `json:"date"`
	Difficulty string    `json:"difficulty,omitempty"`
	Attempts   int       `json:"attempts,omitempty"`
}

// RecentResultsMax bounds every recent-results list.
const RecentResultsMax = 5
