package snake

import (
	"time"

	"github.com/playhub/portal/internal/model"
)

// Board geometry shared by every difficulty.
const (
	GridSize      = 20
	InitialLength = 3
)

// CountdownDuration is how long the pre-game countdown runs after Start.
const CountdownDuration = 3 * time.Second

// Profile is a difficulty's gameplay parameters.
type Profile struct {
	// TickInterval is the time between snake movements.
	TickInterval time.Duration
	// WrapWalls makes the snake re-enter on the opposite edge instead of
	// dying at the boundary.
	WrapWalls bool
	// Multiplier is the score awarded per food eaten.
	Multiplier int
}

// ProfileFor returns the gameplay profile for a difficulty. Unknown values
// fall back to medium.
func ProfileFor(d model.Difficulty) Profile {
	switch d {
	case model.DifficultyEasy:
		return Profile{TickInterval: 150 * time.Millisecond, WrapWalls: true, Multiplier: 1}
	case model.DifficultyHard:
		return Profile{TickInterval: 70 * time.Millisecond, WrapWalls: false, Multiplier: 3}
	default:
		return Profile{TickInterval: 100 * time.Millisecond, WrapWalls: false, Multiplier: 2}
	}
}
