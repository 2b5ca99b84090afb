package model

// Coord is a cell on the snake grid.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Direction of snake travel.
type Direction string

const (
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

// Vector returns the unit grid offset for the direction.
func (d Direction) Vector() Coord {
	switch d {
	case DirUp:
		return Coord{X: 0, Y: -1}
	case DirDown:
		return Coord{X: 0, Y: 1}
	case DirLeft:
		return Coord{X: -1, Y: 0}
	default:
		return Coord{X: 1, Y: 0}
	}
}

// Opposite returns the reversal of the direction. A steer request equal to
// the opposite of the committed direction is always rejected.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	switch d {
	case DirUp, DirDown, DirLeft, DirRight:
		return true
	}
	return false
}

// SnakePhase is the snake engine's lifecycle state.
type SnakePhase string

const (
	SnakeIdle      SnakePhase = "idle"
	SnakeCountdown SnakePhase = "countdown"
	SnakeRunning   SnakePhase = "running"
	SnakePaused    SnakePhase = "paused"
	SnakeEnded     SnakePhase = "ended"
)

// Difficulty labels a snake difficulty profile.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d names a known difficulty profile.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}
