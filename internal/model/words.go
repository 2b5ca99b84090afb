package model

// Mark is the evaluation tag on a guessed letter or keyboard key.
type Mark string

const (
	MarkUnknown Mark = ""
	MarkAbsent  Mark = "absent"
	MarkPresent Mark = "present"
	MarkCorrect Mark = "correct"
)

// rank orders marks for the monotonic keyboard upgrade rule:
// a key never downgrades, it may only move toward correct.
func (m Mark) rank() int {
	switch m {
	case MarkCorrect:
		return 3
	case MarkPresent:
		return 2
	case MarkAbsent:
		return 1
	default:
		return 0
	}
}

// Upgrades reports whether m may replace prev on the keyboard.
func (m Mark) Upgrades(prev Mark) bool {
	return m.rank() > prev.rank()
}

// WordsPhase is the word-guess engine's state.
type WordsPhase string

const (
	WordsPlaying   WordsPhase = "playing"
	WordsRevealing WordsPhase = "revealing"
	WordsWon       WordsPhase = "won"
	WordsLost      WordsPhase = "lost"
)

// Tile is one cell of the word-guess board. Letter is empty or a single
// uppercase character.
type Tile struct {
	Letter string `json:"letter"`
	Mark   Mark   `json:"mark"`
}
