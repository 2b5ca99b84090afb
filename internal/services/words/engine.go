package words

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/playhub/portal/internal/dependencies/clock"
	"github.com/playhub/portal/internal/kvstore"
	"github.com/playhub/portal/internal/model"
	"github.com/playhub/portal/internal/services/dictionary"
	"github.com/playhub/portal/internal/services/scores"
	"github.com/playhub/portal/internal/services/stats"
)

// MaxAttempts is the number of guess rows per game.
const MaxAttempts = 6

// Engine runs one user's word-guess game. A submitted guess moves the game
// into the revealing phase, during which all input is rejected; the client
// calls FinishReveal when its flip animation completes, and only then does
// the row advance or the game end.
type Engine struct {
	username string
	stats    *stats.Store
	scores   *scores.Service
	dict     *dictionary.Service
	clock    clock.Clock
	logger   *slog.Logger

	mu        sync.Mutex
	phase     model.WordsPhase
	answer    string
	row       int
	col       int
	board     [][]model.Tile
	guesses   []string
	keyboard  map[string]model.Mark
	score     int
	newRecord bool
}

// NewEngine creates an engine with no game in progress.
func NewEngine(
	username string,
	st *stats.Store,
	sc *scores.Service,
	dict *dictionary.Service,
	clk clock.Clock,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		username: username,
		stats:    st,
		scores:   sc,
		dict:     dict,
		clock:    clk,
		logger:   logger,
	}
}

// Start begins a new game with a fresh answer drawn from the dictionary.
func (e *Engine) Start(ctx context.Context) error {
	answer := e.dict.PickAnswer()
	if answer == "" {
		return model.ErrDictionaryNotLoaded
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.phase = model.WordsPlaying
	e.answer = answer
	e.row = 0
	e.col = 0
	e.guesses = nil
	e.keyboard = make(map[string]model.Mark)
	e.score = 0
	e.newRecord = false

	e.board = make([][]model.Tile, MaxAttempts)
	for i := range e.board {
		e.board[i] = make([]model.Tile, dictionary.WordLength)
	}

	e.logger.Info("word game started", slog.String("username", e.username))
	return nil
}

// AddLetter types a letter into the current row. A full row swallows further
// letters without error, matching on-screen keyboard behavior.
func (e *Engine) AddLetter(letter string) error {
	letter = strings.ToUpper(letter)
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
		return model.ErrInvalidInput
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.playableLocked(); err != nil {
		return err
	}
	if e.col >= dictionary.WordLength {
		return nil
	}

	e.board[e.row][e.col] = model.Tile{Letter: letter}
	e.col++
	return nil
}

// DeleteLetter removes the last typed letter. An empty row is a no-op.
func (e *Engine) DeleteLetter() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.playableLocked(); err != nil {
		return err
	}
	if e.col == 0 {
		return nil
	}

	e.col--
	e.board[e.row][e.col] = model.Tile{}
	return nil
}

// SubmitGuess evaluates the current row. On success the game enters the
// revealing phase and the row's marks are returned; the row itself does not
// advance until FinishReveal. Rejected guesses leave the row editable.
func (e *Engine) SubmitGuess(ctx context.Context) ([]model.Mark, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.playableLocked(); err != nil {
		return nil, err
	}

	if e.col != dictionary.WordLength {
		return nil, model.ErrWrongLength
	}

	var b strings.Builder
	for _, tile := range e.board[e.row] {
		b.WriteString(tile.Letter)
	}
	guess := b.String()

	if !e.dict.IsAllowed(guess) {
		return nil, model.ErrInvalidWord
	}
	for _, prev := range e.guesses {
		if prev == guess {
			return nil, model.ErrDuplicateGuess
		}
	}

	marks := Evaluate(guess, e.answer)
	for i, mark := range marks {
		e.board[e.row][i].Mark = mark

		letter := e.board[e.row][i].Letter
		if mark.Upgrades(e.keyboard[letter]) {
			e.keyboard[letter] = mark
		}
	}

	e.guesses = append(e.guesses, guess)
	e.phase = model.WordsRevealing
	return marks, nil
}

// FinishReveal completes the reveal of the last submitted guess, advancing
// the row or ending the game.
func (e *Engine) FinishReveal(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != model.WordsRevealing {
		return model.ErrGameNotActive
	}

	if e.guesses[len(e.guesses)-1] == e.answer {
		e.finishLocked(ctx, true)
		return nil
	}

	e.row++
	e.col = 0
	if e.row >= MaxAttempts {
		e.finishLocked(ctx, false)
		return nil
	}

	e.phase = model.WordsPlaying
	return nil
}

// Stop abandons the game without recording anything.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.phase = ""
}

// Snapshot returns the current game state for rendering. The answer is
// included only once the game is over.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	board := make([][]model.Tile, len(e.board))
	for i, row := range e.board {
		board[i] = make([]model.Tile, len(row))
		copy(board[i], row)
	}
	keyboard := make(map[string]model.Mark, len(e.keyboard))
	for k, v := range e.keyboard {
		keyboard[k] = v
	}

	snap := Snapshot{
		Phase:     e.phase,
		Row:       e.row,
		Board:     board,
		Keyboard:  keyboard,
		Score:     e.score,
		Attempts:  len(e.guesses),
		NewRecord: e.newRecord,
	}
	if e.phase == model.WordsWon || e.phase == model.WordsLost {
		snap.Answer = e.answer
	}
	return snap
}

// Snapshot is the renderable state of a word-guess game.
type Snapshot struct {
	Phase     model.WordsPhase      `json:"phase"`
	Row       int                   `json:"row"`
	Board     [][]model.Tile        `json:"board"`
	Keyboard  map[string]model.Mark `json:"keyboard"`
	Score     int                   `json:"score"`
	Attempts  int                   `json:"attempts"`
	NewRecord bool                  `json:"newRecord"`
	Answer    string                `json:"answer,omitempty"`
}

// playableLocked gates input methods on the game phase. Callers hold e.mu.
func (e *Engine) playableLocked() error {
	switch e.phase {
	case model.WordsPlaying:
		return nil
	case model.WordsRevealing:
		return model.ErrRevealing
	case model.WordsWon, model.WordsLost:
		return model.ErrGameOver
	default:
		return model.ErrGameNotActive
	}
}

// finishLocked records the outcome. A win scores (rows remaining)*10 and
// extends the streak; a loss scores nothing and resets it. Both count toward
// games played and sessions.
func (e *Engine) finishLocked(ctx context.Context, won bool) {
	attempts := len(e.guesses)

	e.stats.Increment(ctx, kvstore.KeyWordsGamesPlayed, e.username, 1)
	e.stats.Increment(ctx, kvstore.KeyWordsSessions, e.username, 1)

	if won {
		e.phase = model.WordsWon
		e.score = (MaxAttempts - (attempts - 1)) * 10

		e.stats.Increment(ctx, kvstore.KeyWordsWins, e.username, 1)
		e.stats.Increment(ctx, kvstore.KeyWordsTotalPoints, e.username, e.score)

		streak := e.stats.Increment(ctx, kvstore.KeyWordsCurrentStreak, e.username, 1)
		if streak > e.stats.Number(ctx, kvstore.KeyWordsBestStreak, e.username, 0) {
			e.stats.SetNumber(ctx, kvstore.KeyWordsBestStreak, e.username, streak)
		}

		if e.score > e.stats.Number(ctx, kvstore.KeyWordsBestScore, e.username, 0) {
			e.stats.SetNumber(ctx, kvstore.KeyWordsBestScore, e.username, e.score)
			e.newRecord = true
		}
	} else {
		e.phase = model.WordsLost
		e.score = 0
		e.stats.SetNumber(ctx, kvstore.KeyWordsCurrentStreak, e.username, 0)
	}

	// Losses always carry a full board (6 attempts), labelled "X/6".
	label := "X/6"
	if won {
		label = fmt.Sprintf("%d/%d", attempts, MaxAttempts)
	}
	e.stats.PushRecent(ctx, e.username, model.RecentResult{
		Game:       model.GameWords,
		Score:      e.score,
		Date:       e.clock.Now(),
		Attempts:   attempts,
		Difficulty: label,
	})

	e.scores.Append(ctx, model.ScoreRecord{
		Username: e.username,
		Game:     model.GameWords,
		Score:    e.score,
		Attempts: attempts,
		Won:      won,
	})

	e.logger.Info("word game over",
		slog.String("username", e.username),
		slog.Bool("won", won),
		slog.Int("attempts", attempts),
		slog.Int("score", e.score),
	)
}
