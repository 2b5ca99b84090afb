package snake

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/playhub/portal/internal/dependencies/clock"
	"github.com/playhub/portal/internal/dependencies/random"
	"github.com/playhub/portal/internal/kvstore"
	"github.com/playhub/portal/internal/model"
	"github.com/playhub/portal/internal/services/scores"
	"github.com/playhub/portal/internal/services/stats"
)

// Engine runs one user's snake game. It owns the grid state and a single
// cancellable tick loop; Start always tears down the previous loop before
// creating a new one, so a stale ticker can never mutate a fresh game.
//
// Tick processing happens inside Step, which the loop goroutine calls on
// every ticker fire. Tests drive Step directly instead of the goroutine.
type Engine struct {
	username string
	stats    *stats.Store
	scores   *scores.Service
	clock    clock.Clock
	random   random.Random
	logger   *slog.Logger

	mu             sync.Mutex
	phase          model.SnakePhase
	difficulty     model.Difficulty
	profile        Profile
	snake          []model.Coord
	dir            model.Direction
	nextDir        model.Direction
	food           model.Coord
	score          int
	newRecord      bool
	countdownUntil time.Time

	ticker   clock.Ticker
	loopDone chan struct{}
}

// NewEngine creates an idle engine for username.
func NewEngine(
	username string,
	st *stats.Store,
	sc *scores.Service,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		username: username,
		stats:    st,
		scores:   sc,
		clock:    clk,
		random:   rnd,
		logger:   logger,
		phase:    model.SnakeIdle,
	}
}

// Start begins a new game at the given difficulty. Any game already in
// progress is discarded, its loop stopped first. The chosen difficulty is
// persisted as the user's last difficulty and the games-played counter is
// bumped immediately.
func (e *Engine) Start(ctx context.Context, difficulty model.Difficulty) error {
	if !difficulty.Valid() {
		return model.ErrInvalidInput
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopLoopLocked()

	e.difficulty = difficulty
	e.profile = ProfileFor(difficulty)
	e.score = 0
	e.newRecord = false
	e.dir = model.DirRight
	e.nextDir = model.DirRight

	// The snake starts at the center, tail extending left, moving right.
	center := GridSize / 2
	e.snake = make([]model.Coord, 0, InitialLength)
	for i := 0; i < InitialLength; i++ {
		e.snake = append(e.snake, model.Coord{X: center - i, Y: center})
	}
	e.placeFoodLocked()

	e.stats.SetStr(ctx, kvstore.KeySnakeLastDifficulty, e.username, string(difficulty))
	e.stats.Increment(ctx, kvstore.KeySnakeGamesPlayed, e.username, 1)

	e.phase = model.SnakeCountdown
	e.countdownUntil = e.clock.Now().Add(CountdownDuration)
	e.startLoopLocked(e.profile.TickInterval)

	e.logger.Info("snake game started",
		slog.String("username", e.username),
		slog.String("difficulty", string(difficulty)),
	)
	return nil
}

// Steer queues a direction change for the next tick. A reversal of the
// committed travel direction is ignored, not an error; the snake cannot fold
// back onto its own neck.
func (e *Engine) Steer(dir model.Direction) error {
	if !dir.Valid() {
		return model.ErrInvalidInput
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.phase {
	case model.SnakeCountdown, model.SnakeRunning:
	default:
		return model.ErrGameNotActive
	}

	if dir == e.dir.Opposite() {
		return nil
	}
	e.nextDir = dir
	return nil
}

// Pause suspends a running game and its tick loop.
func (e *Engine) Pause() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != model.SnakeRunning {
		return model.ErrGameNotActive
	}
	e.stopLoopLocked()
	e.phase = model.SnakePaused
	return nil
}

// Resume continues a paused game with a fresh tick loop.
func (e *Engine) Resume() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != model.SnakePaused {
		return model.ErrGameNotActive
	}
	e.phase = model.SnakeRunning
	e.startLoopLocked(e.profile.TickInterval)
	return nil
}

// Stop abandons the game without recording anything. Used when the user
// leaves the game or logs out mid-play.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopLoopLocked()
	e.phase = model.SnakeIdle
}

// Step advances the game by one tick. During countdown it only checks
// whether the countdown has elapsed; movement begins on the following tick.
func (e *Engine) Step(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.phase {
	case model.SnakeCountdown:
		if !e.clock.Now().Before(e.countdownUntil) {
			e.phase = model.SnakeRunning
		}
		return
	case model.SnakeRunning:
	default:
		return
	}

	e.dir = e.nextDir
	vec := e.dir.Vector()
	head := e.snake[0]
	next := model.Coord{X: head.X + vec.X, Y: head.Y + vec.Y}

	if next.X < 0 || next.X >= GridSize || next.Y < 0 || next.Y >= GridSize {
		if !e.profile.WrapWalls {
			e.finishLocked(ctx, false)
			return
		}
		next.X = (next.X + GridSize) % GridSize
		next.Y = (next.Y + GridSize) % GridSize
	}

	// Full-body collision check, tail included: moving into the cell the
	// tail is about to vacate still ends the game.
	for _, seg := range e.snake {
		if seg == next {
			e.finishLocked(ctx, false)
			return
		}
	}

	if next == e.food {
		e.snake = append([]model.Coord{next}, e.snake...)
		e.score += e.profile.Multiplier
		if !e.placeFoodLocked() {
			// Board exhausted: nowhere left to spawn food.
			e.finishLocked(ctx, true)
		}
		return
	}

	e.snake = append([]model.Coord{next}, e.snake...)
	e.snake = e.snake[:len(e.snake)-1]
}

// Snapshot returns the current game state for rendering.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	snake := make([]model.Coord, len(e.snake))
	copy(snake, e.snake)

	countdown := 0
	if e.phase == model.SnakeCountdown {
		remaining := e.countdownUntil.Sub(e.clock.Now())
		countdown = int((remaining + time.Second - 1) / time.Second)
		if countdown < 0 {
			countdown = 0
		}
	}

	return Snapshot{
		Phase:      e.phase,
		Difficulty: e.difficulty,
		GridSize:   GridSize,
		Snake:      snake,
		Direction:  e.dir,
		Food:       e.food,
		Score:      e.score,
		Countdown:  countdown,
		NewRecord:  e.newRecord,
	}
}

// Snapshot is the renderable state of a snake game.
type Snapshot struct {
	Phase      model.SnakePhase `json:"phase"`
	Difficulty model.Difficulty `json:"difficulty"`
	GridSize   int              `json:"gridSize"`
	Snake      []model.Coord    `json:"snake"`
	Direction  model.Direction  `json:"direction"`
	Food       model.Coord      `json:"food"`
	Score      int              `json:"score"`
	Countdown  int              `json:"countdown"`
	NewRecord  bool             `json:"newRecord"`
}

// placeFoodLocked respawns food uniformly over the empty cells. Returns
// false when the snake covers the whole board.
func (e *Engine) placeFoodLocked() bool {
	occupied := make(map[model.Coord]struct{}, len(e.snake))
	for _, seg := range e.snake {
		occupied[seg] = struct{}{}
	}

	empty := make([]model.Coord, 0, GridSize*GridSize-len(e.snake))
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			c := model.Coord{X: x, Y: y}
			if _, ok := occupied[c]; !ok {
				empty = append(empty, c)
			}
		}
	}

	if len(empty) == 0 {
		return false
	}
	e.food = empty[e.random.Intn(len(empty))]
	return true
}

// finishLocked ends the game and records its outcome: best score when
// improved, total points, session count, the recent-results entry, and a
// global score-log record. A death (not a cleared board) also counts as a
// miss.
func (e *Engine) finishLocked(ctx context.Context, cleared bool) {
	e.stopLoopLocked()
	e.phase = model.SnakeEnded

	best := e.stats.Number(ctx, kvstore.KeySnakeBestScore, e.username, 0)
	if e.score > best {
		e.stats.SetNumber(ctx, kvstore.KeySnakeBestScore, e.username, e.score)
		e.newRecord = true
	}
	e.stats.Increment(ctx, kvstore.KeySnakeTotalPoints, e.username, e.score)
	e.stats.Increment(ctx, kvstore.KeySnakeSessions, e.username, 1)
	if !cleared {
		e.stats.Increment(ctx, kvstore.KeySnakeTotalMisses, e.username, 1)
	}

	e.stats.PushRecent(ctx, e.username, model.RecentResult{
		Game:       model.GameSnake,
		Score:      e.score,
		Date:       e.clock.Now(),
		Difficulty: string(e.difficulty),
	})

	e.scores.Append(ctx, model.ScoreRecord{
		Username: e.username,
		Game:     model.GameSnake,
		Score:    e.score,
	})

	e.logger.Info("snake game over",
		slog.String("username", e.username),
		slog.Int("score", e.score),
		slog.Bool("new_record", e.newRecord),
		slog.Bool("board_cleared", cleared),
	)
}

// startLoopLocked spins up the tick goroutine. Callers hold e.mu; any
// previous loop must already be stopped.
func (e *Engine) startLoopLocked(interval time.Duration) {
	ticker := e.clock.NewTicker(interval)
	done := make(chan struct{})
	e.ticker = ticker
	e.loopDone = done

	ctx := context.Background()
	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C():
				e.Step(ctx)
			}
		}
	}()
}

// stopLoopLocked cancels the ticker and its goroutine. Callers hold e.mu.
func (e *Engine) stopLoopLocked() {
	if e.ticker == nil {
		return
	}
	e.ticker.Stop()
	close(e.loopDone)
	e.ticker = nil
	e.loopDone = nil
}
