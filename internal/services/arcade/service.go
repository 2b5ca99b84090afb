package arcade

import (
	"log/slog"
	"sync"

	"github.com/playhub/portal/internal/dependencies/clock"
	"github.com/playhub/portal/internal/dependencies/random"
	"github.com/playhub/portal/internal/services/dictionary"
	"github.com/playhub/portal/internal/services/scores"
	"github.com/playhub/portal/internal/services/snake"
	"github.com/playhub/portal/internal/services/stats"
	"github.com/playhub/portal/internal/services/words"
)

// Service hands out game engines keyed by session token. One engine of each
// kind exists per session; a fresh login gets fresh engines, and Teardown
// stops any loops the session left running.
type Service struct {
	snakeStats *stats.Store
	wordsStats *stats.Store
	scores     *scores.Service
	dict       *dictionary.Service
	clock      clock.Clock
	random     random.Random
	logger     *slog.Logger

	mu     sync.Mutex
	snakes map[string]*snake.Engine
	words  map[string]*words.Engine
}

// New creates an arcade service.
func New(
	snakeStats *stats.Store,
	wordsStats *stats.Store,
	sc *scores.Service,
	dict *dictionary.Service,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *Service {
	return &Service{
		snakeStats: snakeStats,
		wordsStats: wordsStats,
		scores:     sc,
		dict:       dict,
		clock:      clk,
		random:     rnd,
		logger:     logger,
		snakes:     make(map[string]*snake.Engine),
		words:      make(map[string]*words.Engine),
	}
}

// Snake returns the session's snake engine, creating it on first use.
func (s *Service) Snake(token, username string) *snake.Engine {
	s.mu.Lock()
	defer s.mu.Unlock()

	engine, ok := s.snakes[token]
	if !ok {
		engine = snake.NewEngine(username, s.snakeStats, s.scores, s.clock, s.random, s.logger)
		s.snakes[token] = engine
	}
	return engine
}

// Words returns the session's word-guess engine, creating it on first use.
func (s *Service) Words(token, username string) *words.Engine {
	s.mu.Lock()
	defer s.mu.Unlock()

	engine, ok := s.words[token]
	if !ok {
		engine = words.NewEngine(username, s.wordsStats, s.scores, s.dict, s.clock, s.logger)
		s.words[token] = engine
	}
	return engine
}

// Teardown stops and discards the session's engines. Abandoned games record
// nothing.
func (s *Service) Teardown(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if engine, ok := s.snakes[token]; ok {
		engine.Stop()
		delete(s.snakes, token)
	}
	if engine, ok := s.words[token]; ok {
		engine.Stop()
		delete(s.words, token)
	}
}
