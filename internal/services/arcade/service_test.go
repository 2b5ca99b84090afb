package arcade

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/playhub/portal/internal/dependencies/mocks"
	"github.com/playhub/portal/internal/kvstore"
	"github.com/playhub/portal/internal/kvstore/memory"
	"github.com/playhub/portal/internal/model"
	"github.com/playhub/portal/internal/services/dictionary"
	"github.com/playhub/portal/internal/services/scores"
	"github.com/playhub/portal/internal/services/stats"
	"github.com/playhub/portal/internal/testutil"
)

type ArcadeSuite struct {
	suite.Suite
	clock   *mocks.MockClock
	random  *mocks.MockRandom
	service *Service
	ctx     context.Context
}

func (s *ArcadeSuite) SetupTest() {
	logger := testutil.NopLogger()
	kv := kvstore.New(memory.New(), logger)
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	snakeStats := stats.New(kv, stats.SnakeKeys(), logger)
	wordsStats := stats.New(kv, stats.WordsKeys(), logger)
	sc := scores.New(kv, s.clock, logger)
	dict := dictionary.New(s.random)
	s.service = New(snakeStats, wordsStats, sc, dict, s.clock, s.random, logger)
	s.ctx = context.Background()
}

func (s *ArcadeSuite) TestEnginesAreScopedPerToken() {
	first := s.service.Snake("token-a", "alice")
	s.Same(first, s.service.Snake("token-a", "alice"))
	s.NotSame(first, s.service.Snake("token-b", "alice"))

	words := s.service.Words("token-a", "alice")
	s.Same(words, s.service.Words("token-a", "alice"))
	s.NotSame(words, s.service.Words("token-b", "alice"))
}

func (s *ArcadeSuite) TestTeardownStopsRunningGame() {
	engine := s.service.Snake("token-a", "alice")
	s.Require().NoError(engine.Start(s.ctx, model.DifficultyEasy))

	s.service.Teardown("token-a")

	tickers := s.clock.Tickers()
	s.Require().NotEmpty(tickers)
	s.True(tickers[len(tickers)-1].Stopped())

	// A new engine is created after teardown.
	s.NotSame(engine, s.service.Snake("token-a", "alice"))
}

func (s *ArcadeSuite) TestTeardownUnknownTokenIsNoop() {
	s.service.Teardown("never-seen")
}

func TestArcadeSuite(t *testing.T) {
	suite.Run(t, new(ArcadeSuite))
}
