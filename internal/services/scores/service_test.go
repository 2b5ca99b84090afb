package scores

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/playhub/portal/internal/dependencies/mocks"
	"github.com/playhub/portal/internal/kvstore"
	"github.com/playhub/portal/internal/kvstore/memory"
	"github.com/playhub/portal/internal/model"
	"github.com/playhub/portal/internal/services/stats"
	"github.com/playhub/portal/internal/testutil"
)

type ScoresSuite struct {
	suite.Suite
	kv      *kvstore.KV
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func (s *ScoresSuite) SetupTest() {
	s.kv = kvstore.New(memory.New(), testutil.NopLogger())
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.kv, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ScoresSuite) append(username string, game model.Game, score int) model.ScoreRecord {
	return s.service.Append(s.ctx, model.ScoreRecord{
		Username: username,
		Game:     game,
		Score:    score,
	})
}

func (s *ScoresSuite) TestAppendAssignsIDAndTimestamp() {
	record := s.append("alice", model.GameSnake, 4)

	s.NotEmpty(record.ID)
	s.Equal(s.clock.Now(), record.Timestamp)

	s.clock.Advance(time.Hour)
	second := s.append("alice", model.GameSnake, 8)
	s.NotEqual(record.ID, second.ID)
	s.Equal(s.clock.Now(), second.Timestamp)
}

func (s *ScoresSuite) TestAllPreservesAppendOrder() {
	s.append("alice", model.GameSnake, 4)
	s.append("bob", model.GameWords, 50)
	s.append("alice", model.GameSnake, 2)

	all := s.service.All(s.ctx)
	s.Require().Len(all, 3)
	s.Equal(4, all[0].Score)
	s.Equal(50, all[1].Score)
	s.Equal(2, all[2].Score)
}

func (s *ScoresSuite) TestForUser() {
	s.append("alice", model.GameSnake, 4)
	s.append("bob", model.GameSnake, 9)
	s.append("alice", model.GameWords, 50)

	mine := s.service.ForUser(s.ctx, "alice")
	s.Require().Len(mine, 2)
	s.Equal(model.GameSnake, mine[0].Game)
	s.Equal(model.GameWords, mine[1].Game)

	s.Empty(s.service.ForUser(s.ctx, "ghost"))
}

func (s *ScoresSuite) TestTopFiltersAndSorts() {
	s.append("alice", model.GameSnake, 4)
	s.append("bob", model.GameSnake, 9)
	s.append("carol", model.GameWords, 50)
	s.append("alice", model.GameSnake, 6)

	top := s.service.Top(s.ctx, model.GameSnake, 10)
	s.Require().Len(top, 3)
	s.Equal(9, top[0].Score)
	s.Equal(6, top[1].Score)
	s.Equal(4, top[2].Score)
}

func (s *ScoresSuite) TestTopAppliesLimit() {
	for i := 1; i <= 5; i++ {
		s.append("alice", model.GameSnake, i)
	}

	top := s.service.Top(s.ctx, model.GameSnake, 2)
	s.Require().Len(top, 2)
	s.Equal(5, top[0].Score)
	s.Equal(4, top[1].Score)
}

func (s *ScoresSuite) TestTopTiesKeepAppendOrder() {
	first := s.append("alice", model.GameSnake, 7)
	second := s.append("bob", model.GameSnake, 7)

	top := s.service.Top(s.ctx, model.GameSnake, 10)
	s.Require().Len(top, 2)
	s.Equal(first.ID, top[0].ID)
	s.Equal(second.ID, top[1].ID)
}

func (s *ScoresSuite) seedUser(st *stats.Store, username string, best, total, played int) {
	users := kvstore.Read(s.ctx, s.kv, kvstore.KeyUsers, []model.User{})
	users = append(users, model.User{Username: username})
	kvstore.Write(s.ctx, s.kv, kvstore.KeyUsers, users)

	keys := st.Keys()
	if keys.Game == model.GameWords {
		st.SetNumber(s.ctx, kvstore.KeyWordsBestScore, username, best)
		st.SetNumber(s.ctx, kvstore.KeyWordsTotalPoints, username, total)
		st.SetNumber(s.ctx, kvstore.KeyWordsGamesPlayed, username, played)
	} else {
		st.SetNumber(s.ctx, kvstore.KeySnakeBestScore, username, best)
		st.SetNumber(s.ctx, kvstore.KeySnakeTotalPoints, username, total)
		st.SetNumber(s.ctx, kvstore.KeySnakeGamesPlayed, username, played)
	}
}

func (s *ScoresSuite) TestLeaderboardSortsByBestScoreThenUsername() {
	snakeStats := stats.New(s.kv, stats.SnakeKeys(), testutil.NopLogger())
	s.seedUser(snakeStats, "carol", 5, 12, 3)
	s.seedUser(snakeStats, "bob", 9, 20, 4)
	s.seedUser(snakeStats, "alice", 5, 8, 2)

	rows := s.service.Leaderboard(s.ctx, snakeStats)
	s.Require().Len(rows, 3)
	s.Equal("bob", rows[0].Username)
	s.Equal("alice", rows[1].Username)
	s.Equal("carol", rows[2].Username)

	s.Equal(9, rows[0].BestScore)
	s.Equal(20, rows[0].TotalPoints)
	s.Equal(4, rows[0].GamesPlayed)
	s.Zero(rows[0].Wins)
	s.Nil(rows[0].LastPlayed)
}

func (s *ScoresSuite) TestLeaderboardIncludesWordsExtras() {
	wordsStats := stats.New(s.kv, stats.WordsKeys(), testutil.NopLogger())
	s.seedUser(wordsStats, "alice", 60, 110, 3)
	wordsStats.SetNumber(s.ctx, kvstore.KeyWordsWins, "alice", 2)
	wordsStats.SetNumber(s.ctx, kvstore.KeyWordsBestStreak, "alice", 2)

	played := s.clock.Now()
	wordsStats.PushRecent(s.ctx, "alice", model.RecentResult{
		Game:  model.GameWords,
		Score: 60,
		Date:  played,
	})

	rows := s.service.Leaderboard(s.ctx, wordsStats)
	s.Require().Len(rows, 1)
	s.Equal(2, rows[0].Wins)
	s.Equal(2, rows[0].BestStreak)
	s.Require().NotNil(rows[0].LastPlayed)
	s.Equal(played, *rows[0].LastPlayed)
}

func (s *ScoresSuite) TestLeaderboardEmptyWithoutUsers() {
	snakeStats := stats.New(s.kv, stats.SnakeKeys(), testutil.NopLogger())
	s.Empty(s.service.Leaderboard(s.ctx, snakeStats))
}

func TestScoresSuite(t *testing.T) {
	suite.Run(t, new(ScoresSuite))
}
