package registry

import (
	"github.com/playhub/portal/internal/kvstore"
	"github.com/playhub/portal/internal/model"
)

func (s *RegistrySuite) TestRenameValidation() {
	s.register("alice")
	s.register("bob")

	cases := []struct {
		name    string
		old     string
		new     string
		message string
	}{
		{"empty", "alice", "  ", "username cannot be empty"},
		{"too short", "alice", "al", "username must be at least 3 characters"},
		{"unchanged", "alice", "alice", "new username is the same as current"},
		{"taken", "alice", "bob", "username already taken"},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			result := s.registry.Rename(s.ctx, tc.old, tc.new)
			s.False(result.Success)
			s.Equal(tc.message, result.Message)
		})
	}
}

func (s *RegistrySuite) TestRenameUpdatesUserRecord() {
	s.register("alice")

	result := s.registry.Rename(s.ctx, "alice", "alicia")
	s.Require().True(result.Success)

	_, err := s.registry.User(s.ctx, "alice")
	s.Require().ErrorIs(err, model.ErrUserNotFound)

	user, err := s.registry.User(s.ctx, "alicia")
	s.Require().NoError(err)
	s.Equal("alice@example.com", user.Email)
}

func (s *RegistrySuite) TestRenameUpdatesActiveSessionKeepingToken() {
	session := s.register("alice")

	result := s.registry.Rename(s.ctx, "alice", "alicia")
	s.Require().True(result.Success)

	current := s.registry.CurrentSession(s.ctx)
	s.Require().NotNil(current)
	s.Equal("alicia", current.Username)
	s.Equal(session.Token, current.Token)
}

func (s *RegistrySuite) TestRenameLeavesOtherSessionAlone() {
	s.register("alice")
	s.register("bob") // bob now holds the active session

	result := s.registry.Rename(s.ctx, "alice", "alicia")
	s.Require().True(result.Success)

	current := s.registry.CurrentSession(s.ctx)
	s.Require().NotNil(current)
	s.Equal("bob", current.Username)
}

func (s *RegistrySuite) TestRenameMigratesNamespacedKeys() {
	s.register("alice")
	s.snake.SetNumber(s.ctx, kvstore.KeySnakeBestScore, "alice", 42)
	s.words.SetNumber(s.ctx, kvstore.KeyWordsBestStreak, "alice", 7)
	kvstore.Write(s.ctx, s.durable, kvstore.Key(kvstore.KeyProfileDisplayName, "alice"), "Ally")

	result := s.registry.Rename(s.ctx, "alice", "alicia")
	s.Require().True(result.Success)

	for _, base := range s.registry.migratedBaseKeys() {
		s.False(s.durable.Has(s.ctx, kvstore.Key(base, "alice")), base)
	}
	s.Equal(42, s.snake.Number(s.ctx, kvstore.KeySnakeBestScore, "alicia", 0))
	s.Equal(7, s.words.Number(s.ctx, kvstore.KeyWordsBestStreak, "alicia", 0))
	s.Equal("Ally", kvstore.Read(s.ctx, s.durable, kvstore.Key(kvstore.KeyProfileDisplayName, "alicia"), ""))
}

func (s *RegistrySuite) TestRenameSkipsMissingKeys() {
	s.register("alice")
	// Display name was never set; the migration must not invent one.
	result := s.registry.Rename(s.ctx, "alice", "alicia")
	s.Require().True(result.Success)

	s.False(s.durable.Has(s.ctx, kvstore.Key(kvstore.KeyProfileDisplayName, "alicia")))
}

func (s *RegistrySuite) TestRenameRewritesScoreLog() {
	s.register("alice")
	kvstore.Write(s.ctx, s.durable, kvstore.KeyScores, []model.ScoreRecord{
		{ID: "1", Username: "alice", Game: model.GameSnake, Score: 4},
		{ID: "2", Username: "bob", Game: model.GameSnake, Score: 9},
	})

	result := s.registry.Rename(s.ctx, "alice", "alicia")
	s.Require().True(result.Success)

	scoreLog := kvstore.Read(s.ctx, s.durable, kvstore.KeyScores, []model.ScoreRecord{})
	s.Require().Len(scoreLog, 2)
	s.Equal("alicia", scoreLog[0].Username)
	s.Equal("bob", scoreLog[1].Username)
}

func (s *RegistrySuite) TestRenameRewritesSessionLog() {
	s.register("alice")
	s.registry.Logout(s.ctx)
	_, err := s.registry.Login(s.ctx, "alice", goodPassword)
	s.Require().NoError(err)

	result := s.registry.Rename(s.ctx, "alice", "alicia")
	s.Require().True(result.Success)

	for _, entry := range s.registry.SessionLog(s.ctx) {
		s.Equal("alicia", entry.Username)
	}
}

func (s *RegistrySuite) TestRenameAllowsLoginUnderNewName() {
	s.register("alice")
	s.Require().True(s.registry.Rename(s.ctx, "alice", "alicia").Success)
	s.registry.Logout(s.ctx)

	_, err := s.registry.Login(s.ctx, "alice", goodPassword)
	s.Require().ErrorIs(err, model.ErrUserNotFound)

	session, err := s.registry.Login(s.ctx, "alicia", goodPassword)
	s.Require().NoError(err)
	s.Equal("alicia", session.Username)
}
