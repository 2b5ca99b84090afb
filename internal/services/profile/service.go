package profile

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/playhub/portal/internal/kvstore"
	"github.com/playhub/portal/internal/model"
	"github.com/playhub/portal/internal/services/registry"
	"github.com/playhub/portal/internal/services/stats"
)

// MaxDisplayNameLen bounds the settable display name.
const MaxDisplayNameLen = 30

// Service exposes profile metadata and the aggregated profile summary.
type Service struct {
	kv         *kvstore.KV
	registry   *registry.Service
	snakeStats *stats.Store
	wordsStats *stats.Store
	logger     *slog.Logger
}

// New creates a profile service.
func New(
	kv *kvstore.KV,
	reg *registry.Service,
	snakeStats *stats.Store,
	wordsStats *stats.Store,
	logger *slog.Logger,
) *Service {
	return &Service{
		kv:         kv,
		registry:   reg,
		snakeStats: snakeStats,
		wordsStats: wordsStats,
		logger:     logger,
	}
}

// DisplayName returns the user's display name, falling back to the username
// when none has been set.
func (s *Service) DisplayName(ctx context.Context, username string) string {
	return kvstore.Read(ctx, s.kv, kvstore.Key(kvstore.KeyProfileDisplayName, username), username)
}

// SetDisplayName sets the user's display name.
func (s *Service) SetDisplayName(ctx context.Context, username, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.NewValidationError("displayName", "display name cannot be empty")
	}
	if len(name) > MaxDisplayNameLen {
		return model.NewValidationError("displayName", "display name is too long")
	}

	kvstore.Write(ctx, s.kv, kvstore.Key(kvstore.KeyProfileDisplayName, username), name)
	return nil
}

// MemberSince returns the user's registration time as recorded in profile
// metadata. The zero time means the record is missing.
func (s *Service) MemberSince(ctx context.Context, username string) time.Time {
	return kvstore.Read(ctx, s.kv, kvstore.Key(kvstore.KeyProfileMemberSince, username), time.Time{})
}

// DarkMode returns the portal-wide dark mode preference.
func (s *Service) DarkMode(ctx context.Context) bool {
	return kvstore.Read(ctx, s.kv, kvstore.KeyDarkMode, false)
}

// SetDarkMode stores the portal-wide dark mode preference.
func (s *Service) SetDarkMode(ctx context.Context, enabled bool) {
	kvstore.Write(ctx, s.kv, kvstore.KeyDarkMode, enabled)
}

// GameStats is one game's block of the profile summary.
type GameStats struct {
	BestScore      int                  `json:"bestScore"`
	TotalPoints    int                  `json:"totalPoints"`
	GamesPlayed    int                  `json:"gamesPlayed"`
	Sessions       int                  `json:"sessions"`
	Wins           int                  `json:"wins,omitempty"`
	CurrentStreak  int                  `json:"currentStreak,omitempty"`
	BestStreak     int                  `json:"bestStreak,omitempty"`
	LastDifficulty string               `json:"lastDifficulty,omitempty"`
	Recent         []model.RecentResult `json:"recent"`
}

// Summary is the aggregated profile view.
type Summary struct {
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	MemberSince time.Time `json:"memberSince"`
	TotalLogins int       `json:"totalLogins"`
	Snake       GameStats `json:"snake"`
	Words       GameStats `json:"words"`
}

// Summary aggregates the user record, profile metadata, and both games'
// statistics into one view.
func (s *Service) Summary(ctx context.Context, username string) (*Summary, error) {
	user, err := s.registry.User(ctx, username)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Username:    user.Username,
		DisplayName: s.DisplayName(ctx, username),
		Email:       user.Email,
		MemberSince: s.MemberSince(ctx, username),
		TotalLogins: user.TotalLogins,
		Snake: GameStats{
			BestScore:      s.snakeStats.Number(ctx, kvstore.KeySnakeBestScore, username, 0),
			TotalPoints:    s.snakeStats.Number(ctx, kvstore.KeySnakeTotalPoints, username, 0),
			GamesPlayed:    s.snakeStats.Number(ctx, kvstore.KeySnakeGamesPlayed, username, 0),
			Sessions:       s.snakeStats.Number(ctx, kvstore.KeySnakeSessions, username, 0),
			LastDifficulty: s.snakeStats.Str(ctx, kvstore.KeySnakeLastDifficulty, username, string(model.DifficultyMedium)),
			Recent:         s.snakeStats.Recent(ctx, username),
		},
		Words: GameStats{
			BestScore:     s.wordsStats.Number(ctx, kvstore.KeyWordsBestScore, username, 0),
			TotalPoints:   s.wordsStats.Number(ctx, kvstore.KeyWordsTotalPoints, username, 0),
			GamesPlayed:   s.wordsStats.Number(ctx, kvstore.KeyWordsGamesPlayed, username, 0),
			Sessions:      s.wordsStats.Number(ctx, kvstore.KeyWordsSessions, username, 0),
			Wins:          s.wordsStats.Number(ctx, kvstore.KeyWordsWins, username, 0),
			CurrentStreak: s.wordsStats.Number(ctx, kvstore.KeyWordsCurrentStreak, username, 0),
			BestStreak:    s.wordsStats.Number(ctx, kvstore.KeyWordsBestStreak, username, 0),
			Recent:        s.wordsStats.Recent(ctx, username),
		},
	}, nil
}

// ResetProgress wipes both games' statistics for the user and re-seeds the
// defaults. The global score log keeps its history; it is append-only.
func (s *Service) ResetProgress(ctx context.Context, username string) error {
	if _, err := s.registry.User(ctx, username); err != nil {
		return err
	}

	s.snakeStats.DeleteAll(ctx, username)
	s.wordsStats.DeleteAll(ctx, username)
	s.snakeStats.EnsureDefaults(ctx, username)
	s.wordsStats.EnsureDefaults(ctx, username)

	s.logger.Info("profile progress reset", slog.String("username", username))
	return nil
}
