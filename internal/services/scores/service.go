package scores

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/playhub/portal/internal/dependencies/clock"
	"github.com/playhub/portal/internal/kvstore"
	"github.com/playhub/portal/internal/model"
	"github.com/playhub/portal/internal/services/stats"
)

// Service manages the global append-only score log and leaderboard queries.
// Records are never mutated in place; the only writer besides Append is the
// username-rename migration in the registry.
type Service struct {
	kv     *kvstore.KV
	clock  clock.Clock
	logger *slog.Logger
}

// New creates a new score log service.
func New(kv *kvstore.KV, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		kv:     kv,
		clock:  clk,
		logger: logger,
	}
}

// Append adds a record to the score log, assigning its ID and timestamp.
func (s *Service) Append(ctx context.Context, record model.ScoreRecord) model.ScoreRecord {
	record.ID = uuid.NewString()
	record.Timestamp = s.clock.Now()

	log := s.All(ctx)
	log = append(log, record)
	kvstore.Write(ctx, s.kv, kvstore.KeyScores, log)

	return record
}

// All returns every score record across users and games.
func (s *Service) All(ctx context.Context) []model.ScoreRecord {
	return kvstore.Read(ctx, s.kv, kvstore.KeyScores, []model.ScoreRecord{})
}

// ForUser returns a user's score records.
func (s *Service) ForUser(ctx context.Context, username string) []model.ScoreRecord {
	return lo.Filter(s.All(ctx), func(r model.ScoreRecord, _ int) bool {
		return r.Username == username
	})
}

// Top returns the highest-scoring records for a game, best first, cut to
// limit.
func (s *Service) Top(ctx context.Context, game model.Game, limit int) []model.ScoreRecord {
	matching := lo.Filter(s.All(ctx), func(r model.ScoreRecord, _ int) bool {
		return r.Game == game
	})

	sort.SliceStable(matching, func(i, j int) bool {
		return matching[i].Score > matching[j].Score
	})

	if limit > 0 && len(matching) > limit {
		matching = matching[:limit]
	}
	return matching
}

// Row is one user's leaderboard entry for a game, aggregated from the
// per-user statistics keys.
type Row struct {
	Username    string     `json:"username"`
	BestScore   int        `json:"bestScore"`
	TotalPoints int        `json:"totalPoints"`
	GamesPlayed int        `json:"gamesPlayed"`
	Wins        int        `json:"wins,omitempty"`
	BestStreak  int        `json:"bestStreak,omitempty"`
	LastPlayed  *time.Time `json:"lastPlayed,omitempty"`
}

// Leaderboard aggregates a row per registered user from the given game's
// statistics store, sorted by best score descending then username.
func (s *Service) Leaderboard(ctx context.Context, st *stats.Store) []Row {
	users := kvstore.Read(ctx, s.kv, kvstore.KeyUsers, []model.User{})

	rows := lo.Map(users, func(u model.User, _ int) Row {
		keys := st.Keys()
		row := Row{
			Username:    u.Username,
			GamesPlayed: st.Number(ctx, gamesPlayedKey(keys), u.Username, 0),
			TotalPoints: st.Number(ctx, totalPointsKey(keys), u.Username, 0),
			BestScore:   st.Number(ctx, bestScoreKey(keys), u.Username, 0),
		}
		if keys.Game == model.GameWords {
			row.Wins = st.Number(ctx, kvstore.KeyWordsWins, u.Username, 0)
			row.BestStreak = st.Number(ctx, kvstore.KeyWordsBestStreak, u.Username, 0)
		}
		if recent := st.Recent(ctx, u.Username); len(recent) > 0 {
			last := recent[0].Date
			row.LastPlayed = &last
		}
		return row
	})

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].BestScore != rows[j].BestScore {
			return rows[i].BestScore > rows[j].BestScore
		}
		return rows[i].Username < rows[j].Username
	})

	return rows
}

func bestScoreKey(keys stats.KeySet) string {
	if keys.Game == model.GameWords {
		return kvstore.KeyWordsBestScore
	}
	return kvstore.KeySnakeBestScore
}

func totalPointsKey(keys stats.KeySet) string {
	if keys.Game == model.GameWords {
		return kvstore.KeyWordsTotalPoints
	}
	return kvstore.KeySnakeTotalPoints
}

func gamesPlayedKey(keys stats.KeySet) string {
	if keys.Game == model.GameWords {
		return kvstore.KeyWordsGamesPlayed
	}
	return kvstore.KeySnakeGamesPlayed
}
