package stats

import (
	"github.com/playhub/portal/internal/kvstore"
	"github.com/playhub/portal/internal/model"
)

// NumberKey is a numeric counter base key with its seeded default.
type NumberKey struct {
	Base    string
	Default int
}

// StringKey is a string-valued base key with its seeded default.
type StringKey struct {
	Base    string
	Default string
}

// KeySet describes one game's family of per-user statistic keys. A Store is
// instantiated once per key set.
type KeySet struct {
	Game    model.Game
	Numbers []NumberKey
	Strings []StringKey
	Recent  string
}

// BaseKeys returns every base key in the set, including the recent-results
// key. The rename migration re-keys all of them.
func (k KeySet) BaseKeys() []string {
	keys := make([]string, 0, len(k.Numbers)+len(k.Strings)+1)
	for _, n := range k.Numbers {
		keys = append(keys, n.Base)
	}
	for _, s := range k.Strings {
		keys = append(keys, s.Base)
	}
	keys = append(keys, k.Recent)
	return keys
}

// SnakeKeys returns the snake game's statistic key set.
func SnakeKeys() KeySet {
	return KeySet{
		Game: model.GameSnake,
		Numbers: []NumberKey{
			{Base: kvstore.KeySnakeBestScore},
			{Base: kvstore.KeySnakeTotalPoints},
			{Base: kvstore.KeySnakeTotalMisses},
			{Base: kvstore.KeySnakeGamesPlayed},
			{Base: kvstore.KeySnakeSessions},
		},
		Strings: []StringKey{
			{Base: kvstore.KeySnakeLastDifficulty, Default: string(model.DifficultyMedium)},
		},
		Recent: kvstore.KeySnakeRecentResults,
	}
}

// WordsKeys returns the word game's statistic key set.
func WordsKeys() KeySet {
	return KeySet{
		Game: model.GameWords,
		Numbers: []NumberKey{
			{Base: kvstore.KeyWordsBestScore},
			{Base: kvstore.KeyWordsTotalPoints},
			{Base: kvstore.KeyWordsGamesPlayed},
			{Base: kvstore.KeyWordsWins},
			{Base: kvstore.KeyWordsSessions},
			{Base: kvstore.KeyWordsCurrentStreak},
			{Base: kvstore.KeyWordsBestStreak},
		},
		Recent: kvstore.KeyWordsRecentResults,
	}
}
