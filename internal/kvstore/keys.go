package kvstore

// Global keys (durable store unless noted).
const (
	KeyUsers          = "gameHub_users"
	KeySessionLog     = "gameHub_sessions"
	KeyScores         = "gameHub_scores"
	KeyCurrentSession = "gameHub_currentSession" // volatile store
	KeyDarkMode       = "darkMode"               // UI preference, outside core scope
)

// Snake stat base keys, namespaced per user via Key.
const (
	KeySnakeBestScore      = "game1_bestScore"
	KeySnakeTotalPoints    = "game1_totalPoints"
	KeySnakeTotalMisses    = "game1_totalMisses"
	KeySnakeGamesPlayed    = "game1_gamesPlayed"
	KeySnakeSessions       = "game1_sessions"
	KeySnakeRecentResults  = "game1_recentResults"
	KeySnakeLastDifficulty = "game1_lastDifficulty"
)

// Word-game stat base keys, namespaced per user via Key.
const (
	KeyWordsBestScore     = "game2_bestScore"
	KeyWordsTotalPoints   = "game2_totalPoints"
	KeyWordsGamesPlayed   = "game2_gamesPlayed"
	KeyWordsWins          = "game2_wins"
	KeyWordsSessions      = "game2_sessions"
	KeyWordsRecentResults = "game2_recentResults"
	KeyWordsCurrentStreak = "game2_currentStreak"
	KeyWordsBestStreak    = "game2_bestStreak"
)

// Profile metadata and login-throttling base keys, namespaced per user.
const (
	KeyProfileDisplayName = "profile_displayName"
	KeyProfileMemberSince = "profile_memberSince"
	KeyFailedAttempts     = "failedAttempts"
	KeyLockoutTime        = "lockoutTime"
)

// Key builds a per-user namespaced storage key. It is the single source of
// truth for key shape; no other code path may concatenate base and username.
func Key(base, username string) string {
	return base + "_" + username
}
