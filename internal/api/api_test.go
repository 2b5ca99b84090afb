package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playhub/portal/internal/api"
	"github.com/playhub/portal/internal/api/apierr"
	"github.com/playhub/portal/internal/api/response"
	"github.com/playhub/portal/internal/factory"
	"github.com/playhub/portal/internal/model"
	"github.com/playhub/portal/internal/services/scores"
	"github.com/playhub/portal/internal/services/snake"
	"github.com/playhub/portal/internal/services/words"
	"github.com/playhub/portal/internal/testutil"
)

const testPassword = "Passw0rd!"

// testServer wires the router over a test app with mocked clock and random,
// so the word game's first answer is deterministic (the corpus head, ABOUT).
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp()

	router := api.NewRouter(api.RouterConfig{
		Logger:     testutil.NopLogger(),
		Registry:   app.Registry,
		Arcade:     app.Arcade,
		Profile:    app.Profile,
		Scores:     app.Scores,
		SnakeStats: app.SnakeStats,
		WordsStats: app.WordsStats,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func registerUser(t *testing.T, ts *testServer, username string) string {
	t.Helper()

	body := map[string]string{
		"username":        username,
		"email":           username + "@example.com",
		"password":        testPassword,
		"confirmPassword": testPassword,
	}
	rr := ts.request(http.MethodPost, "/api/v1/auth/register", body, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.AuthResponse
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)

	return resp.SessionToken
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) apierr.APIError {
	t.Helper()

	var resp apierr.ErrorResponse
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)
	return resp.Error
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestRegister(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]string{
		"username":        "alice",
		"email":           "alice@example.com",
		"password":        testPassword,
		"confirmPassword": testPassword,
	}
	rr := ts.request(http.MethodPost, "/api/v1/auth/register", body, "")
	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp response.AuthResponse
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.NotEmpty(t, resp.SessionToken)
}

func TestRegisterValidationError(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]string{
		"username":        "alice",
		"email":           "not-an-email",
		"password":        testPassword,
		"confirmPassword": testPassword,
	}
	rr := ts.request(http.MethodPost, "/api/v1/auth/register", body, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	apiErr := decodeError(t, rr)
	assert.Equal(t, apierr.CodeValidationFailed, apiErr.Code)
	assert.Equal(t, "email", apiErr.Field)
}

func TestLoginAndLockout(t *testing.T) {
	ts := newTestServer(t)
	registerUser(t, ts, "alice")

	// Two wrong attempts.
	body := map[string]string{"username": "alice", "password": "wrong"}
	for i := 0; i < 2; i++ {
		rr := ts.request(http.MethodPost, "/api/v1/auth/login", body, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, apierr.CodeInvalidCredentials, decodeError(t, rr).Code)
	}

	// Third failure locks the account.
	rr := ts.request(http.MethodPost, "/api/v1/auth/login", body, "")
	assert.Equal(t, http.StatusLocked, rr.Code)
	assert.Equal(t, apierr.CodeAccountLocked, decodeError(t, rr).Code)

	// The correct password is rejected while locked.
	body["password"] = testPassword
	rr = ts.request(http.MethodPost, "/api/v1/auth/login", body, "")
	assert.Equal(t, http.StatusLocked, rr.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]string{"username": "ghost", "password": testPassword}
	rr := ts.request(http.MethodPost, "/api/v1/auth/login", body, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeUserNotFound, decodeError(t, rr).Code)
}

func TestUnauthorizedWithoutToken(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/games/snake/start", map[string]string{"difficulty": "easy"}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/profile", nil, "bogus-token")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetMe(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts, "alice")

	rr := ts.request(http.MethodGet, "/api/v1/auth/me", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var user response.User
	err := json.Unmarshal(rr.Body.Bytes(), &user)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestRenameFlow(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts, "alice")

	body := map[string]string{"newUsername": "alicia"}
	rr := ts.request(http.MethodPost, "/api/v1/auth/rename", body, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.RenameResponse
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "alicia", resp.Username)

	// The session token keeps working under the new name.
	rr = ts.request(http.MethodGet, "/api/v1/auth/me", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var user response.User
	err = json.Unmarshal(rr.Body.Bytes(), &user)
	require.NoError(t, err)
	assert.Equal(t, "alicia", user.Username)
}

func TestRenameRejected(t *testing.T) {
	ts := newTestServer(t)
	registerUser(t, ts, "bob")
	token := registerUser(t, ts, "alice")

	body := map[string]string{"newUsername": "bob"}
	rr := ts.request(http.MethodPost, "/api/v1/auth/rename", body, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp response.RenameResponse
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "username already taken", resp.Message)
	assert.Equal(t, "alice", resp.Username)
}

func TestPasswordStrength(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]string{"password": testPassword}
	rr := ts.request(http.MethodPost, "/api/v1/auth/password-strength", body, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.StrengthResponse
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Passed)
	assert.Equal(t, "strong", resp.Label)
}

func TestLogout(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts, "alice")

	rr := ts.request(http.MethodPost, "/api/v1/auth/logout", nil, token)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/auth/me", nil, token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestSnakeLifecycle(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts, "alice")

	// Start
	rr := ts.request(http.MethodPost, "/api/v1/games/snake/start", map[string]string{"difficulty": "easy"}, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var state snake.Snapshot
	err := json.Unmarshal(rr.Body.Bytes(), &state)
	require.NoError(t, err)
	assert.Equal(t, model.SnakeCountdown, state.Phase)
	assert.Equal(t, model.DifficultyEasy, state.Difficulty)
	assert.Len(t, state.Snake, 3)
	assert.Equal(t, 3, state.Countdown)

	// Steer during countdown is accepted.
	rr = ts.request(http.MethodPost, "/api/v1/games/snake/steer", map[string]string{"direction": "up"}, token)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	// State round-trips.
	rr = ts.request(http.MethodGet, "/api/v1/games/snake/state", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	// Stop abandons the game.
	rr = ts.request(http.MethodPost, "/api/v1/games/snake/stop", nil, token)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/games/snake/state", nil, token)
	err = json.Unmarshal(rr.Body.Bytes(), &state)
	require.NoError(t, err)
	assert.Equal(t, model.SnakeIdle, state.Phase)
}

func TestSnakeStartInvalidDifficulty(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts, "alice")

	rr := ts.request(http.MethodPost, "/api/v1/games/snake/start", map[string]string{"difficulty": "insane"}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidInput, decodeError(t, rr).Code)
}

func TestSnakePauseWithoutRunningGame(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts, "alice")

	rr := ts.request(http.MethodPost, "/api/v1/games/snake/pause", nil, token)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeNoGameInProgress, decodeError(t, rr).Code)
}

func typeWord(t *testing.T, ts *testServer, token, word string) {
	t.Helper()

	for _, letter := range word {
		body := map[string]string{"letter": string(letter)}
		rr := ts.request(http.MethodPost, "/api/v1/games/words/letters", body, token)
		require.Equal(t, http.StatusNoContent, rr.Code)
	}
}

func TestWordsWinFlow(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts, "alice")

	// Empty mock random queue: the answer is the corpus head, ABOUT.
	rr := ts.request(http.MethodPost, "/api/v1/games/words/start", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var state words.Snapshot
	err := json.Unmarshal(rr.Body.Bytes(), &state)
	require.NoError(t, err)
	assert.Equal(t, model.WordsPlaying, state.Phase)
	assert.Empty(t, state.Answer)

	typeWord(t, ts, token, "ABOUT")

	rr = ts.request(http.MethodPost, "/api/v1/games/words/guess", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var guess struct {
		Marks []model.Mark   `json:"marks"`
		State words.Snapshot `json:"state"`
	}
	err = json.Unmarshal(rr.Body.Bytes(), &guess)
	require.NoError(t, err)
	assert.Equal(t, []model.Mark{
		model.MarkCorrect, model.MarkCorrect, model.MarkCorrect, model.MarkCorrect, model.MarkCorrect,
	}, guess.Marks)
	assert.Equal(t, model.WordsRevealing, guess.State.Phase)

	// Typing during the reveal is rejected.
	rr = ts.request(http.MethodPost, "/api/v1/games/words/letters", map[string]string{"letter": "A"}, token)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeRevealInProgress, decodeError(t, rr).Code)

	rr = ts.request(http.MethodPost, "/api/v1/games/words/reveal", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	err = json.Unmarshal(rr.Body.Bytes(), &state)
	require.NoError(t, err)
	assert.Equal(t, model.WordsWon, state.Phase)
	assert.Equal(t, "ABOUT", state.Answer)
	assert.Equal(t, 60, state.Score)
}

func TestWordsGuessRejects(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts, "alice")

	rr := ts.request(http.MethodPost, "/api/v1/games/words/start", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)

	// Short row.
	typeWord(t, ts, token, "ABO")
	rr = ts.request(http.MethodPost, "/api/v1/games/words/guess", nil, token)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, apierr.CodeWrongLength, decodeError(t, rr).Code)

	// Not a word.
	typeWord(t, ts, token, "ZZ")
	rr = ts.request(http.MethodPost, "/api/v1/games/words/guess", nil, token)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, apierr.CodeWordNotAllowed, decodeError(t, rr).Code)
}

func TestWordsDeleteLetter(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts, "alice")

	rr := ts.request(http.MethodPost, "/api/v1/games/words/start", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)

	typeWord(t, ts, token, "AB")
	rr = ts.request(http.MethodDelete, "/api/v1/games/words/letters", nil, token)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/games/words/state", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var state words.Snapshot
	err := json.Unmarshal(rr.Body.Bytes(), &state)
	require.NoError(t, err)
	assert.Equal(t, "A", state.Board[0][0].Letter)
	assert.Empty(t, state.Board[0][1].Letter)
}

func TestWordsGuessWithoutGame(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts, "alice")

	rr := ts.request(http.MethodPost, "/api/v1/games/words/guess", nil, token)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeNoGameInProgress, decodeError(t, rr).Code)
}

func winWordsGame(t *testing.T, ts *testServer, token string) {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/games/words/start", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	typeWord(t, ts, token, "ABOUT")
	rr = ts.request(http.MethodPost, "/api/v1/games/words/guess", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	rr = ts.request(http.MethodPost, "/api/v1/games/words/reveal", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestLeaderboardAndScores(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts, "alice")

	winWordsGame(t, ts, token)

	// Leaderboard
	rr := ts.request(http.MethodGet, "/api/v1/leaderboards/words", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var rows []scores.Row
	err := json.Unmarshal(rr.Body.Bytes(), &rows)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "alice", rows[0].Username)
	assert.Equal(t, 60, rows[0].BestScore)
	assert.Equal(t, 1, rows[0].Wins)

	// Top scores
	rr = ts.request(http.MethodGet, "/api/v1/scores/words/top?limit=5", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var records []model.ScoreRecord
	err = json.Unmarshal(rr.Body.Bytes(), &records)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 60, records[0].Score)
	assert.True(t, records[0].Won)

	// Own history
	rr = ts.request(http.MethodGet, "/api/v1/scores/mine", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	err = json.Unmarshal(rr.Body.Bytes(), &records)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	// Recent results
	rr = ts.request(http.MethodGet, "/api/v1/scores/words/recent", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var recent []model.RecentResult
	err = json.Unmarshal(rr.Body.Bytes(), &recent)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, 60, recent[0].Score)
	assert.Equal(t, 1, recent[0].Attempts)
	assert.Equal(t, "1/6", recent[0].Difficulty)
}

func TestLeaderboardUnknownGame(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts, "alice")

	rr := ts.request(http.MethodGet, "/api/v1/leaderboards/chess", nil, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestProfileFlow(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts, "alice")

	winWordsGame(t, ts, token)

	// Summary
	rr := ts.request(http.MethodGet, "/api/v1/profile", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var summary map[string]any
	err := json.Unmarshal(rr.Body.Bytes(), &summary)
	require.NoError(t, err)
	assert.Equal(t, "alice", summary["username"])
	assert.Equal(t, "alice", summary["displayName"])

	// Display name
	rr = ts.request(http.MethodPut, "/api/v1/profile/display-name", map[string]string{"displayName": "Ally"}, token)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/profile", nil, token)
	err = json.Unmarshal(rr.Body.Bytes(), &summary)
	require.NoError(t, err)
	assert.Equal(t, "Ally", summary["displayName"])

	// Reset progress
	rr = ts.request(http.MethodPost, "/api/v1/profile/reset", nil, token)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/profile", nil, token)
	err = json.Unmarshal(rr.Body.Bytes(), &summary)
	require.NoError(t, err)
	wordsBlock := summary["words"].(map[string]any)
	assert.Equal(t, float64(0), wordsBlock["bestScore"])
}

func TestDarkModePreference(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts, "alice")

	rr := ts.request(http.MethodGet, "/api/v1/preferences/dark-mode", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.DarkModeResponse
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.False(t, resp.Enabled)

	rr = ts.request(http.MethodPut, "/api/v1/preferences/dark-mode", map[string]bool{"enabled": true}, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/preferences/dark-mode", nil, token)
	err = json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Enabled)
}
