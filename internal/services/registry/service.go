package registry

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/playhub/portal/internal/dependencies/clock"
	"github.com/playhub/portal/internal/kvstore"
	"github.com/playhub/portal/internal/model"
	"github.com/playhub/portal/internal/services/stats"
)

// Config holds configuration for the registry.
type Config struct {
	MaxLoginAttempts int
	LockoutDuration  time.Duration
	SessionDuration  time.Duration
	MinUsernameLen   int
	MinPasswordLen   int
}

// DefaultConfig returns default registry configuration.
func DefaultConfig() Config {
	return Config{
		MaxLoginAttempts: 3,
		LockoutDuration:  15 * time.Minute,
		SessionDuration:  24 * time.Hour,
		MinUsernameLen:   3,
		MinPasswordLen:   6,
	}
}

// Service is the user and session registry. It owns the users list, the
// volatile current session, the durable session audit log, and the
// username-rename migration.
//
// Passwords are compared in plain text against the stored record; hardening
// the credential model is explicitly out of scope.
type Service struct {
	durable  *kvstore.KV
	volatile *kvstore.KV
	clock    clock.Clock
	cfg      Config

	snakeStats *stats.Store
	wordsStats *stats.Store

	logger *slog.Logger
}

// New creates a registry over the durable and volatile stores.
func New(
	durable *kvstore.KV,
	volatile *kvstore.KV,
	clk clock.Clock,
	cfg Config,
	snakeStats *stats.Store,
	wordsStats *stats.Store,
	logger *slog.Logger,
) *Service {
	if cfg.MaxLoginAttempts == 0 {
		cfg = DefaultConfig()
	}
	return &Service{
		durable:    durable,
		volatile:   volatile,
		clock:      clk,
		cfg:        cfg,
		snakeStats: snakeStats,
		wordsStats: wordsStats,
		logger:     logger,
	}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Register validates and creates a new account, seeds its per-game stat
// defaults, and opens a session.
func (s *Service) Register(ctx context.Context, username, email, password, confirm string) (*model.Session, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if len(username) < s.cfg.MinUsernameLen {
		return nil, model.NewValidationError("username", "username must be at least 3 characters")
	}
	if s.userByName(ctx, username) != nil {
		return nil, model.NewValidationError("username", "username already exists")
	}
	if !emailPattern.MatchString(email) {
		return nil, model.NewValidationError("email", "please enter a valid email address")
	}
	if s.emailTaken(ctx, email) {
		return nil, model.NewValidationError("email", "email already registered")
	}
	strength := PasswordStrength(password)
	if len(password) < s.cfg.MinPasswordLen {
		return nil, model.NewValidationError("password", "password must be at least 6 characters")
	}
	if strength.Passed < 3 {
		return nil, model.NewValidationError("password", "password is too weak")
	}
	if password != confirm {
		return nil, model.NewValidationError("confirmPassword", "passwords do not match")
	}

	now := s.clock.Now()
	user := model.User{
		Username:     username,
		Email:        email,
		Password:     password,
		RegisteredAt: now,
		TotalLogins:  0,
		GamesPlayed:  0,
	}

	users := s.Users(ctx)
	users = append(users, user)
	kvstore.Write(ctx, s.durable, kvstore.KeyUsers, users)

	// Profile metadata and stat defaults are seeded eagerly so the rest of
	// the portal never sees a half-initialized account.
	kvstore.Write(ctx, s.durable, kvstore.Key(kvstore.KeyProfileMemberSince, username), now)
	s.snakeStats.EnsureDefaults(ctx, username)
	s.wordsStats.EnsureDefaults(ctx, username)

	return s.createSession(ctx, username), nil
}

// Login authenticates a user. Lockout state is checked and keyed by the
// username as typed, before user lookup; "unknown user" and "wrong password"
// are distinct outcomes by design of the original flow.
func (s *Service) Login(ctx context.Context, username, password string) (*model.Session, error) {
	username = strings.TrimSpace(username)
	now := s.clock.Now()

	attemptsKey := kvstore.Key(kvstore.KeyFailedAttempts, username)
	lockoutKey := kvstore.Key(kvstore.KeyLockoutTime, username)

	if s.durable.Has(ctx, lockoutKey) {
		lockoutEnd := kvstore.Read(ctx, s.durable, lockoutKey, time.Time{})
		if now.Before(lockoutEnd) {
			return nil, &model.LockedError{Remaining: lockoutEnd.Sub(now)}
		}
		// Window expired: unlock.
		s.durable.Delete(ctx, lockoutKey)
		s.durable.Delete(ctx, attemptsKey)
	}

	user := s.userByName(ctx, username)
	if user == nil {
		return nil, model.ErrUserNotFound
	}

	if user.Password != password {
		attempts := kvstore.Read(ctx, s.durable, attemptsKey, 0) + 1
		kvstore.Write(ctx, s.durable, attemptsKey, attempts)

		if attempts >= s.cfg.MaxLoginAttempts {
			lockoutEnd := now.Add(s.cfg.LockoutDuration)
			kvstore.Write(ctx, s.durable, lockoutKey, lockoutEnd)
			s.logger.Info("account locked after repeated failures",
				slog.String("username", username),
				slog.Int("attempts", attempts),
			)
			return nil, &model.LockedError{Remaining: s.cfg.LockoutDuration}
		}
		return nil, model.ErrInvalidCredentials
	}

	// Successful login clears throttling state and bumps login stats.
	s.durable.Delete(ctx, attemptsKey)
	s.durable.Delete(ctx, lockoutKey)

	s.updateUser(ctx, username, func(u *model.User) {
		u.LastLogin = now
		u.TotalLogins++
	})

	s.snakeStats.EnsureDefaults(ctx, username)
	s.wordsStats.EnsureDefaults(ctx, username)

	return s.createSession(ctx, username), nil
}

// CurrentSession returns the active session, or nil if absent or expired.
// An expired session is cleared as a side effect.
func (s *Service) CurrentSession(ctx context.Context) *model.Session {
	session := kvstore.Read[*model.Session](ctx, s.volatile, kvstore.KeyCurrentSession, nil)
	if session == nil {
		return nil
	}
	if session.Expired(s.clock.Now()) {
		s.volatile.Delete(ctx, kvstore.KeyCurrentSession)
		return nil
	}
	return session
}

// SessionByToken resolves a token to the active session. Used by the API
// auth middleware on every request so a rename is picked up immediately.
func (s *Service) SessionByToken(ctx context.Context, token string) (*model.Session, error) {
	session := s.CurrentSession(ctx)
	if session == nil || session.Token != token {
		return nil, model.ErrNoSession
	}
	return session, nil
}

// Logout clears the current session.
func (s *Service) Logout(ctx context.Context) {
	s.volatile.Delete(ctx, kvstore.KeyCurrentSession)
}

// Users returns all registered users.
func (s *Service) Users(ctx context.Context) []model.User {
	return kvstore.Read(ctx, s.durable, kvstore.KeyUsers, []model.User{})
}

// User returns the user record for username, or ErrUserNotFound.
func (s *Service) User(ctx context.Context, username string) (*model.User, error) {
	if user := s.userByName(ctx, username); user != nil {
		return user, nil
	}
	return nil, model.ErrUserNotFound
}

// SessionLog returns the durable session audit history.
func (s *Service) SessionLog(ctx context.Context) []model.Session {
	return kvstore.Read(ctx, s.durable, kvstore.KeySessionLog, []model.Session{})
}

func (s *Service) createSession(ctx context.Context, username string) *model.Session {
	now := s.clock.Now()
	session := model.Session{
		Username:  username,
		LoginTime: now,
		ExpiresAt: now.Add(s.cfg.SessionDuration),
		Token:     uuid.NewString(),
	}

	kvstore.Write(ctx, s.volatile, kvstore.KeyCurrentSession, session)

	history := s.SessionLog(ctx)
	history = append(history, session)
	kvstore.Write(ctx, s.durable, kvstore.KeySessionLog, history)

	return &session
}

func (s *Service) userByName(ctx context.Context, username string) *model.User {
	for _, u := range s.Users(ctx) {
		if u.Username == username {
			user := u
			return &user
		}
	}
	return nil
}

func (s *Service) emailTaken(ctx context.Context, email string) bool {
	for _, u := range s.Users(ctx) {
		if u.Email == email {
			return true
		}
	}
	return false
}

func (s *Service) updateUser(ctx context.Context, username string, mutate func(*model.User)) bool {
	users := s.Users(ctx)
	for i := range users {
		if users[i].Username == username {
			mutate(&users[i])
			kvstore.Write(ctx, s.durable, kvstore.KeyUsers, users)
			return true
		}
	}
	return false
}

// Strength is the result of the five password checks.
type Strength struct {
	Length bool
	Upper  bool
	Lower  bool
	Digit  bool
	Symbol bool
	Passed int
	Label  string
}

// PasswordStrength evaluates the five checks (length, uppercase, lowercase,
// digit, symbol) and labels the result weak/fair/good/strong.
func PasswordStrength(password string) Strength {
	st := Strength{Length: len(password) >= 6}
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			st.Upper = true
		case unicode.IsLower(r):
			st.Lower = true
		case unicode.IsDigit(r):
			st.Digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			st.Symbol = true
		}
	}

	for _, ok := range []bool{st.Length, st.Upper, st.Lower, st.Digit, st.Symbol} {
		if ok {
			st.Passed++
		}
	}

	switch {
	case st.Passed >= 5:
		st.Label = "strong"
	case st.Passed >= 4:
		st.Label = "good"
	case st.Passed >= 3:
		st.Label = "fair"
	default:
		st.Label = "weak"
	}
	return st
}
