package registry

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/playhub/portal/internal/kvstore"
	"github.com/playhub/portal/internal/model"
)

// Rename changes a username and migrates every piece of data keyed by it:
// the user record, the active session (if it matches), score-log entries,
// session-log entries, and every per-user namespaced statistic and profile
// key (copy to new key, delete old key).
//
// The migration is synchronous and key-by-key; there is no transaction
// spanning the durable store. A failure partway through leaves stale
// old-keyed data behind — a known correctness risk of the migration scheme,
// reported to the caller rather than silently repaired.
func (s *Service) Rename(ctx context.Context, oldUsername, newUsername string) model.RenameResult {
	newUsername = strings.TrimSpace(newUsername)

	if newUsername == "" {
		return model.RenameResult{Message: "username cannot be empty"}
	}
	if len(newUsername) < s.cfg.MinUsernameLen {
		return model.RenameResult{Message: "username must be at least 3 characters"}
	}
	if oldUsername == newUsername {
		return model.RenameResult{Message: "new username is the same as current"}
	}
	if s.userByName(ctx, newUsername) != nil {
		return model.RenameResult{Message: "username already taken"}
	}

	// User record.
	s.updateUser(ctx, oldUsername, func(u *model.User) {
		u.Username = newUsername
	})

	// Active session, when it belongs to the renamed user.
	if session := s.CurrentSession(ctx); session != nil && session.Username == oldUsername {
		session.Username = newUsername
		kvstore.Write(ctx, s.volatile, kvstore.KeyCurrentSession, *session)
	}

	// Score log.
	scoreLog := kvstore.Read(ctx, s.durable, kvstore.KeyScores, []model.ScoreRecord{})
	changed := false
	for i := range scoreLog {
		if scoreLog[i].Username == oldUsername {
			scoreLog[i].Username = newUsername
			changed = true
		}
	}
	if changed {
		kvstore.Write(ctx, s.durable, kvstore.KeyScores, scoreLog)
	}

	// Session audit log.
	sessionLog := s.SessionLog(ctx)
	changed = false
	for i := range sessionLog {
		if sessionLog[i].Username == oldUsername {
			sessionLog[i].Username = newUsername
			changed = true
		}
	}
	if changed {
		kvstore.Write(ctx, s.durable, kvstore.KeySessionLog, sessionLog)
	}

	// Per-user namespaced keys across both games plus profile metadata.
	for _, base := range s.migratedBaseKeys() {
		if err := s.migrateKey(ctx, base, oldUsername, newUsername); err != nil {
			s.logger.Error("rename migration failed mid-way, old-keyed data may remain",
				slog.String("base_key", base),
				slog.String("old", oldUsername),
				slog.String("new", newUsername),
				slog.String("error", err.Error()),
			)
			return model.RenameResult{Message: "rename incomplete: some data could not be migrated"}
		}
	}

	return model.RenameResult{Success: true, Message: "Username changed successfully"}
}

// migratedBaseKeys lists every base key that is re-keyed on rename.
func (s *Service) migratedBaseKeys() []string {
	keys := s.snakeStats.Keys().BaseKeys()
	keys = append(keys, s.wordsStats.Keys().BaseKeys()...)
	keys = append(keys,
		kvstore.KeyProfileDisplayName,
		kvstore.KeyProfileMemberSince,
	)
	return keys
}

// migrateKey copies the value under base_old to base_new and deletes the old
// key. A missing old key is skipped, not an error.
func (s *Service) migrateKey(ctx context.Context, base, oldUsername, newUsername string) error {
	oldKey := kvstore.Key(base, oldUsername)
	newKey := kvstore.Key(base, newUsername)

	value, err := s.durable.GetRaw(ctx, oldKey)
	if err != nil {
		if errors.Is(err, model.ErrKeyNotFound) {
			return nil
		}
		return err
	}

	if err := s.durable.SetRaw(ctx, newKey, value); err != nil {
		return err
	}
	return s.durable.DeleteRaw(ctx, oldKey)
}
