package stats

import (
	"context"
	"log/slog"

	"github.com/playhub/portal/internal/kvstore"
	"github.com/playhub/portal/internal/model"
)

// Store provides per-user statistics for one game: counters, a string slot
// or two, and a bounded newest-first recent-results list.
//
// Increment is read-modify-write without cross-process atomicity. The portal
// assumes a single active session per user; concurrent sessions racing on a
// counter is an accepted limitation, not a bug this layer masks.
type Store struct {
	kv     *kvstore.KV
	keys   KeySet
	logger *slog.Logger
}

// New creates a statistics store over the given key set.
func New(kv *kvstore.KV, keys KeySet, logger *slog.Logger) *Store {
	return &Store{
		kv:     kv,
		keys:   keys,
		logger: logger,
	}
}

// Keys returns the store's key set.
func (s *Store) Keys() KeySet {
	return s.keys
}

// Number reads a numeric stat, returning fallback when missing or malformed.
func (s *Store) Number(ctx context.Context, base, username string, fallback int) int {
	return kvstore.Read(ctx, s.kv, kvstore.Key(base, username), fallback)
}

// SetNumber writes a numeric stat.
func (s *Store) SetNumber(ctx context.Context, base, username string, value int) {
	kvstore.Write(ctx, s.kv, kvstore.Key(base, username), value)
}

// Increment adds amount to a numeric stat and returns the new value.
func (s *Store) Increment(ctx context.Context, base, username string, amount int) int {
	next := s.Number(ctx, base, username, 0) + amount
	s.SetNumber(ctx, base, username, next)
	return next
}

// Str reads a string stat, returning fallback when missing or malformed.
func (s *Store) Str(ctx context.Context, base, username, fallback string) string {
	return kvstore.Read(ctx, s.kv, kvstore.Key(base, username), fallback)
}

// SetStr writes a string stat.
func (s *Store) SetStr(ctx context.Context, base, username, value string) {
	kvstore.Write(ctx, s.kv, kvstore.Key(base, username), value)
}

// Recent returns the user's recent results, newest first.
func (s *Store) Recent(ctx context.Context, username string) []model.RecentResult {
	return kvstore.Read(ctx, s.kv, kvstore.Key(s.keys.Recent, username), []model.RecentResult{})
}

// PushRecent prepends entry and truncates to RecentResultsMax. The oldest
// entry is always the one evicted.
func (s *Store) PushRecent(ctx context.Context, username string, entry model.RecentResult) {
	updated := append([]model.RecentResult{entry}, s.Recent(ctx, username)...)
	if len(updated) > model.RecentResultsMax {
		updated = updated[:model.RecentResultsMax]
	}
	kvstore.Write(ctx, s.kv, kvstore.Key(s.keys.Recent, username), updated)
}

// EnsureDefaults idempotently seeds every stat for a username the first time
// it is seen. Existing values are never overwritten (check-then-set).
func (s *Store) EnsureDefaults(ctx context.Context, username string) {
	if username == "" {
		return
	}

	for _, n := range s.keys.Numbers {
		key := kvstore.Key(n.Base, username)
		if !s.kv.Has(ctx, key) {
			kvstore.Write(ctx, s.kv, key, n.Default)
		}
	}
	for _, str := range s.keys.Strings {
		key := kvstore.Key(str.Base, username)
		if !s.kv.Has(ctx, key) {
			kvstore.Write(ctx, s.kv, key, str.Default)
		}
	}

	recentKey := kvstore.Key(s.keys.Recent, username)
	if !s.kv.Has(ctx, recentKey) {
		kvstore.Write(ctx, s.kv, recentKey, []model.RecentResult{})
	}
}

// DeleteAll removes every stat for a username. Used by reset-progress.
func (s *Store) DeleteAll(ctx context.Context, username string) {
	for _, base := range s.keys.BaseKeys() {
		s.kv.Delete(ctx, kvstore.Key(base, username))
	}
}
