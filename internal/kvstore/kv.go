package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/playhub/portal/internal/model"
)

// KV wraps a Store with fail-soft typed access. Reads of missing or
// malformed data return the caller's fallback; write failures are logged and
// swallowed. Losing a stat is preferable to crashing a game in progress.
type KV struct {
	store  Store
	logger *slog.Logger
}

// New creates a KV over the given store.
func New(store Store, logger *slog.Logger) *KV {
	return &KV{store: store, logger: logger}
}

// Read unmarshals the JSON value at key into T, returning fallback on any
// missing key, storage failure, or malformed payload.
func Read[T any](ctx context.Context, kv *KV, key string, fallback T) T {
	data, err := kv.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, model.ErrKeyNotFound) {
			kv.logger.Warn("storage read failed, using fallback",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
		return fallback
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		kv.logger.Warn("malformed stored value, using fallback",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return fallback
	}
	return value
}

// Write marshals value as JSON and stores it under key. Failures are logged,
// not propagated.
func Write[T any](ctx context.Context, kv *KV, key string, value T) {
	data, err := json.Marshal(value)
	if err != nil {
		kv.logger.Error("storage marshal failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := kv.store.Set(ctx, key, data); err != nil {
		kv.logger.Error("storage write failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

// Has reports whether key exists. Storage failures read as absent.
func (kv *KV) Has(ctx context.Context, key string) bool {
	ok, err := kv.store.Has(ctx, key)
	if err != nil {
		kv.logger.Warn("storage exists check failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return false
	}
	return ok
}

// Delete removes key, logging failures.
func (kv *KV) Delete(ctx context.Context, key string) {
	if err := kv.store.Delete(ctx, key); err != nil {
		kv.logger.Warn("storage delete failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

// GetRaw exposes the raw value for key. Used by the rename migration, which
// copies values verbatim between keys and needs to distinguish absence from
// failure.
func (kv *KV) GetRaw(ctx context.Context, key string) ([]byte, error) {
	data, err := kv.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, model.ErrKeyNotFound) {
			return nil, err
		}
		return nil, &model.StorageError{Key: key, Op: "get", Err: err}
	}
	return data, nil
}

// SetRaw stores a raw value, propagating failures. Migration counterpart of
// GetRaw.
func (kv *KV) SetRaw(ctx context.Context, key string, value []byte) error {
	if err := kv.store.Set(ctx, key, value); err != nil {
		return &model.StorageError{Key: key, Op: "set", Err: err}
	}
	return nil
}

// DeleteRaw removes a key, propagating failures.
func (kv *KV) DeleteRaw(ctx context.Context, key string) error {
	if err := kv.store.Delete(ctx, key); err != nil {
		return &model.StorageError{Key: key, Op: "delete", Err: err}
	}
	return nil
}
