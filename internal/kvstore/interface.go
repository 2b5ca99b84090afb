package kvstore

import "context"

// Store defines the interface for raw key/value persistence. The portal runs
// two stores: a durable one for everything that survives a restart, and a
// volatile one scoped to the browser context holding the active session.
type Store interface {
	// Get returns the value for key, or model.ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any existing value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Has reports whether key exists.
	Has(ctx context.Context, key string) (bool, error)
}
