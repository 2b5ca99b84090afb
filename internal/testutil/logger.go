package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards everything. Service and store
// tests use it so fail-soft storage paths do not spam test output.
func NopLogger() *slog.Logger {
	// slog.DiscardHandler needs go >= 1.24; the build toolchain is 1.21.
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
