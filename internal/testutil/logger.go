package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards all output. Service and handler
// tests use this to keep tick and request logging out of test output.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
