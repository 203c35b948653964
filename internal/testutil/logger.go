package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards everything. The services all take
// a *slog.Logger, so tests hand them this to keep output quiet.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
