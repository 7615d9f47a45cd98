package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that drops everything. Service, controller,
// and hub test fixtures pass it where a *slog.Logger is required.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
