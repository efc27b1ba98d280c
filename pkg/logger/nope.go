package logger

import "log/slog"

// NewNope returns a logger that discards everything. Packages that take an
// optional *slog.Logger use it as their default.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
