package logger

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel determines which log levels to send to Sentry (e.g., slog.LevelWarn for warnings+errors)
	MinLevel slog.Level `env:"SENTRY_MIN_LEVEL" envDefault:"WARN"`
	// Level is the minimum level written to stdout.
	Level slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}

// NewWithSentry creates a logger writing to stdout and, when cfg.DSN is set,
// to Sentry. A missing DSN or a failed Sentry init leaves stdout only.
// Extractors apply to both destinations.
func NewWithSentry(cfg SentryConfig, extractors ...ContextExtractor) *slog.Logger {
	var h slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level})
	if sh := newSentryHandler(cfg, h); sh != nil {
		h = newMultiHandler(h, sh)
	}
	return slog.New(NewLogHandlerDecorator(h, extractors...))
}

// newSentryHandler returns nil when Sentry is not configured or cannot start;
// init failures are reported through fallback.
func newSentryHandler(cfg SentryConfig, fallback slog.Handler) slog.Handler {
	if cfg.DSN == "" {
		return nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	})
	if err != nil {
		slog.New(fallback).Error("sentry init failed", slog.String("error", err.Error()))
		return nil
	}
	events, logs := sentryLevels(cfg.MinLevel)
	return sentryslog.Option{EventLevel: events, LogLevel: logs}.NewSentryHandler(context.Background())
}

// sentryLevels maps the minimum level to Sentry's two channels: errors always
// become issues, and every level from minLevel up is stored as a log.
func sentryLevels(minLevel slog.Level) (events, logs []slog.Level) {
	events = []slog.Level{slog.LevelError}
	for _, l := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l >= minLevel {
			logs = append(logs, l)
		}
	}
	if len(logs) == 0 {
		logs = []slog.Level{slog.LevelError}
	}
	return events, logs
}

// FlushSentry waits up to timeout for buffered Sentry events to be sent.
// It is a no-op when Sentry was never initialized.
func FlushSentry(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}
