// Package logger provides structured logging with context extraction and Sentry integration.
//
// It wraps log/slog with two additions: attributes pulled from the request
// context on every record, and optional fan-out to Sentry.
//
// # Basic Usage
//
//	log := logger.New(logger.RequestIDExtractor())
//	log.InfoContext(ctx, "authentication finished", slog.String("result", "success"))
//	// {"level":"INFO","msg":"authentication finished","result":"success","request_id":"host/abc-000001"}
//
// RequestIDExtractor reads the id stored by chi's middleware.RequestID.
// Custom extractors have the signature:
//
//	type ContextExtractor func(ctx context.Context) (slog.Attr, bool)
//
// Return false to skip the attribute for that record.
//
// # Sentry Integration
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//		MinLevel:    slog.LevelWarn,
//	}, logger.RequestIDExtractor())
//	defer logger.FlushSentry(2 * time.Second)
//
// Errors create Sentry issues; warnings are stored as logs. With an empty DSN
// or a failed Sentry init the logger writes to stdout only, so the same code
// path works in development.
//
// # Defaults
//
// Libraries that accept an optional *slog.Logger default to NewNope, which
// discards everything.
package logger
