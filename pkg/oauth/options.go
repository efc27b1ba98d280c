package oauth

import (
	"log/slog"
	"net/http"
)

// Option configures a Core.
type Option func(*options)

type options struct {
	httpClient      *http.Client
	logger          *slog.Logger
	errorParser     ErrorParser
	skipUserProfile bool
	trustProxy      bool
}

// WithHTTPClient sets a custom HTTP client for token and profile requests.
// This is useful for testing with httptest servers or injecting
// custom transports (e.g., logging, timeouts).
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets the logger used for flow events. Defaults to a no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithErrorParser replaces the token-endpoint error parser.
// Provider adapters use it to recognize non-standard error bodies
// and fall back to Core.ParseErrorResponse for everything else.
func WithErrorParser(fn ErrorParser) Option {
	return func(o *options) {
		o.errorParser = fn
	}
}

// WithSkipUserProfile disables the profile fetch during Authenticate.
// The verify function then receives a nil profile.
func WithSkipUserProfile() Option {
	return func(o *options) {
		o.skipUserProfile = true
	}
}

// WithTrustProxy makes relative callback URLs honor X-Forwarded-Proto.
// Enable only behind a proxy that overwrites the header.
func WithTrustProxy() Option {
	return func(o *options) {
		o.trustProxy = true
	}
}
