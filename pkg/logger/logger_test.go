package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/zarinpal-oauth/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestLogHandlerDecorator(t *testing.T) {
	t.Parallel()

	tenant := func(ctx context.Context) (slog.Attr, bool) {
		if v, ok := ctx.Value(tenantKey{}).(string); ok {
			return slog.String("tenant", v), true
		}
		return slog.Attr{}, false
	}

	t.Run("adds extracted attributes", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), tenant, nil))

		ctx := context.WithValue(context.Background(), tenantKey{}, "acme")
		log.InfoContext(ctx, "hello")

		rec := decode(t, &buf)
		require.Equal(t, "acme", rec["tenant"])
		require.Equal(t, "hello", rec["msg"])
	})

	t.Run("skips missing values", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), tenant))

		log.InfoContext(context.Background(), "hello")
		require.NotContains(t, decode(t, &buf), "tenant")
	})

	t.Run("keeps extractors through With", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), tenant)).
			With(slog.String("strategy", "zarinpal"))

		ctx := context.WithValue(context.Background(), tenantKey{}, "acme")
		log.InfoContext(ctx, "hello")

		rec := decode(t, &buf)
		require.Equal(t, "zarinpal", rec["strategy"])
		require.Equal(t, "acme", rec["tenant"])
	})
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	extract := logger.RequestIDExtractor()

	_, ok := extract(context.Background())
	require.False(t, ok)

	var got slog.Attr
	handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = extract(r.Context())
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.True(t, ok)
	require.Equal(t, "request_id", got.Key)
	require.NotEmpty(t, got.Value.String())
}

func TestNewNope(t *testing.T) {
	t.Parallel()
	log := logger.NewNope()
	require.NotNil(t, log)
	log.Error("discarded")
}

func TestNewWithSentry_NoDSN(t *testing.T) {
	t.Parallel()
	log := logger.NewWithSentry(logger.SentryConfig{Level: slog.LevelDebug})
	require.True(t, log.Enabled(context.Background(), slog.LevelDebug))
}

type tenantKey struct{}
