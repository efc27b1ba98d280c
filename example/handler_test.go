package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/zarinpal-oauth/pkg/logger"
	"github.com/dmitrymomot/zarinpal-oauth/pkg/zarinpal"
)

func newTestRouter(t *testing.T, status int, tokenBody string) http.Handler {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(tokenBody))
	}))
	t.Cleanup(ts.Close)

	strategy := zarinpal.New(zarinpal.Config{ClientID: "app-id", TokenURL: ts.URL}, verifyMerchant)
	return newRouter(strategy, logger.NewNope())
}

func serve(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestAuthHandler(t *testing.T) {
	t.Parallel()

	t.Run("redirects to zarinpal", func(t *testing.T) {
		t.Parallel()
		rec := serve(newTestRouter(t, http.StatusOK, `{}`), "/auth/zarinpal")
		require.Equal(t, http.StatusFound, rec.Code)
		require.Contains(t, rec.Header().Get("Location"), zarinpal.DefaultAuthorizationURL)
	})

	t.Run("authorization error", func(t *testing.T) {
		t.Parallel()
		rec := serve(newTestRouter(t, http.StatusOK, `{}`),
			"/auth/zarinpal/callback?error_code=103&error_message=Invalid+Key")
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var body errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, errorResponse{Error: "authorization", Message: "Invalid Key", Code: 103}, body)
	})

	t.Run("token error", func(t *testing.T) {
		t.Parallel()
		rec := serve(newTestRouter(t, http.StatusBadRequest,
			`{"error":{"message":"bad scope","type":"invalid_scope","code":400,"error_subcode":12}}`),
			"/auth/zarinpal/callback?code=abc")
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var body errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, errorResponse{
			Error:   "token",
			Message: "bad scope",
			Type:    "invalid_scope",
			Code:    400,
			Subcode: 12,
		}, body)
	})

	t.Run("generic error", func(t *testing.T) {
		t.Parallel()
		rec := serve(newTestRouter(t, http.StatusInternalServerError, `not json`),
			"/auth/zarinpal/callback?code=abc")
		require.Equal(t, http.StatusBadGateway, rec.Code)
		require.Contains(t, rec.Body.String(), `"error":"internal"`)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		rec := serve(newTestRouter(t, http.StatusOK, `{"data":{"access_token":"tok","expires_in":3600}}`),
			"/auth/zarinpal/callback?code=abc&state=1")
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, map[string]any{"access_token": "tok", "expires_in": float64(3600)}, body["data"])
	})

	t.Run("rejected", func(t *testing.T) {
		t.Parallel()
		rec := serve(newTestRouter(t, http.StatusOK, `{"data":{}}`), "/auth/zarinpal/callback?code=abc")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
