package zarinpal_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/zarinpal-oauth/pkg/zarinpal"
)

func noopVerify(context.Context, string, map[string]any) (any, any, error) {
	return nil, nil, nil
}

func TestConfig_WithDefaults(t *testing.T) {
	t.Parallel()

	defaults := zarinpal.Config{
		AuthorizationURL: zarinpal.DefaultAuthorizationURL,
		TokenURL:         zarinpal.DefaultTokenURL,
		ProfileURL:       zarinpal.DefaultProfileURL,
		Scope:            zarinpal.DefaultScope,
		CallbackURL:      zarinpal.DefaultCallbackURL,
		State:            zarinpal.DefaultState,
	}

	t.Run("empty config", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, defaults, zarinpal.Config{}.WithDefaults())
	})

	t.Run("only client ID", func(t *testing.T) {
		t.Parallel()
		want := defaults
		want.ClientID = "app-id"

		s := zarinpal.New(zarinpal.Config{ClientID: "app-id"}, noopVerify)
		require.Equal(t, want, s.Config())
	})

	t.Run("fully specified round-trips", func(t *testing.T) {
		t.Parallel()
		cfg := zarinpal.Config{
			AuthorizationURL: "https://auth.example.com/authorize",
			TokenURL:         "https://auth.example.com/token",
			ProfileURL:       "https://api.example.com/me",
			ClientID:         "id",
			ClientSecret:     "secret",
			Scope:            "transaction",
			CallbackURL:      "https://app.example.com/cb",
			State:            "xyz",
		}

		s := zarinpal.New(cfg, noopVerify)
		require.Equal(t, cfg, s.Config())
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		once := zarinpal.Config{ClientSecret: "secret", State: "abc"}.WithDefaults()
		require.Equal(t, once, once.WithDefaults())
	})

	t.Run("does not mutate input", func(t *testing.T) {
		t.Parallel()
		cfg := zarinpal.Config{ClientID: "id"}
		_ = zarinpal.New(cfg, noopVerify)
		require.Equal(t, zarinpal.Config{ClientID: "id"}, cfg)
	})
}

func TestStrategy_AuthCodeURL(t *testing.T) {
	t.Parallel()

	s := zarinpal.New(zarinpal.Config{
		ClientID:    "app-id",
		CallbackURL: "https://app.example.com/auth/zarinpal/callback",
	}, noopVerify)

	u := s.AuthCodeURL("test-state")
	require.Contains(t, u, zarinpal.DefaultAuthorizationURL+"?")
	require.Contains(t, u, "state=test-state")
	require.Contains(t, u, "client_id=app-id")
	require.Contains(t, u, "scope=transaction+transaction.read")
	require.Contains(t, u, "redirect_uri=https%3A%2F%2Fapp.example.com%2Fauth%2Fzarinpal%2Fcallback")
}
