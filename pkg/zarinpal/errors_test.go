package zarinpal_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/zarinpal-oauth/pkg/zarinpal"
)

func TestAuthorizationError(t *testing.T) {
	t.Parallel()

	err := &zarinpal.AuthorizationError{Message: "Invalid Key", Code: 103}
	require.Equal(t, "zarinpal: authorization failed (code 103): Invalid Key", err.Error())

	wrapped := fmt.Errorf("login: %w", err)
	got, ok := zarinpal.AsAuthorizationError(wrapped)
	require.True(t, ok)
	require.Same(t, err, got)

	_, ok = zarinpal.AsTokenError(wrapped)
	require.False(t, ok)
}

func TestTokenError(t *testing.T) {
	t.Parallel()

	err := &zarinpal.TokenError{Message: "bad scope", Type: "invalid_scope", Code: 400, Subcode: 12}
	require.Equal(t,
		`zarinpal: token request failed (type "invalid_scope", code 400, subcode 12): bad scope`,
		err.Error())

	wrapped := fmt.Errorf("exchange: %w", err)
	got, ok := zarinpal.AsTokenError(wrapped)
	require.True(t, ok)
	require.Same(t, err, got)

	_, ok = zarinpal.AsAuthorizationError(wrapped)
	require.False(t, ok)
}

func TestAsHelpers_Nil(t *testing.T) {
	t.Parallel()

	_, ok := zarinpal.AsAuthorizationError(nil)
	require.False(t, ok)
	_, ok = zarinpal.AsTokenError(nil)
	require.False(t, ok)
}
