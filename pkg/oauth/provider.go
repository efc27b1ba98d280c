package oauth

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
)

// Strategy is the capability set shared by the generic Core and provider adapters.
// Adapters hold a Core and override only what their provider gets wrong.
type Strategy interface {
	// Name returns the strategy identifier (e.g., "zarinpal").
	Name() string

	// AuthCodeURL generates the authorization URL for the OAuth flow.
	AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string

	// Authenticate runs one step of the authorization-code flow for r.
	Authenticate(r *http.Request, opts AuthenticateOptions) Result

	// ParseErrorResponse interprets a non-2xx token-endpoint body.
	// See ErrorParser for the return contract.
	ParseErrorResponse(body []byte, status int) (error, error)
}

// ErrorParser interprets a non-2xx token-endpoint body.
// The first result is a recognized provider error returned as a value,
// or nil if the body carries none. The second result is a parse fault
// (*ParseError) that aborts the request.
type ErrorParser func(body []byte, status int) (tokenErr error, err error)

// VerifyFunc maps an obtained token to an application user.
// params is the raw token response document. Returning a nil user
// with a nil error rejects the credentials; info is passed through
// to the Result either way.
type VerifyFunc func(ctx context.Context, accessToken, refreshToken string, params, profile map[string]any) (user, info any, err error)

// AuthenticateOptions overrides configuration for a single Authenticate call.
type AuthenticateOptions struct {
	CallbackURL string
	State       string
	Scope       []string
}
