package zarinpal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"

	"github.com/dmitrymomot/zarinpal-oauth/pkg/oauth"
)

// Name is the strategy identifier.
const Name = "zarinpal"

// VerifyFunc maps a Zarinpal access token to an application user.
// data is the "data" object of the token response and contains access_token.
// Returning a nil user with a nil error rejects the credentials.
type VerifyFunc func(ctx context.Context, accessToken string, data map[string]any) (user, info any, err error)

// Strategy authenticates users against Zarinpal. It wraps a generic oauth.Core
// and corrects two places where Zarinpal deviates from RFC 6749: authorization
// error redirects and token endpoint error bodies.
type Strategy struct {
	core   *oauth.Core
	config Config
}

var _ oauth.Strategy = (*Strategy)(nil)

// New creates a Zarinpal strategy. Empty config fields take provider defaults.
// opts are forwarded to the core; the token error parser is always the
// strategy's own. It panics if verify is nil.
func New(cfg Config, verify VerifyFunc, opts ...oauth.Option) *Strategy {
	if verify == nil {
		panic("zarinpal: verify function is required")
	}

	s := &Strategy{config: cfg.WithDefaults()}

	coreOpts := make([]oauth.Option, 0, len(opts)+2)
	coreOpts = append(coreOpts, oauth.WithSkipUserProfile())
	coreOpts = append(coreOpts, opts...)
	coreOpts = append(coreOpts, oauth.WithErrorParser(s.ParseErrorResponse))

	s.core = oauth.New(Name, s.config.coreConfig(), adaptVerify(verify), coreOpts...)
	return s
}

// adaptVerify reduces the core's verify arguments to Zarinpal's contract.
// The core's accessToken and profile are discarded: Zarinpal nests the token
// inside params.data.
func adaptVerify(verify VerifyFunc) oauth.VerifyFunc {
	return func(ctx context.Context, _, _ string, params, _ map[string]any) (any, any, error) {
		data, ok := params["data"].(map[string]any)
		if !ok {
			return nil, nil, ErrMissingData
		}
		accessToken, _ := data["access_token"].(string)
		return verify(ctx, accessToken, data)
	}
}

// Name returns "zarinpal".
func (s *Strategy) Name() string {
	return Name
}

// Config returns the resolved configuration.
func (s *Strategy) Config() Config {
	return s.config
}

// AuthCodeURL generates the Zarinpal authorization URL.
func (s *Strategy) AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string {
	return s.core.AuthCodeURL(state, opts...)
}

// UserProfile fetches the Zarinpal accounts document for accessToken.
func (s *Strategy) UserProfile(ctx context.Context, accessToken string) (map[string]any, error) {
	return s.core.UserProfile(ctx, accessToken)
}

// Authenticate fails with an *AuthorizationError when Zarinpal redirected back
// with error_code and without error. Every other request is handled by the core.
func (s *Strategy) Authenticate(r *http.Request, opts oauth.AuthenticateOptions) oauth.Result {
	if err, ok := authorizationErrorFromQuery(r.URL.Query()); ok {
		return oauth.ErrorResult(err)
	}
	return s.core.Authenticate(r, opts)
}

func authorizationErrorFromQuery(q url.Values) (*AuthorizationError, bool) {
	code := q.Get("error_code")
	if code == "" || q.Get("error") != "" {
		return nil, false
	}
	return newAuthorizationError(q.Get("error_message"), parseLeadingInt(code)), true
}

// ParseErrorResponse recognizes Zarinpal token errors of the form
// {"error":{"message":..,"type":..,"code":..,"error_subcode":..}} and returns
// them as a *TokenError. An array in "error" yields a TokenError with zero
// fields. Other JSON bodies go to the core's RFC 6749 parser.
// A body that is not JSON yields an *oauth.ParseError as the second result.
func (s *Strategy) ParseErrorResponse(body []byte, status int) (error, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &oauth.ParseError{Status: status, Err: err}
	}
	if m, ok := doc.(map[string]any); ok {
		switch e := m["error"].(type) {
		case map[string]any:
			return newTokenError(
				stringField(e, "message"),
				stringField(e, "type"),
				intField(e, "code"),
				intField(e, "error_subcode"),
			), nil
		case []any:
			// an array counts as the object shape; it has no named sub-fields
			return newTokenError("", "", 0, 0), nil
		}
	}
	return s.core.ParseErrorResponse(body, status)
}
