package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"

	"github.com/dmitrymomot/zarinpal-oauth/pkg/logger"
)

const (
	maxBodySize = 1 << 20

	msgTokenFailed   = "failed to obtain access token"
	msgProfileFailed = "failed to fetch user profile"
	msgInvalidState  = "invalid authorization request state"
)

// Core implements the standard OAuth2 authorization-code flow.
// It is safe for concurrent use; all state is read-only after New.
type Core struct {
	verify          VerifyFunc
	parseError      ErrorParser
	oauth           *oauth2.Config
	httpClient      *http.Client
	logger          *slog.Logger
	name            string
	config          Config
	skipUserProfile bool
	trustProxy      bool
}

// New creates a Core named name. It panics if verify is nil.
func New(name string, cfg Config, verify VerifyFunc, opts ...Option) *Core {
	if verify == nil {
		panic("oauth: " + name + " strategy requires a verify function")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.httpClient == nil {
		o.httpClient = http.DefaultClient
	}
	if o.logger == nil {
		o.logger = logger.NewNope()
	}
	if cfg.ScopeSeparator == "" {
		cfg.ScopeSeparator = " "
	}
	cfg.Scope = append([]string(nil), cfg.Scope...)

	c := &Core{
		verify: verify,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthorizationURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		httpClient:      o.httpClient,
		logger:          o.logger.With(slog.String("strategy", name)),
		name:            name,
		config:          cfg,
		skipUserProfile: o.skipUserProfile,
		trustProxy:      o.trustProxy,
	}
	c.parseError = o.errorParser
	if c.parseError == nil {
		c.parseError = c.ParseErrorResponse
	}
	return c
}

// Name returns the strategy identifier.
func (c *Core) Name() string {
	return c.name
}

// AuthCodeURL generates the authorization URL using the configured
// callback URL and scope. opts are applied last and may override both.
func (c *Core) AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string {
	return c.authCodeURL(state, c.config.CallbackURL, c.config.Scope, opts...)
}

func (c *Core) authCodeURL(state, redirectURI string, scope []string, opts ...oauth2.AuthCodeOption) string {
	base := make([]oauth2.AuthCodeOption, 0, len(opts)+2)
	if redirectURI != "" {
		base = append(base, oauth2.SetAuthURLParam("redirect_uri", redirectURI))
	}
	if s := strings.Join(scope, c.config.ScopeSeparator); s != "" {
		base = append(base, oauth2.SetAuthURLParam("scope", s))
	}
	return c.oauth.AuthCodeURL(state, append(base, opts...)...)
}

// Authenticate runs one step of the flow for r:
//   - an RFC 6749 error redirect yields ResultFail (access_denied) or ResultError;
//   - a request without a code yields ResultRedirect to the authorization endpoint;
//   - a request with a code is exchanged for a token and passed to the verify function.
func (c *Core) Authenticate(r *http.Request, opts AuthenticateOptions) Result {
	ctx := r.Context()
	q := r.URL.Query()

	if code := q.Get("error"); code != "" {
		if code == "access_denied" {
			return failResult(q.Get("error_description"))
		}
		return ErrorResult(newAuthorizationError(q.Get("error_description"), code, q.Get("error_uri")))
	}

	callbackURL := c.resolveCallbackURL(r, opts.CallbackURL)
	state := opts.State
	if state == "" {
		state = c.config.State
	}

	code := q.Get("code")
	if code == "" {
		scope := opts.Scope
		if len(scope) == 0 {
			scope = c.config.Scope
		}
		c.logger.DebugContext(ctx, "redirecting to authorization endpoint")
		return redirectResult(c.authCodeURL(state, callbackURL, scope))
	}

	if returned := q.Get("state"); returned != "" && returned != state {
		return failResult(msgInvalidState)
	}

	token, params, err := c.exchange(ctx, code, callbackURL)
	if err != nil {
		return ErrorResult(err)
	}

	var profile map[string]any
	if !c.skipUserProfile && c.config.ProfileURL != "" {
		profile, err = c.UserProfile(ctx, token.AccessToken)
		if err != nil {
			c.logger.WarnContext(ctx, "profile fetch failed", slog.String("error", err.Error()))
			return ErrorResult(&InternalError{Message: msgProfileFailed, Err: err})
		}
	}

	user, info, err := c.verify(ctx, token.AccessToken, token.RefreshToken, params, profile)
	if err != nil {
		return ErrorResult(err)
	}
	if user == nil {
		return failResult(info)
	}
	return successResult(user, info)
}

// exchange trades an authorization code for a token. On a non-2xx status
// the configured ErrorParser decides which error is returned.
func (c *Core) exchange(ctx context.Context, code, redirectURI string) (*oauth2.Token, map[string]any, error) {
	form := url.Values{
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"client_id":     {c.config.ClientID},
		"client_secret": {c.config.ClientSecret},
	}
	if redirectURI != "" {
		form.Set("redirect_uri", redirectURI)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, nil, &InternalError{Message: msgTokenFailed, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "token request failed", slog.String("error", err.Error()))
		return nil, nil, &InternalError{Message: msgTokenFailed, Err: errors.Join(ErrFetchFailed, err)}
	}
	if resp == nil {
		return nil, nil, &InternalError{Message: msgTokenFailed, Err: ErrNilResponse}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, nil, &InternalError{Message: msgTokenFailed, Err: errors.Join(ErrFetchFailed, err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.DebugContext(ctx, "token endpoint returned error", slog.Int("status", resp.StatusCode))
		tokenErr, err := c.parseError(body, resp.StatusCode)
		if err != nil {
			return nil, nil, err
		}
		if tokenErr != nil {
			return nil, nil, tokenErr
		}
		return nil, nil, &InternalError{
			Message: msgTokenFailed,
			Err:     fmt.Errorf("%w: status=%d", ErrRequestFailed, resp.StatusCode),
		}
	}

	params, err := decodeTokenResponse(resp.Header.Get("Content-Type"), body)
	if err != nil {
		return nil, nil, &InternalError{Message: msgTokenFailed, Err: &ParseError{Status: resp.StatusCode, Err: err}}
	}

	token := &oauth2.Token{
		AccessToken:  stringValue(params["access_token"]),
		RefreshToken: stringValue(params["refresh_token"]),
		TokenType:    stringValue(params["token_type"]),
	}
	return token, params, nil
}

// decodeTokenResponse accepts JSON bodies and, for form content types,
// url-encoded ones.
func decodeTokenResponse(contentType string, body []byte) (map[string]any, error) {
	mediaType, _, _ := mime.ParseMediaType(contentType)
	if mediaType == "application/x-www-form-urlencoded" || mediaType == "text/plain" {
		if vals, err := url.ParseQuery(string(body)); err == nil && vals.Has("access_token") {
			params := make(map[string]any, len(vals))
			for k := range vals {
				params[k] = vals.Get(k)
			}
			return params, nil
		}
	}

	var params map[string]any
	if err := json.Unmarshal(body, &params); err != nil {
		return nil, err
	}
	if params == nil {
		params = map[string]any{}
	}
	return params, nil
}

// ParseErrorResponse is the RFC 6749 token error parser. It returns a
// *TokenError when the body has an "error" member, nil when it has none,
// and a *ParseError when the body is not JSON.
func (c *Core) ParseErrorResponse(body []byte, status int) (error, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &ParseError{Status: status, Err: err}
	}
	m, ok := doc.(map[string]any)
	if !ok || !truthy(m["error"]) {
		return nil, nil
	}
	return &TokenError{
		Description: stringValue(m["error_description"]),
		Code:        stringValue(m["error"]),
		URI:         stringValue(m["error_uri"]),
		Status:      http.StatusInternalServerError,
	}, nil
}

// UserProfile fetches the profile document with accessToken as a bearer token.
func (c *Core) UserProfile(ctx context.Context, accessToken string) (map[string]any, error) {
	if c.config.ProfileURL == "" {
		return nil, ErrNoProfileURL
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	client := c.oauth.Client(ctx, &oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.ProfileURL, nil)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, fmt.Errorf("build profile request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, fmt.Errorf("fetch profile: %w", err))
	}
	if resp == nil {
		return nil, errors.Join(ErrNilResponse, errors.New("unexpected nil response from profile endpoint"))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Join(ErrRequestFailed, fmt.Errorf("profile request failed: status=%d", resp.StatusCode))
	}

	var profile map[string]any
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&profile); err != nil {
		return nil, errors.Join(ErrDecodeFailed, fmt.Errorf("decode profile: %w", err))
	}
	return profile, nil
}

func (c *Core) resolveCallbackURL(r *http.Request, override string) string {
	raw := override
	if raw == "" {
		raw = c.config.CallbackURL
	}
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() {
		return raw
	}
	base := &url.URL{Scheme: c.requestScheme(r), Host: r.Host, Path: r.URL.Path}
	return base.ResolveReference(u).String()
}

func (c *Core) requestScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if c.trustProxy {
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			return strings.TrimSpace(strings.Split(proto, ",")[0])
		}
	}
	return "http"
}

func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

// truthy reports whether a decoded JSON value is present and non-empty.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	default:
		return true
	}
}
