package zarinpal

import "github.com/dmitrymomot/zarinpal-oauth/pkg/oauth"

// Provider defaults, applied to every empty Config field.
const (
	DefaultAuthorizationURL = "https://connect.zarinpal.com/oauth/authorize"
	DefaultTokenURL         = "https://api.zarinpal.com/rest/v3/oauth/issueAccessToken.json"
	DefaultProfileURL       = "https://app.zarinpalboom.com:4432/v1/accounts"
	DefaultScope            = "transaction transaction.read"
	DefaultCallbackURL      = "http://localhost:3000/auth/zarinpal/callback"
	DefaultState            = "1"
)

// Config holds Zarinpal OAuth configuration.
// Empty fields are replaced with provider defaults by New; values are not validated.
type Config struct {
	AuthorizationURL string `env:"ZARINPAL_AUTHORIZATION_URL"`
	TokenURL         string `env:"ZARINPAL_TOKEN_URL"`
	ProfileURL       string `env:"ZARINPAL_PROFILE_URL"`
	ClientID         string `env:"ZARINPAL_CLIENT_ID"`
	ClientSecret     string `env:"ZARINPAL_CLIENT_SECRET"`
	Scope            string `env:"ZARINPAL_SCOPE"` // space-separated
	CallbackURL      string `env:"ZARINPAL_CALLBACK_URL"`
	State            string `env:"ZARINPAL_STATE"`
}

// WithDefaults returns a copy of c with every empty field set to its default.
func (c Config) WithDefaults() Config {
	c.AuthorizationURL = orDefault(c.AuthorizationURL, DefaultAuthorizationURL)
	c.TokenURL = orDefault(c.TokenURL, DefaultTokenURL)
	c.ProfileURL = orDefault(c.ProfileURL, DefaultProfileURL)
	c.Scope = orDefault(c.Scope, DefaultScope)
	c.CallbackURL = orDefault(c.CallbackURL, DefaultCallbackURL)
	c.State = orDefault(c.State, DefaultState)
	return c
}

// coreConfig passes the scope through as a single pre-joined string.
func (c Config) coreConfig() oauth.Config {
	return oauth.Config{
		AuthorizationURL: c.AuthorizationURL,
		TokenURL:         c.TokenURL,
		ProfileURL:       c.ProfileURL,
		ClientID:         c.ClientID,
		ClientSecret:     c.ClientSecret,
		CallbackURL:      c.CallbackURL,
		Scope:            []string{c.Scope},
		ScopeSeparator:   " ",
		State:            c.State,
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
