package oauth

// Config describes a generic OAuth2 authorization-code client.
// Provider adapters fill it with their endpoints and defaults.
type Config struct {
	AuthorizationURL string
	TokenURL         string
	ProfileURL       string // optional; empty disables UserProfile
	ClientID         string
	ClientSecret     string
	// CallbackURL may be relative, in which case it is resolved
	// against the inbound request's scheme and host.
	CallbackURL    string
	Scope          []string
	ScopeSeparator string // defaults to a single space
	State          string
}
