// Package zarinpal provides an OAuth2 strategy for Zarinpal.
//
// Zarinpal speaks an OAuth2 dialect that deviates from RFC 6749 in two places,
// and the Strategy corrects both on top of the generic [oauth.Core]:
//
//   - Authorization errors come back as ?error_code=103&error_message=Invalid+Key
//     with no "error" parameter. Authenticate turns them into an
//     [*AuthorizationError] without touching the network.
//   - Token endpoint errors carry an object in "error":
//     {"error":{"message":"..","type":"..","code":400,"error_subcode":12}}.
//     ParseErrorResponse turns them into a [*TokenError]. Bodies that are not
//     JSON yield an [*oauth.ParseError] that aborts the request.
//
// The token response nests the token in a "data" object, so the verify function
// receives data.access_token and data instead of the core's top-level values.
//
// # Usage
//
//	strategy := zarinpal.New(zarinpal.Config{
//		ClientID:     os.Getenv("ZARINPAL_CLIENT_ID"),
//		ClientSecret: os.Getenv("ZARINPAL_CLIENT_SECRET"),
//		CallbackURL:  "https://example.com/auth/zarinpal/callback",
//	}, func(ctx context.Context, accessToken string, data map[string]any) (any, any, error) {
//		return users.FindOrCreate(ctx, accessToken, data)
//	})
//
//	res := strategy.Authenticate(r, oauth.AuthenticateOptions{})
//	switch res.Kind {
//	case oauth.ResultRedirect:
//		http.Redirect(w, r, res.RedirectURL, http.StatusFound)
//	case oauth.ResultError:
//		if te, ok := zarinpal.AsTokenError(res.Err); ok {
//			// branch on te.Type, te.Code, te.Subcode
//		}
//	}
//
// Empty Config fields take the Default* constants. The fields carry env tags
// for parsing with caarlos0/env.
//
// Build with -tags zarinpaldebug to record the originating call site in the
// Caller field of both error types.
package zarinpal
