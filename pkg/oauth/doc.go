// Package oauth provides a generic OAuth2 authorization-code client that
// provider adapters extend by composition.
//
// [Core] runs the standard flow: it redirects to the authorization endpoint,
// exchanges the returned code at the token endpoint, optionally fetches a
// profile document, and hands everything to a [VerifyFunc]. Each call to
// Authenticate yields exactly one [Result]: a redirect, a success, a failure,
// or an error.
//
// # Extension points
//
// Adapters hold a Core and override behavior through two seams:
//
//   - wrap Authenticate to inspect the request before the core sees it;
//   - replace the token error parser with [WithErrorParser], falling back to
//     [Core.ParseErrorResponse] for bodies they do not recognize.
//
// See package zarinpal for a complete adapter.
//
// # Errors
//
// Errors are distinct types inspected with errors.As:
//
//   - *AuthorizationError: RFC 6749 error on the authorization redirect
//   - *TokenError: RFC 6749 error body from the token endpoint
//   - *ParseError: token endpoint body is not JSON (errors.Is ErrMalformedBody)
//   - *InternalError: transport failure, unrecognized token error, profile failure
//
// Sentinels (ErrFetchFailed, ErrRequestFailed, ErrDecodeFailed, ErrNilResponse,
// ErrNoProfileURL) are joined into wrapped errors and checked with errors.Is.
//
// # Testing
//
// Use WithHTTPClient to inject a test server:
//
//	ts := httptest.NewServer(handler)
//	defer ts.Close()
//
//	core := oauth.New("test", oauth.Config{TokenURL: ts.URL + "/token"}, verify,
//		oauth.WithHTTPClient(ts.Client()))
package oauth
