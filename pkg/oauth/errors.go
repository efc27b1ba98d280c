package oauth

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNoProfileURL is returned by UserProfile when no profile endpoint is configured.
	ErrNoProfileURL = errors.New("oauth: profile URL not configured")

	// ErrNilResponse is returned when the provider returns a nil response.
	ErrNilResponse = errors.New("oauth: nil response from provider")

	// ErrFetchFailed is returned when an HTTP request to the provider fails.
	ErrFetchFailed = errors.New("oauth: failed to fetch from provider")

	// ErrRequestFailed is returned when the provider returns a non-OK status.
	ErrRequestFailed = errors.New("oauth: request returned non-OK status")

	// ErrDecodeFailed is returned when decoding a provider response fails.
	ErrDecodeFailed = errors.New("oauth: failed to decode response")

	// ErrMalformedBody matches every *ParseError via errors.Is.
	ErrMalformedBody = errors.New("oauth: malformed response body")
)

// AuthorizationError is an RFC 6749 error returned on the authorization redirect.
type AuthorizationError struct {
	Description string
	Code        string
	URI         string
	Status      int
}

func newAuthorizationError(description, code, uri string) *AuthorizationError {
	status := http.StatusInternalServerError
	switch code {
	case "access_denied":
		status = http.StatusForbidden
	case "server_error":
		status = http.StatusBadGateway
	case "temporarily_unavailable":
		status = http.StatusServiceUnavailable
	}
	return &AuthorizationError{Description: description, Code: code, URI: uri, Status: status}
}

func (e *AuthorizationError) Error() string {
	msg := e.Description
	if msg == "" {
		msg = e.Code
	}
	return "oauth: authorization failed: " + msg
}

// TokenError is an RFC 6749 error body returned by the token endpoint.
type TokenError struct {
	Description string
	Code        string
	URI         string
	Status      int
}

func (e *TokenError) Error() string {
	msg := e.Description
	if msg == "" {
		msg = e.Code
	}
	return "oauth: token request failed: " + msg
}

// InternalError reports a failure of the flow itself: transport errors,
// unrecognized token errors, profile fetch failures.
type InternalError struct {
	Err     error
	Message string
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return "oauth: " + e.Message
	}
	return fmt.Sprintf("oauth: %s: %v", e.Message, e.Err)
}

func (e *InternalError) Unwrap() error { return e.Err }

// ParseError reports a response body that is not a valid JSON document.
// It is never downgraded to a TokenError.
type ParseError struct {
	Err    error
	Status int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("oauth: malformed response body (status=%d): %v", e.Status, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrMalformedBody }
