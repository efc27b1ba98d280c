package zarinpal

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingData is returned when a successful token response has no "data" object.
var ErrMissingData = errors.New("zarinpal: token response missing data object")

// AuthorizationError is Zarinpal's non-standard authorization redirect error,
// signaled with error_code and error_message query parameters.
type AuthorizationError struct {
	Message string
	// Caller is the originating call site, set only in zarinpaldebug builds.
	Caller string
	Code   int
	Status int
}

func newAuthorizationError(message string, code int) *AuthorizationError {
	return &AuthorizationError{
		Message: message,
		Code:    code,
		Status:  http.StatusInternalServerError,
		Caller:  captureCaller(),
	}
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("zarinpal: authorization failed (code %d): %s", e.Code, e.Message)
}

// TokenError is Zarinpal's non-standard token endpoint error, where "error"
// is an object instead of an RFC 6749 error code.
type TokenError struct {
	Message string
	Type    string
	// Caller is the originating call site, set only in zarinpaldebug builds.
	Caller  string
	Code    int
	Subcode int
	Status  int
}

func newTokenError(message, typ string, code, subcode int) *TokenError {
	return &TokenError{
		Message: message,
		Type:    typ,
		Code:    code,
		Subcode: subcode,
		Status:  http.StatusInternalServerError,
		Caller:  captureCaller(),
	}
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("zarinpal: token request failed (type %q, code %d, subcode %d): %s",
		e.Type, e.Code, e.Subcode, e.Message)
}

// AsAuthorizationError extracts an *AuthorizationError from err's chain.
func AsAuthorizationError(err error) (*AuthorizationError, bool) {
	var target *AuthorizationError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// AsTokenError extracts a *TokenError from err's chain.
func AsTokenError(err error) (*TokenError, bool) {
	var target *TokenError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
