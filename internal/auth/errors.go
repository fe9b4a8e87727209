package auth

import (
	"errors"
	"fmt"
)

// Sentinel errors for the login and refresh flows.
var (
	// ErrMissingCredentials is returned when neither explicit arguments nor
	// the environment provide a client ID and secret.
	ErrMissingCredentials = errors.New("auth: client id and client secret must be provided via arguments or TRADESTATION_CLIENT_ID / TRADESTATION_CLIENT_SECRET")

	// ErrNoRefreshToken is returned when a refresh is attempted before an
	// authorization-code exchange has recorded a refresh token. The caller
	// must log in again; there is nothing to retry.
	ErrNoRefreshToken = errors.New("auth: no refresh token recorded")

	// ErrPortInUse is returned when the loopback callback port is taken.
	ErrPortInUse = errors.New("auth: callback port already in use")

	// ErrCallbackTimeout is returned when no authorization redirect arrives
	// within the configured login window.
	ErrCallbackTimeout = errors.New("auth: timed out waiting for OAuth callback")

	// ErrStateMismatch is returned when the redirect carries a state value
	// that does not match the one sent to the authorization endpoint.
	ErrStateMismatch = errors.New("auth: OAuth state mismatch")
)

// AuthenticationError reports a failed exchange against the token endpoint.
// It carries the grant type that failed, the HTTP status, and the raw
// response body so callers can surface the server's reason.
type AuthenticationError struct {
	Grant      string
	StatusCode int
	Body       string
	Err        error
}

func (e *AuthenticationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth: %s grant failed: %v", e.Grant, e.Err)
	}
	return fmt.Sprintf("auth: %s grant failed with status %d: %s", e.Grant, e.StatusCode, e.Body)
}

func (e *AuthenticationError) Unwrap() error { return e.Err }
