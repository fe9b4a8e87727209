// Package auth implements the OAuth2 authorization-code and refresh-token
// flows for the TradeStation sign-in service, including the loopback
// callback listener and the in-memory token store.
package auth

import (
	"sync"
	"time"
)

const (
	// DefaultExpiresIn is assumed when the token endpoint omits expires_in.
	DefaultExpiresIn = 1200

	// DefaultRefreshMargin is subtracted from the token expiry when deciding
	// whether a proactive refresh is due.
	DefaultRefreshMargin = 60 * time.Second
)

// Token is one issued access token together with its refresh token and
// expiry. Tokens live only in process memory; nothing here persists them.
type Token struct {
	AccessToken  string
	RefreshToken string
	IssuedAt     time.Time
	Expiry       time.Time
}

// Store holds the single current token for one client instance. Updates
// replace the whole record; reads return snapshots, so callers never
// observe a half-written token.
type Store struct {
	mu     sync.RWMutex
	margin time.Duration
	tok    Token
}

// NewStore returns a Store with the given refresh margin. A non-positive
// margin selects DefaultRefreshMargin.
func NewStore(margin time.Duration) *Store {
	if margin <= 0 {
		margin = DefaultRefreshMargin
	}
	return &Store{margin: margin}
}

// Record replaces the stored token after a successful grant. expiresIn is
// in seconds; zero or negative falls back to DefaultExpiresIn. An empty
// refresh token keeps the previously recorded one, since refresh-grant
// responses may omit it.
func (s *Store) Record(accessToken, refreshToken string, expiresIn int, now time.Time) {
	if expiresIn <= 0 {
		expiresIn = DefaultExpiresIn
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if refreshToken == "" {
		refreshToken = s.tok.RefreshToken
	}
	s.tok = Token{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		IssuedAt:     now,
		Expiry:       now.Add(time.Duration(expiresIn) * time.Second),
	}
}

// SeedRefreshToken installs a refresh token with no access token, so the
// next freshness check fails and forces a refresh grant.
func (s *Store) SeedRefreshToken(refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tok = Token{RefreshToken: refreshToken}
}

// IsFresh reports whether the stored token is usable at the given instant,
// leaving the configured margin before expiry.
func (s *Store) IsFresh(now time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tok.Expiry.IsZero() {
		return false
	}
	return now.Before(s.tok.Expiry.Add(-s.margin))
}

// Current returns a snapshot of the stored token.
func (s *Store) Current() Token {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tok
}

// Margin returns the refresh margin the store was built with.
func (s *Store) Margin() time.Duration {
	return s.margin
}
