package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"tradestation-go/internal/browser"
)

// TradeStation sign-in endpoints.
const (
	AuthURL  = "https://signin.tradestation.com/authorize"
	TokenURL = "https://signin.tradestation.com/oauth/token"

	// Audience identifies the API the issued token is for.
	Audience = "https://api.tradestation.com"

	// Scope covers market data, account reads, and trading.
	Scope = "openid profile offline_access MarketData ReadAccount Trade"

	// DefaultCallbackPort is the loopback port the redirect URI points at.
	DefaultCallbackPort = 31022

	// DefaultLoginTimeout bounds how long Login waits for the browser
	// redirect before giving up.
	DefaultLoginTimeout = 5 * time.Minute
)

// Environment variables consulted when credentials are not passed in.
const (
	EnvClientID     = "TRADESTATION_CLIENT_ID"
	EnvClientSecret = "TRADESTATION_CLIENT_SECRET"
)

// Config carries the knobs for a Manager. Zero values select defaults.
type Config struct {
	// ClientID and ClientSecret fall back to the environment when empty.
	ClientID     string
	ClientSecret string

	// CallbackPort is the loopback port for the OAuth redirect.
	CallbackPort int

	// RefreshMargin is subtracted from the token expiry when deciding
	// whether a proactive refresh is due.
	RefreshMargin time.Duration

	// LoginTimeout bounds the wait for the browser redirect.
	LoginTimeout time.Duration

	// AuthURL and TokenURL override the sign-in endpoints, for tests.
	AuthURL  string
	TokenURL string

	// HTTPClient is used for token-endpoint calls.
	HTTPClient *http.Client

	// OpenBrowser opens the authorization URL. Defaults to the system
	// browser; headless callers can substitute their own.
	OpenBrowser func(url string) error

	// Now is the clock, for tests.
	Now func() time.Time
}

// Manager owns the credentials and the token store for one client
// instance, and performs the two token-endpoint grants. All outbound
// request paths go through EnsureValid before sending.
type Manager struct {
	clientID     string
	clientSecret string
	port         int
	authURL      string
	tokenURL     string
	redirectURI  string
	loginTimeout time.Duration

	store       *Store
	httpClient  *http.Client
	openBrowser func(string) error
	now         func() time.Time

	group singleflight.Group
}

// NewManager validates the credentials and builds a Manager. Missing
// credentials are a configuration error, reported immediately.
func NewManager(cfg Config) (*Manager, error) {
	clientID := cfg.ClientID
	if clientID == "" {
		clientID = os.Getenv(EnvClientID)
	}
	clientSecret := cfg.ClientSecret
	if clientSecret == "" {
		clientSecret = os.Getenv(EnvClientSecret)
	}
	if clientID == "" || clientSecret == "" {
		return nil, ErrMissingCredentials
	}

	port := cfg.CallbackPort
	if port <= 0 {
		port = DefaultCallbackPort
	}
	authURL := cfg.AuthURL
	if authURL == "" {
		authURL = AuthURL
	}
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = TokenURL
	}
	loginTimeout := cfg.LoginTimeout
	if loginTimeout <= 0 {
		loginTimeout = DefaultLoginTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	openURL := cfg.OpenBrowser
	if openURL == nil {
		openURL = browser.OpenURL
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Manager{
		clientID:     clientID,
		clientSecret: clientSecret,
		port:         port,
		authURL:      authURL,
		tokenURL:     tokenURL,
		redirectURI:  fmt.Sprintf("http://localhost:%d/", port),
		loginTimeout: loginTimeout,
		store:        NewStore(cfg.RefreshMargin),
		httpClient:   httpClient,
		openBrowser:  openURL,
		now:          now,
	}, nil
}

// AuthorizeURL builds the browser-directed authorization URL.
func (m *Manager) AuthorizeURL(state string) string {
	params := url.Values{
		"response_type": {"code"},
		"client_id":     {m.clientID},
		"audience":      {Audience},
		"redirect_uri":  {m.redirectURI},
		"scope":         {Scope},
		"state":         {state},
	}
	return fmt.Sprintf("%s?%s", m.authURL, params.Encode())
}

// Login runs the authorization-code flow: bind the loopback listener,
// open the browser, wait for the redirect, exchange the code. Concurrent
// calls collapse into one handshake; at most one listener exists per
// Manager at a time.
func (m *Manager) Login(ctx context.Context) error {
	_, err, _ := m.group.Do("login", func() (interface{}, error) {
		return nil, m.login(ctx)
	})
	return err
}

func (m *Manager) login(ctx context.Context) error {
	state := uuid.NewString()

	srv := NewCallbackServer(m.port)
	if err := srv.Start(); err != nil {
		return err
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if errStop := srv.Stop(stopCtx); errStop != nil {
			log.Warnf("callback server stop error: %v", errStop)
		}
	}()

	authorizeURL := m.AuthorizeURL(state)
	log.Info("opening browser for TradeStation authentication")
	if err := m.openBrowser(authorizeURL); err != nil {
		log.Warnf("failed to open browser automatically: %v", err)
		fmt.Printf("Visit the following URL to continue authentication:\n%s\n", authorizeURL)
	}

	log.Debug("waiting for TradeStation authentication callback")
	result, err := srv.WaitForCallback(ctx, m.loginTimeout)
	if err != nil {
		return err
	}
	if result.State != state {
		log.Errorf("state mismatch: expected %s, got %s", state, result.State)
		return ErrStateMismatch
	}

	if err = m.ExchangeCode(ctx, result.Code); err != nil {
		return err
	}
	log.Info("TradeStation authentication successful")
	return nil
}

// ExchangeCode trades an authorization code for tokens and records them.
// A failed exchange is never retried; the code is single-use server-side.
func (m *Manager) ExchangeCode(ctx context.Context, code string) error {
	form := url.Values{
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"redirect_uri":  {m.redirectURI},
		"client_id":     {m.clientID},
		"client_secret": {m.clientSecret},
	}
	return m.requestToken(ctx, "authorization_code", form)
}

// Refresh trades the stored refresh token for a new access token. Without
// a recorded refresh token this fails immediately: the caller has to log
// in from scratch. Concurrent refreshes collapse into one exchange.
func (m *Manager) Refresh(ctx context.Context) error {
	_, err, _ := m.group.Do("refresh", func() (interface{}, error) {
		refreshToken := m.store.Current().RefreshToken
		if refreshToken == "" {
			return nil, ErrNoRefreshToken
		}
		form := url.Values{
			"grant_type":    {"refresh_token"},
			"refresh_token": {refreshToken},
			"client_id":     {m.clientID},
			"client_secret": {m.clientSecret},
		}
		return nil, m.requestToken(ctx, "refresh_token", form)
	})
	return err
}

// EnsureValid refreshes the token when it is no longer fresh. It returns
// only once any needed refresh has completed, so the guarded request is
// always sent with the new token.
func (m *Manager) EnsureValid(ctx context.Context) error {
	if m.store.IsFresh(m.now()) {
		return nil
	}
	log.Debug("access token stale, refreshing")
	return m.Refresh(ctx)
}

// AuthorizationHeader returns the bearer header for the current token.
// Reading at call time makes a completed refresh visible to every request
// built afterwards.
func (m *Manager) AuthorizationHeader() string {
	return "Bearer " + m.store.Current().AccessToken
}

// Token returns a snapshot of the current token.
func (m *Manager) Token() Token {
	return m.store.Current()
}

// SetRefreshToken seeds a saved refresh token. The access token stays
// empty, so the next EnsureValid performs a refresh before any request.
func (m *Manager) SetRefreshToken(refreshToken string) {
	m.store.SeedRefreshToken(refreshToken)
}

// Store exposes the underlying token store.
func (m *Manager) Store() *Store {
	return m.store
}

// RedirectURI returns the loopback redirect URI sent with both grants.
func (m *Manager) RedirectURI() string {
	return m.redirectURI
}

func (m *Manager) requestToken(ctx context.Context, grant string, form url.Values) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("auth: failed to create %s request: %w", grant, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return &AuthenticationError{Grant: grant, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &AuthenticationError{Grant: grant, Err: fmt.Errorf("failed to read token response: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &AuthenticationError{Grant: grant, StatusCode: resp.StatusCode, Body: string(body)}
	}

	var tokenResp struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		TokenType    string `json:"token_type"`
		ExpiresIn    int    `json:"expires_in"`
	}
	if err = json.Unmarshal(body, &tokenResp); err != nil {
		return &AuthenticationError{Grant: grant, Err: fmt.Errorf("failed to parse token response: %w", err)}
	}
	if tokenResp.AccessToken == "" {
		return &AuthenticationError{Grant: grant, Err: fmt.Errorf("token response missing access_token")}
	}

	m.store.Record(tokenResp.AccessToken, tokenResp.RefreshToken, tokenResp.ExpiresIn, m.now())
	return nil
}
