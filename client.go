// Package tradestation is a client for the TradeStation WebAPI. It covers
// the brokerage, order execution, and market data endpoints, both their
// request/response forms and their streaming forms, and manages the OAuth
// token lifecycle transparently: every call refreshes the access token
// before use when it is about to expire.
package tradestation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tradestation-go/internal/auth"
)

const (
	// LiveURL is the production API host.
	LiveURL = "https://api.tradestation.com"
	// DemoURL is the simulated-trading API host.
	DemoURL = "https://sim-api.tradestation.com"

	defaultTimeout = 30 * time.Second
)

// knownErrorStatuses are the statuses for which the API sends a structured
// ErrorResponse body. Anything else outside 200 is unexpected.
var knownErrorStatuses = map[int]bool{
	http.StatusBadRequest:          true,
	http.StatusUnauthorized:        true,
	http.StatusForbidden:           true,
	http.StatusNotFound:            true,
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// APIError is a structured error response from the API.
type APIError struct {
	StatusCode int
	Response   ErrorResponse
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d %s: %s", e.StatusCode, e.Response.Error, e.Response.Message)
}

// Config configures a Client. ClientID and ClientSecret fall back to the
// TRADESTATION_CLIENT_ID and TRADESTATION_CLIENT_SECRET environment
// variables when empty.
type Config struct {
	ClientID     string
	ClientSecret string

	// Demo routes all calls to the simulated-trading host.
	Demo bool

	// BaseURL overrides the API host entirely; it takes precedence over
	// Demo. Useful for tests.
	BaseURL string

	// HTTPClient is used for all API calls when set. Streaming calls get
	// a copy with the overall timeout removed, since a stream is expected
	// to outlive any sane request deadline.
	HTTPClient *http.Client

	// CallbackPort is the loopback port for the interactive login
	// redirect. Defaults to the registered application port.
	CallbackPort int

	// RefreshMargin is how long before expiry a token is already treated
	// as stale. Defaults to one minute.
	RefreshMargin time.Duration

	// LoginTimeout bounds how long an interactive login waits for the
	// browser redirect. Defaults to five minutes.
	LoginTimeout time.Duration

	// TokenURL overrides the OAuth token endpoint. Useful for tests.
	TokenURL string
}

// Client talks to the TradeStation WebAPI.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	streamClient *http.Client
	auth         *auth.Manager
}

// New builds a Client. It does not authenticate; call Login for the
// interactive flow, or seed a refresh token via SetRefreshToken.
func New(cfg Config) (*Client, error) {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	mgr, err := auth.NewManager(auth.Config{
		ClientID:      cfg.ClientID,
		ClientSecret:  cfg.ClientSecret,
		CallbackPort:  cfg.CallbackPort,
		RefreshMargin: cfg.RefreshMargin,
		LoginTimeout:  cfg.LoginTimeout,
		TokenURL:      cfg.TokenURL,
		HTTPClient:    httpClient,
	})
	if err != nil {
		return nil, err
	}

	baseURL := LiveURL
	if cfg.Demo {
		baseURL = DemoURL
	}
	if cfg.BaseURL != "" {
		baseURL = strings.TrimRight(cfg.BaseURL, "/")
	}

	streamClient := &http.Client{}
	*streamClient = *httpClient
	streamClient.Timeout = 0

	return &Client{
		baseURL:      baseURL,
		httpClient:   httpClient,
		streamClient: streamClient,
		auth:         mgr,
	}, nil
}

// Login runs the interactive browser login. Concurrent calls collapse
// into one flow.
func (c *Client) Login(ctx context.Context) error {
	return c.auth.Login(ctx)
}

// Refresh forces a token refresh regardless of freshness.
func (c *Client) Refresh(ctx context.Context) error {
	return c.auth.Refresh(ctx)
}

// SetRefreshToken seeds a previously saved refresh token so the client can
// mint access tokens without an interactive login. The first API call will
// perform the refresh.
func (c *Client) SetRefreshToken(refreshToken string) {
	c.auth.SetRefreshToken(refreshToken)
}

// Token returns a snapshot of the current token.
func (c *Client) Token() auth.Token {
	return c.auth.Token()
}

// Close releases idle connections. Open streams are unaffected; close
// them individually. Safe to call more than once.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	c.streamClient.CloseIdleConnections()
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	if err := c.auth.EnsureValid(ctx); err != nil {
		return nil, err
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", c.auth.AuthorizationHeader())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// decodeResponse dispatches on the HTTP status: 200 decodes into out, a
// known error status decodes the structured error body, and anything else
// is a hard failure.
func decodeResponse(resp *http.Response, out any) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	case knownErrorStatuses[resp.StatusCode]:
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(data, &apiErr.Response); err != nil {
			apiErr.Response = ErrorResponse{Message: strings.TrimSpace(string(data))}
		}
		return apiErr
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncateForLog(data))
	}
}
