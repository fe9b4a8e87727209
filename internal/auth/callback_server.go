package auth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// callbackSuccessHTML is served once the authorization code has been
// captured. It closes the browser tab on its own after a second.
const callbackSuccessHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Authentication Successful</title>
    <script>setTimeout(() => window.close(), 1000);</script>
    <style>
        body {
            display: flex;
            justify-content: center;
            align-items: center;
            height: 100vh;
            font-family: Arial, sans-serif;
            font-size: 24px;
            font-weight: bold;
        }
    </style>
</head>
<body>
    Authentication successful!
</body>
</html>
`

// CallbackResult carries the query parameters captured from the one
// authorization redirect the listener accepts.
type CallbackResult struct {
	Code  string
	State string
}

// CallbackServer is a loopback HTTP listener whose only job is to receive
// the OAuth redirect and hand the authorization code to the waiting login
// flow. It accepts exactly one redirect carrying a code; probes without a
// code get a 400 and leave the listener running.
type CallbackServer struct {
	server *http.Server
	port   int

	resultCh chan *CallbackResult
	errCh    chan error

	mu      sync.Mutex
	running bool
}

// NewCallbackServer creates a listener for 127.0.0.1:port.
func NewCallbackServer(port int) *CallbackServer {
	return &CallbackServer{
		port:     port,
		resultCh: make(chan *CallbackResult, 1),
		errCh:    make(chan error, 1),
	}
}

// Start binds the loopback port and begins serving. It must complete
// before the browser is opened so the redirect cannot race the listener.
func (s *CallbackServer) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return errors.New("auth: callback server already running")
	}

	ln, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", s.port))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPortInUse, err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRedirect)

	s.server = &http.Server{
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	s.running = true

	srv := s.server
	go func() {
		if errServe := srv.Serve(ln); errServe != nil && !errors.Is(errServe, http.ErrServerClosed) {
			select {
			case s.errCh <- fmt.Errorf("auth: callback server failed: %w", errServe):
			default:
			}
		}
	}()

	return nil
}

// Stop shuts the listener down. Safe to call more than once; stopping a
// server that never started is a no-op. Must not be called from inside the
// redirect handler, which is why the login flow drives shutdown from its
// own goroutine once a result arrives.
func (s *CallbackServer) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.server == nil {
		return nil
	}

	log.Debug("stopping OAuth callback server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.server.Shutdown(shutdownCtx)
	s.running = false
	s.server = nil
	return err
}

// WaitForCallback blocks until the redirect arrives, the server fails, the
// context is cancelled, or the timeout elapses.
func (s *CallbackServer) WaitForCallback(ctx context.Context, timeout time.Duration) (*CallbackResult, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case result := <-s.resultCh:
		return result, nil
	case err := <-s.errCh:
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
		return nil, ErrCallbackTimeout
	}
}

// IsRunning reports whether the listener is currently serving.
func (s *CallbackServer) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *CallbackServer) handleRedirect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	code := query.Get("code")
	if code == "" {
		// A probe or a broken redirect. Reject it but keep listening for
		// the real one.
		log.Debug("callback request without authorization code")
		http.Error(w, "no authorization code received", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(callbackSuccessHTML)); err != nil {
		log.Warnf("failed to write callback success page: %v", err)
	}

	// Capacity-one channel: the first code wins, a second redirect before
	// shutdown is dropped and cannot trigger a double exchange.
	select {
	case s.resultCh <- &CallbackResult{Code: code, State: query.Get("state")}:
		log.Debug("authorization code captured")
	default:
		log.Warn("duplicate OAuth callback ignored")
	}
}
