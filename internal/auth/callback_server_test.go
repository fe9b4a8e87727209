package auth

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"
)

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	_ = ln.Close()
	return port
}

func startCallbackServer(t *testing.T) (*CallbackServer, int) {
	t.Helper()
	port := freePort(t)
	srv := NewCallbackServer(port)
	if err := srv.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Stop(ctx)
	})
	return srv, port
}

func TestCallbackServerCapturesCode(t *testing.T) {
	t.Parallel()

	srv, port := startCallbackServer(t)

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/?code=abc&state=xyz", port))
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}

	result, err := srv.WaitForCallback(context.Background(), 5*time.Second)
	if err != nil {
		t.Fatalf("WaitForCallback: %v", err)
	}
	if result.Code != "abc" || result.State != "xyz" {
		t.Errorf("result = %+v, want code=abc state=xyz", result)
	}
}

func TestCallbackServerSurvivesMissingCode(t *testing.T) {
	t.Parallel()

	srv, port := startCallbackServer(t)

	// A probe without a code gets rejected but must not kill the listener.
	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/", port))
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if !srv.IsRunning() {
		t.Fatal("listener stopped after a request without a code")
	}

	// The real redirect still goes through afterwards.
	resp, err = http.Get(fmt.Sprintf("http://127.0.0.1:%d/?code=real", port))
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	_ = resp.Body.Close()

	result, err := srv.WaitForCallback(context.Background(), 5*time.Second)
	if err != nil {
		t.Fatalf("WaitForCallback: %v", err)
	}
	if result.Code != "real" {
		t.Errorf("Code = %q, want real", result.Code)
	}
}

func TestCallbackServerSingleUse(t *testing.T) {
	t.Parallel()

	srv, port := startCallbackServer(t)

	for _, code := range []string{"first", "second"} {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/?code=%s", port, code))
		if err != nil {
			t.Fatalf("GET %s: %v", code, err)
		}
		_ = resp.Body.Close()
	}

	result, err := srv.WaitForCallback(context.Background(), 5*time.Second)
	if err != nil {
		t.Fatalf("WaitForCallback: %v", err)
	}
	if result.Code != "first" {
		t.Errorf("Code = %q, want the first delivery to win", result.Code)
	}

	// No second result may be pending.
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if extra, errWait := srv.WaitForCallback(ctx, 100*time.Millisecond); errWait == nil {
		t.Errorf("unexpected second result: %+v", extra)
	}
}

func TestCallbackServerTimeout(t *testing.T) {
	t.Parallel()

	srv, _ := startCallbackServer(t)

	if _, err := srv.WaitForCallback(context.Background(), 50*time.Millisecond); err != ErrCallbackTimeout {
		t.Errorf("WaitForCallback error = %v, want ErrCallbackTimeout", err)
	}
}

func TestCallbackServerPortInUse(t *testing.T) {
	t.Parallel()

	_, port := startCallbackServer(t)

	dup := NewCallbackServer(port)
	if err := dup.Start(); err == nil {
		t.Error("Start on an occupied port should fail")
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = dup.Stop(ctx)
	}
}
