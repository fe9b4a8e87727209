package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	t.Setenv(EnvClientID, "")
	t.Setenv(EnvClientSecret, "")
	t.Setenv(EnvRefreshToken, "")

	path := writeConfig(t, `
client-id: file-id
client-secret: file-secret
demo: true
refresh-margin-seconds: 120
log-level: debug
symbols:
  - MSFT
  - NVDA
account-ids:
  - "123456"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ClientID != "file-id" || cfg.ClientSecret != "file-secret" {
		t.Errorf("credentials = %q/%q", cfg.ClientID, cfg.ClientSecret)
	}
	if !cfg.Demo {
		t.Error("Demo not set")
	}
	if got := cfg.RefreshMargin(); got != 2*time.Minute {
		t.Errorf("RefreshMargin = %v, want 2m", got)
	}
	if len(cfg.Symbols) != 2 || cfg.Symbols[0] != "MSFT" {
		t.Errorf("Symbols = %v", cfg.Symbols)
	}
	if len(cfg.AccountIDs) != 1 || cfg.AccountIDs[0] != "123456" {
		t.Errorf("AccountIDs = %v", cfg.AccountIDs)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv(EnvClientID, "env-id")
	t.Setenv(EnvClientSecret, "env-secret")
	t.Setenv(EnvRefreshToken, "env-refresh")

	path := writeConfig(t, "client-id: file-id\nclient-secret: file-secret\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ClientID != "env-id" || cfg.ClientSecret != "env-secret" || cfg.RefreshToken != "env-refresh" {
		t.Errorf("cfg = %+v, want environment values to win", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv(EnvClientID, "only-env")
	t.Setenv(EnvClientSecret, "")
	t.Setenv(EnvRefreshToken, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ClientID != "only-env" {
		t.Errorf("ClientID = %q, want only-env", cfg.ClientID)
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := writeConfig(t, "client-id: [unclosed\n")
	if _, err := Load(path); err == nil {
		t.Error("Load succeeded on malformed YAML")
	}
}
