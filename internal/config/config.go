// Package config loads tool configuration from a YAML file with
// environment overrides for the credential fields.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration of the command-line tools.
type Config struct {
	// ClientID and ClientSecret identify the registered API application.
	// Prefer the TRADESTATION_CLIENT_ID and TRADESTATION_CLIENT_SECRET
	// environment variables over putting secrets in the file.
	ClientID     string `yaml:"client-id"`
	ClientSecret string `yaml:"client-secret"`

	// RefreshToken, when set, skips the interactive browser login.
	RefreshToken string `yaml:"refresh-token"`

	// Demo selects the simulated-trading host.
	Demo bool `yaml:"demo"`

	// CallbackPort is the loopback port for the interactive login.
	CallbackPort int `yaml:"callback-port"`

	// RefreshMarginSeconds is how long before expiry the access token is
	// refreshed.
	RefreshMarginSeconds int `yaml:"refresh-margin-seconds"`

	// LogLevel is a logrus level name, e.g. debug, info, warn.
	LogLevel string `yaml:"log-level"`

	// Symbols and AccountIDs are defaults for the streaming tools.
	Symbols    []string `yaml:"symbols"`
	AccountIDs []string `yaml:"account-ids"`
}

// Environment variable overrides.
const (
	EnvClientID     = "TRADESTATION_CLIENT_ID"
	EnvClientSecret = "TRADESTATION_CLIENT_SECRET"
	EnvRefreshToken = "TRADESTATION_REFRESH_TOKEN"
)

// Load reads the YAML file at path and applies environment overrides.
// A missing file is not an error; the environment alone may be enough.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvClientID); v != "" {
		c.ClientID = v
	}
	if v := os.Getenv(EnvClientSecret); v != "" {
		c.ClientSecret = v
	}
	if v := os.Getenv(EnvRefreshToken); v != "" {
		c.RefreshToken = v
	}
}

// RefreshMargin converts the configured margin to a duration; zero means
// use the library default.
func (c *Config) RefreshMargin() time.Duration {
	return time.Duration(c.RefreshMarginSeconds) * time.Second
}
