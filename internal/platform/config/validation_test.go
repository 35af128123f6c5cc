package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) *Config {
	t.Helper()

	cfg, err := Load("")
	require.NoError(t, err)

	return cfg
}

func TestValidate_Defaults(t *testing.T) {
	cfg := validConfig(t)

	assert.NoError(t, cfg.Validate())
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.Quote.Provider = "fortune-cookie" },
			wantMsg: "quote.provider must be one of",
		},
		{
			name:    "missing base URL",
			mutate:  func(c *Config) { c.Quote.BaseURL = "" },
			wantMsg: "quote.baseurl is required",
		},
		{
			name:    "base URL not a URL",
			mutate:  func(c *Config) { c.Quote.BaseURL = "not a url" },
			wantMsg: "must be a valid URL",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantMsg: "server.port must be at most 65535",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "verbose" },
			wantMsg: "log.level must be one of",
		},
		{
			name:    "bad environment",
			mutate:  func(c *Config) { c.App.Environment = "staging" },
			wantMsg: "app.environment must be one of",
		},
		{
			name:    "file logging without path",
			mutate:  func(c *Config) { c.Log.File.Enabled = true; c.Log.File.Path = "" },
			wantMsg: "log.file.path is required when",
		},
		{
			name:    "telemetry without endpoint",
			mutate:  func(c *Config) { c.Telemetry.Enabled = true; c.Telemetry.Endpoint = "" },
			wantMsg: "telemetry.endpoint is required when",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
