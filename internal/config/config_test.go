package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("should apply defaults when nothing is set", func(t *testing.T) {
		// given
		for _, key := range []string{
			"SERVER_PORT", "SERVER_HOST", "GITHUB_API_BASE_URL", "GITHUB_HTTP_TIMEOUT",
			"AGGREGATION_MAX_CONCURRENCY", "LOG_LEVEL", "LOG_FORMAT", "CORS_ALLOWED_ORIGINS", "GIN_MODE",
		} {
			t.Setenv(key, "")
		}

		// when
		cfg, err := Load()

		// then
		require.NoError(t, err)
		assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddress())
		assert.Equal(t, "https://api.github.com", cfg.GitHub.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.GitHubHTTPTimeout())
		assert.Equal(t, 16, cfg.Aggregation.MaxConcurrency)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "text", cfg.Log.Format)
		assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
		assert.Equal(t, "release", cfg.Server.GinMode)
	})

	t.Run("should read overrides from the environment", func(t *testing.T) {
		// given
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("SERVER_HOST", "127.0.0.1")
		t.Setenv("GITHUB_API_BASE_URL", "http://localhost:8089")
		t.Setenv("GITHUB_HTTP_TIMEOUT", "5")
		t.Setenv("AGGREGATION_MAX_CONCURRENCY", "4")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

		// when
		cfg, err := Load()

		// then
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:9090", cfg.GetServerAddress())
		assert.Equal(t, "http://localhost:8089", cfg.GitHub.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.GitHubHTTPTimeout())
		assert.Equal(t, 4, cfg.Aggregation.MaxConcurrency)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	})

	t.Run("should fall back on unparsable integers", func(t *testing.T) {
		// given
		t.Setenv("AGGREGATION_MAX_CONCURRENCY", "many")

		// when
		cfg, err := Load()

		// then
		require.NoError(t, err)
		assert.Equal(t, 16, cfg.Aggregation.MaxConcurrency)
	})

	t.Run("should leave validation to the caller", func(t *testing.T) {
		// given
		t.Setenv("GITHUB_API_BASE_URL", "not-a-url")

		// when
		cfg, err := Load()

		// then
		require.NoError(t, err)
		assert.Equal(t, "not-a-url", cfg.GitHub.BaseURL)
		assert.Error(t, cfg.Validate())
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Port: "8080", Host: "0.0.0.0", GinMode: "release"},
			GitHub: GitHubConfig{BaseURL: "https://api.github.com", HTTPTimeout: 30},
			Log:    LogConfig{Level: "info", Format: "text"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "should accept a valid config", mutate: func(c *Config) {}, wantErr: false},
		{name: "should reject an empty port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: true},
		{name: "should reject a relative base URL", mutate: func(c *Config) { c.GitHub.BaseURL = "api.github.com" }, wantErr: true},
		{name: "should reject a non-http base URL", mutate: func(c *Config) { c.GitHub.BaseURL = "ftp://api.github.com" }, wantErr: true},
		{name: "should reject a zero timeout", mutate: func(c *Config) { c.GitHub.HTTPTimeout = 0 }, wantErr: true},
		{name: "should reject an unknown log level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: true},
		{name: "should reject an unknown gin mode", mutate: func(c *Config) { c.Server.GinMode = "production" }, wantErr: true},
		{name: "should reject an unknown log format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// given
			cfg := valid()
			tt.mutate(cfg)

			// when
			err := cfg.Validate()

			// then
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
