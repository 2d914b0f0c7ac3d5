package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/url-shortener/internal/shorten"
)

func TestLoadFromEnvironment_Defaults(t *testing.T) {
	cfg, err := LoadFromEnvironment(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.BaseURL)
	assert.Equal(t, "/url/shorten", cfg.EndpointPath)
	assert.Equal(t, "id", cfg.Contract)
	assert.Equal(t, 10000, cfg.TimeoutMs)
	assert.Equal(t, 10*time.Second, cfg.Timeout())
	assert.Equal(t, "info", cfg.LogLevel)

	opts, err := cfg.ShortenOptions()
	require.NoError(t, err)
	assert.Equal(t, shorten.ContractID, opts.Contract)
	assert.Empty(t, opts.RequestField)
}

func TestLoadFromEnvironment_Overrides(t *testing.T) {
	cfg, err := LoadFromEnvironment(map[string]string{
		"SHORTENER_BASE_URL":       "https://api.short.ly",
		"SHORTENER_ENDPOINT_PATH":  "/api/shorten",
		"SHORTENER_SHORT_BASE_URL": "https://short.ly",
		"SHORTENER_CONTRACT":       "full",
		"SHORTENER_REQUEST_FIELD":  "longUrl",
		"SHORTENER_TIMEOUT_MS":     "2500",
		"SHORTENER_LOG_LEVEL":      "debug",
	})
	require.NoError(t, err)

	opts, err := cfg.ShortenOptions()
	require.NoError(t, err)

	assert.Equal(t, shorten.Options{
		BaseURL:      "https://api.short.ly",
		EndpointPath: "/api/shorten",
		ShortBaseURL: "https://short.ly",
		Contract:     shorten.ContractFull,
		RequestField: "longUrl",
		Timeout:      2500 * time.Millisecond,
	}, opts)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadFromEnvironment_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
		wantErr error
	}{
		{
			name:    "zero timeout",
			environ: map[string]string{"SHORTENER_TIMEOUT_MS": "0"},
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "unknown contract",
			environ: map[string]string{"SHORTENER_CONTRACT": "both"},
			wantErr: shorten.ErrUnknownContract,
		},
		{
			name:    "base url without scheme",
			environ: map[string]string{"SHORTENER_BASE_URL": "localhost:3000"},
			wantErr: shorten.ErrInvalidBaseURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromEnvironment(tt.environ)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("timeout is not a number", func(t *testing.T) {
		_, err := LoadFromEnvironment(map[string]string{"SHORTENER_TIMEOUT_MS": "soon"})
		require.Error(t, err)
	})
}

func TestConfig_ShortenOptions_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name:    "unknown contract",
			cfg:     Config{BaseURL: "http://localhost:3000", Contract: "both", TimeoutMs: 1000},
			wantErr: shorten.ErrUnknownContract,
		},
		{
			name:    "non http base url",
			cfg:     Config{BaseURL: "ftp://localhost:3000", Contract: "id", TimeoutMs: 1000},
			wantErr: shorten.ErrInvalidBaseURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.ShortenOptions()
			require.ErrorIs(t, err, tt.wantErr)
			require.ErrorIs(t, tt.cfg.Validate(), tt.wantErr)
		})
	}
}
