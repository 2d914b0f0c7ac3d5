package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"

	"github.com/ytget/url-shortener/internal/shorten"
)

// Config holds the connection settings of the shortening service.
// Every field comes from the environment so one build serves local and
// hosted deployments.
type Config struct {
	BaseURL          string `env:"SHORTENER_BASE_URL" envDefault:"http://localhost:3000"`
	EndpointPath     string `env:"SHORTENER_ENDPOINT_PATH" envDefault:"/url/shorten"`
	ShortBaseURL     string `env:"SHORTENER_SHORT_BASE_URL"`
	Contract         string `env:"SHORTENER_CONTRACT" envDefault:"id"`
	RequestFieldName string `env:"SHORTENER_REQUEST_FIELD"`
	TimeoutMs        int    `env:"SHORTENER_TIMEOUT_MS" envDefault:"10000"`
	LogLevel         string `env:"SHORTENER_LOG_LEVEL" envDefault:"info"`
}

// ErrInvalidTimeout is returned for a non-positive request timeout
var ErrInvalidTimeout = errors.New("timeout must be positive")

// Load reads the configuration from the process environment
func Load() (*Config, error) {
	return load(env.Options{})
}

// LoadFromEnvironment reads the configuration from the given variables only
func LoadFromEnvironment(environ map[string]string) (*Config, error) {
	return load(env.Options{Environment: environ})
}

func load(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a usable deployment
func (c *Config) Validate() error {
	if c.TimeoutMs <= 0 {
		return fmt.Errorf("%w: %d ms", ErrInvalidTimeout, c.TimeoutMs)
	}
	if _, err := c.ShortenOptions(); err != nil {
		return err
	}
	return nil
}

// Timeout returns the client request timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// ShortenOptions returns the validated options for shorten.NewClient
func (c *Config) ShortenOptions() (shorten.Options, error) {
	contract, err := shorten.ParseContract(c.Contract)
	if err != nil {
		return shorten.Options{}, err
	}

	opts := shorten.Options{
		BaseURL:      c.BaseURL,
		EndpointPath: c.EndpointPath,
		ShortBaseURL: c.ShortBaseURL,
		Contract:     contract,
		RequestField: c.RequestFieldName,
		Timeout:      c.Timeout(),
	}
	if err := opts.Validate(); err != nil {
		return shorten.Options{}, err
	}
	return opts, nil
}
