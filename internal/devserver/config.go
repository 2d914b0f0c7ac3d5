package devserver

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

// Config holds the stand-in service settings
type Config struct {
	Address string `env:"DEVBACKEND_ADDRESS" envDefault:"localhost:3000"`
	BaseURL string `env:"DEVBACKEND_BASE_URL" envDefault:"http://localhost:3000"`
}

// LoadConfig reads the configuration from the environment
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
