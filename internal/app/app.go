// Package app assembles the shortening client and the form controller
// from the loaded configuration.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ytget/url-shortener/internal/config"
	"github.com/ytget/url-shortener/internal/form"
	"github.com/ytget/url-shortener/internal/shorten"
)

// App holds the services behind the window
type App struct {
	Client     *shorten.Client
	Controller *form.Controller
	contract   shorten.Contract
}

// NewApp builds the client and controller described by cfg
func NewApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	opts, err := cfg.ShortenOptions()
	if err != nil {
		return nil, fmt.Errorf("build shortener options: %w", err)
	}

	client, err := shorten.NewClient(opts, shorten.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("create shortener client: %w", err)
	}

	controller := form.NewController(client,
		form.WithLogger(logger),
		form.WithTimeout(cfg.Timeout()),
	)

	logger.Info("shortener configured",
		zap.String("endpoint", client.Endpoint()),
		zap.Stringer("contract", opts.Contract),
		zap.Duration("timeout", cfg.Timeout()),
	)

	return &App{
		Client:     client,
		Controller: controller,
		contract:   opts.Contract,
	}, nil
}

// Endpoint returns the URL submissions are posted to
func (a *App) Endpoint() string {
	return a.Client.Endpoint()
}

// Contract returns the response contract in use
func (a *App) Contract() string {
	return a.contract.String()
}
