package shorten

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_shortener.go -package=mocks

// Shortener defines the interface for the shortening service client.
type Shortener interface {
	// Shorten submits longURL and returns the normalized short URL.
	Shorten(ctx context.Context, longURL string) (*Result, error)
}

// HTTPClient abstracts HTTP request execution for testing and custom transports.
// The standard *http.Client satisfies this interface.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Result is the outcome of a successful shorten call
type Result struct {
	ShortURL   string
	RequestID  string
	StatusCode int
}
