package shorten

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HTTP constants
const (
	HeaderRequestID   = "X-Request-ID"
	HeaderContentType = "Content-Type"
	HeaderAccept      = "Accept"
	ContentTypeJSON   = "application/json"
)

// Client defaults
const (
	DefaultEndpointPath = "/url/shorten"
	DefaultTimeout      = 10 * time.Second

	// maxResponseBytes bounds how much of a response body is read
	maxResponseBytes = 1 << 20
)

// ErrInvalidBaseURL is returned when the configured base URL is unusable
var ErrInvalidBaseURL = errors.New("base url must be an absolute http(s) url")

// Options describes one deployment of the shortening service
type Options struct {
	BaseURL      string        // root of the shortening service
	EndpointPath string        // path of the shorten endpoint
	ShortBaseURL string        // prefix for identifiers returned by the service; defaults to BaseURL
	Contract     Contract      // backend contract in use
	RequestField string        // JSON key carrying the long URL; defaults to the contract's field
	Timeout      time.Duration // client request timeout
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithHTTPClient replaces the HTTP client used to reach the service
func WithHTTPClient(hc HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Client talks to the shortening service
type Client struct {
	httpClient   HTTPClient
	endpoint     string
	opts         Options
	logger       *zap.Logger
	newRequestID func() string
}

// NewClient creates a client for the deployment described by opts
func NewClient(opts Options, clientOpts ...ClientOption) (*Client, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	endpoint, err := opts.endpoint()
	if err != nil {
		return nil, err
	}

	c := &Client{
		httpClient:   &http.Client{Timeout: opts.Timeout},
		endpoint:     endpoint,
		opts:         opts,
		logger:       zap.NewNop(),
		newRequestID: generateRequestID,
	}
	for _, o := range clientOpts {
		o(c)
	}

	return c, nil
}

// Endpoint returns the full URL requests are posted to
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Options returns the effective options after defaults were applied
func (c *Client) Options() Options {
	return c.opts
}

// Shorten posts longURL to the service and normalizes the answer.
// It issues exactly one request and never retries.
func (c *Client) Shorten(ctx context.Context, longURL string) (*Result, error) {
	longURL = strings.TrimSpace(longURL)
	if longURL == "" {
		return nil, ErrEmptyURL
	}

	payload, err := json.Marshal(map[string]string{c.opts.RequestField: longURL})
	if err != nil {
		return nil, &TransportError{Op: "encode request", Err: err}
	}

	requestID := c.newRequestID()
	log := c.logger.With(
		zap.String("request_id", requestID),
		zap.String("contract", c.opts.Contract.String()),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, &TransportError{Op: "build request", Err: err}
	}
	req.Header.Set(HeaderContentType, ContentTypeJSON)
	req.Header.Set(HeaderAccept, ContentTypeJSON)
	req.Header.Set(HeaderRequestID, requestID)

	log.Debug("sending shorten request", zap.String("endpoint", c.endpoint), zap.String("url", longURL))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("shorten request failed", zap.Error(err), zap.Duration("latency", time.Since(start)))
		return nil, &TransportError{Op: "send request", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		log.Warn("reading shorten response failed", zap.Error(err))
		return nil, &TransportError{Op: "read response", Err: err}
	}

	log = log.With(zap.Int("status", resp.StatusCode), zap.Duration("latency", time.Since(start)))

	body, decodeErr := decodeBody(raw)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		serviceErr := &ServiceError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
		log.Warn("shortening service rejected request", zap.String("message", serviceErr.Message))
		return nil, serviceErr
	}

	if decodeErr != nil {
		log.Warn("malformed shorten response", zap.Error(decodeErr))
		return nil, &TransportError{Op: "decode response", Err: decodeErr}
	}

	if msg := stringValue(body, FieldError); msg != "" {
		log.Warn("shortening service reported error", zap.String("message", msg))
		return nil, &ServiceError{StatusCode: resp.StatusCode, Message: msg}
	}

	shortURL, err := NormalizeShortURL(c.opts.Contract, c.opts.ShortBaseURL, body)
	if err != nil {
		if msg := stringValue(body, FieldMessage); msg != "" {
			log.Warn("shortening service reported error", zap.String("message", msg))
			return nil, &ServiceError{StatusCode: resp.StatusCode, Message: msg}
		}
		log.Warn("unusable shorten response", zap.Error(err))
		return nil, &TransportError{Op: "normalize response", Err: err}
	}

	log.Info("url shortened", zap.String("short_url", shortURL))

	return &Result{
		ShortURL:   shortURL,
		RequestID:  requestID,
		StatusCode: resp.StatusCode,
	}, nil
}

// Validate reports whether NewClient would accept o
func (o Options) Validate() error {
	o, err := o.withDefaults()
	if err != nil {
		return err
	}
	_, err = o.endpoint()
	return err
}

func (o Options) endpoint() (string, error) {
	endpoint, err := url.JoinPath(o.BaseURL, o.EndpointPath)
	if err != nil {
		return "", fmt.Errorf("build endpoint url: %w", err)
	}
	return endpoint, nil
}

// withDefaults validates options and fills in contract-derived defaults
func (o Options) withDefaults() (Options, error) {
	o.BaseURL = strings.TrimSpace(o.BaseURL)
	if !isAbsoluteHTTPURL(o.BaseURL) {
		return o, fmt.Errorf("%w: %q", ErrInvalidBaseURL, o.BaseURL)
	}

	if o.Contract == "" {
		o.Contract = ContractID
	}
	if _, err := ParseContract(o.Contract.String()); err != nil {
		return o, err
	}

	if o.EndpointPath == "" {
		o.EndpointPath = DefaultEndpointPath
	}
	if o.ShortBaseURL == "" {
		o.ShortBaseURL = o.BaseURL
	}
	if o.RequestField == "" {
		o.RequestField = o.Contract.DefaultRequestField()
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}

	return o, nil
}

// decodeBody parses a JSON object body
func decodeBody(raw []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, errors.New("empty response body")
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("response is not a json object: %w", err)
	}
	return body, nil
}

// errorMessage picks the server-provided error text, message first
func errorMessage(body map[string]any) string {
	if msg := stringValue(body, FieldMessage); msg != "" {
		return msg
	}
	return stringValue(body, FieldError)
}

func stringValue(body map[string]any, key string) string {
	s, ok := body[key].(string)
	if !ok || strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}

// generateRequestID generates a time-ordered request id
func generateRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
