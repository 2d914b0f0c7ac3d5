package form

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/url-shortener/internal/model"
	"github.com/ytget/url-shortener/internal/shorten"
)

var (
	// ErrSubmissionInFlight is returned when Submit is called while a request is outstanding
	ErrSubmissionInFlight = errors.New("submission already in flight")

	// ErrNothingToOpen is returned by Open when there is no short URL yet
	ErrNothingToOpen = errors.New("no shortened url to open")
)

// Clipboard receives copied text. fyne.Clipboard satisfies it.
type Clipboard interface {
	SetContent(content string)
}

// URLOpener opens a URL in the browser. fyne.App satisfies it.
type URLOpener interface {
	OpenURL(u *url.URL) error
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTimeout bounds every submission. Zero keeps the shortener's own timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Controller) {
		c.timeout = timeout
	}
}

// Controller drives the submission form: it owns the form state and runs
// at most one shorten request at a time.
type Controller struct {
	shortener shorten.Shortener
	logger    *zap.Logger
	timeout   time.Duration
	now       func() time.Time

	mu       sync.Mutex
	state    model.FormState
	onUpdate func(model.FormState) // callback for UI updates
}

// NewController creates a controller in the Idle state
func NewController(shortener shorten.Shortener, opts ...Option) *Controller {
	c := &Controller{
		shortener: shortener,
		logger:    zap.NewNop(),
		now:       time.Now,
		state:     model.NewFormState(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// SetUpdateCallback sets the callback invoked after every state change
func (c *Controller) SetUpdateCallback(callback func(model.FormState)) {
	c.mu.Lock()
	c.onUpdate = callback
	c.mu.Unlock()
}

// State returns the current form state
func (c *Controller) State() model.FormState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetInput records the URL typed by the user
func (c *Controller) SetInput(input string) {
	c.update(func(s *model.FormState) {
		s.InputURL = input
	})
}

// Submit shortens the current input and blocks until the request settles.
// Validation and request errors are recorded in the form state and also
// returned; ErrSubmissionInFlight leaves the state untouched.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state.Loading {
		c.mu.Unlock()
		c.logger.Debug("submit ignored, request in flight")
		return ErrSubmissionInFlight
	}

	longURL := c.state.TrimmedInput()
	if longURL == "" {
		c.state.State = model.StateIdle
		c.state.ErrorMessage = shorten.UserMessage(shorten.ErrEmptyURL)
		c.state.ErrorKind = model.ErrorKindValidation
		snapshot, onUpdate := c.state, c.onUpdate
		c.mu.Unlock()

		c.logger.Debug("submit rejected, empty input")
		notify(onUpdate, snapshot)
		return shorten.ErrEmptyURL
	}

	c.state.ErrorMessage = ""
	c.state.ErrorKind = model.ErrorKindNone
	c.state.Loading = true
	c.state.State = model.StateSubmitting
	c.state.RequestID = ""
	c.state.StartedAt = c.now()
	c.state.FinishedAt = time.Time{}
	snapshot, onUpdate := c.state, c.onUpdate
	c.mu.Unlock()

	notify(onUpdate, snapshot)

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	result, err := c.shortener.Shorten(ctx, longURL)
	if err == nil && result == nil {
		err = &shorten.TransportError{Op: "shorten", Err: errors.New("empty result")}
	}

	c.mu.Lock()
	c.state.Loading = false
	c.state.FinishedAt = c.now()
	if err != nil {
		c.state.State = model.StateFailed
		c.state.ErrorMessage = shorten.UserMessage(err)
		c.state.ErrorKind = shorten.Kind(err)
	} else {
		c.state.State = model.StateSuccess
		c.state.ShortenedURL = result.ShortURL
		c.state.RequestID = result.RequestID
		c.state.ErrorMessage = ""
		c.state.ErrorKind = model.ErrorKindNone
	}
	snapshot, onUpdate = c.state, c.onUpdate
	c.mu.Unlock()

	if err != nil {
		c.logger.Warn("submission failed",
			zap.Stringer("kind", snapshot.ErrorKind),
			zap.Duration("elapsed", snapshot.Elapsed()),
			zap.Error(err),
		)
	} else {
		c.logger.Info("submission succeeded",
			zap.String("short_url", snapshot.ShortenedURL),
			zap.String("request_id", snapshot.RequestID),
			zap.Duration("elapsed", snapshot.Elapsed()),
		)
	}

	notify(onUpdate, snapshot)
	return err
}

// Copy writes the current short URL to the clipboard verbatim.
// It does nothing and returns false when there is no short URL.
func (c *Controller) Copy(clipboard Clipboard) bool {
	shortURL := c.State().ShortenedURL
	if shortURL == "" || clipboard == nil {
		return false
	}
	clipboard.SetContent(shortURL)
	return true
}

// Open opens the current short URL with opener
func (c *Controller) Open(opener URLOpener) error {
	shortURL := c.State().ShortenedURL
	if shortURL == "" {
		return ErrNothingToOpen
	}

	u, err := url.Parse(shortURL)
	if err != nil {
		return fmt.Errorf("parse short url: %w", err)
	}
	if err := opener.OpenURL(u); err != nil {
		return fmt.Errorf("open short url: %w", err)
	}
	return nil
}

// update applies fn under the lock and notifies the callback
func (c *Controller) update(fn func(*model.FormState)) {
	c.mu.Lock()
	fn(&c.state)
	snapshot, onUpdate := c.state, c.onUpdate
	c.mu.Unlock()

	notify(onUpdate, snapshot)
}

func notify(onUpdate func(model.FormState), state model.FormState) {
	if onUpdate != nil {
		onUpdate(state)
	}
}
