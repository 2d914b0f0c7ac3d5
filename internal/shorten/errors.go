package shorten

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ytget/url-shortener/internal/model"
)

// User-facing fallback messages
const (
	MsgEnterURL           = "Please enter a URL"
	MsgShortenFailed      = "Failed to shorten URL"
	MsgShortenFailedRetry = "Failed to shorten URL. Please try again."
)

// ValidationError is an input problem detected before any network call
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ErrEmptyURL is returned for empty or whitespace-only input
var ErrEmptyURL = &ValidationError{Message: MsgEnterURL}

// ServiceError is a well-formed error answer from the backend
type ServiceError struct {
	StatusCode int
	Message    string // server-provided text, empty if none
}

func (e *ServiceError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("shortening service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("shortening service returned status %d: %s", e.StatusCode, e.Message)
}

// TransportError covers network failures, timeouts and unusable responses
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Kind maps an error returned by a Shortener to its category
func Kind(err error) model.ErrorKind {
	if err == nil {
		return model.ErrorKindNone
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return model.ErrorKindValidation
	}

	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return model.ErrorKindService
	}

	return model.ErrorKindTransport
}

// UserMessage returns the most specific text to show for err
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}

	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		if strings.TrimSpace(serviceErr.Message) != "" {
			return serviceErr.Message
		}
		return MsgShortenFailed
	}

	return MsgShortenFailedRetry
}
