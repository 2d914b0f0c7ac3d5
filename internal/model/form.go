package model

import (
	"strings"
	"time"
)

// FormState is a snapshot of the submission form
type FormState struct {
	InputURL     string          // URL as typed by the user
	ShortenedURL string          // short URL from the last successful submit
	ErrorMessage string          // message shown to the user, empty if none
	ErrorKind    ErrorKind       // category of ErrorMessage
	Loading      bool            // true strictly while a request is in flight
	State        SubmissionState // current state machine state
	RequestID    string          // id of the last request sent, if any
	StartedAt    time.Time       // when the last request started
	FinishedAt   time.Time       // when the last request settled
}

// NewFormState returns the initial form state
func NewFormState() FormState {
	return FormState{State: StateIdle}
}

// HasShortURL reports whether there is a short URL to copy or open
func (fs FormState) HasShortURL() bool {
	return fs.ShortenedURL != ""
}

// HasError reports whether an error message should be displayed
func (fs FormState) HasError() bool {
	return fs.ErrorMessage != ""
}

// TrimmedInput returns the input URL without surrounding whitespace
func (fs FormState) TrimmedInput() string {
	return strings.TrimSpace(fs.InputURL)
}

// DisplayShortURL returns the short URL, or placeholder when there is none
func (fs FormState) DisplayShortURL(placeholder string) string {
	if fs.ShortenedURL == "" {
		return placeholder
	}
	return fs.ShortenedURL
}

// Elapsed returns how long the last settled request took, zero if unknown
func (fs FormState) Elapsed() time.Duration {
	if fs.StartedAt.IsZero() || fs.FinishedAt.IsZero() {
		return 0
	}
	return fs.FinishedAt.Sub(fs.StartedAt)
}
