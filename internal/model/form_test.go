package model

import (
	"testing"
	"time"
)

func TestNewFormState(t *testing.T) {
	fs := NewFormState()

	if fs.State != StateIdle {
		t.Errorf("Expected state to be Idle, got %s", fs.State)
	}
	if fs.Loading {
		t.Error("Expected Loading to be false")
	}
	if fs.HasError() || fs.HasShortURL() {
		t.Error("Expected no error and no short URL in initial state")
	}
}

func TestFormState_TrimmedInput(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"   ", ""},
		{"\t\n", ""},
		{" https://example.com ", "https://example.com"},
	}

	for _, test := range tests {
		fs := FormState{InputURL: test.input}
		if got := fs.TrimmedInput(); got != test.expected {
			t.Errorf("TrimmedInput() with input=%q = %q, expected %q", test.input, got, test.expected)
		}
	}
}

func TestFormState_DisplayShortURL(t *testing.T) {
	placeholder := "Your shortened URL will appear here"

	fs := FormState{}
	if got := fs.DisplayShortURL(placeholder); got != placeholder {
		t.Errorf("DisplayShortURL() = %q, expected placeholder", got)
	}

	fs.ShortenedURL = "https://short.ly/abc123"
	if got := fs.DisplayShortURL(placeholder); got != "https://short.ly/abc123" {
		t.Errorf("DisplayShortURL() = %q, expected short URL", got)
	}
}

func TestFormState_Elapsed(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	fs := FormState{StartedAt: start}
	if fs.Elapsed() != 0 {
		t.Errorf("Expected zero elapsed for unsettled request, got %v", fs.Elapsed())
	}

	fs.FinishedAt = start.Add(1500 * time.Millisecond)
	if fs.Elapsed() != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s elapsed, got %v", fs.Elapsed())
	}
}
