package platform

// Package platform contains OS integration used when the toolkit cannot do
// the job itself: opening a URL in the system browser.
