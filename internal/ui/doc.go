package ui

// Package ui contains the Fyne-based desktop user interface. It renders the
// submission form from form.Controller snapshots and forwards user actions
// (submit, copy, open, settings) back to it. All UI strings are localized
// via Localization.
