package model

// Package model defines the data shared by the form controller and the UI:
// submission states, error kinds and the form state snapshot. Snapshots are
// plain values so the UI can render them without locking.
