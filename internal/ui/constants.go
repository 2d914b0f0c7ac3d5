package ui

import "time"

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconCopy     = "📋"
	IconOpen     = "↗"
)

// Layout sizing
const (
	FormMinWidth    float32 = 420
	SettingsDialogW float32 = 460
	SettingsDialogH float32 = 320
)

// Pop-up behavior
const (
	PopUpAutoHide = 1500 * time.Millisecond
)
