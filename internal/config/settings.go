package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage      = "app_language"
	KeyCopyOnSuccess = "copy_on_success"
)

// Default values
const (
	DefaultLanguage      = "system"
	DefaultCopyOnSuccess = false
)

// Settings manages user preferences of the window
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetCopyOnSuccess returns whether a fresh short URL is copied automatically
func (s *Settings) GetCopyOnSuccess() bool {
	return s.app.Preferences().BoolWithFallback(KeyCopyOnSuccess, DefaultCopyOnSuccess)
}

// SetCopyOnSuccess sets whether a fresh short URL is copied automatically
func (s *Settings) SetCopyOnSuccess(enabled bool) {
	s.app.Preferences().SetBool(KeyCopyOnSuccess, enabled)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
