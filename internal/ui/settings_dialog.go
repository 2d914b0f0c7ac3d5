package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/url-shortener/internal/config"
)

// SettingsDialog represents the preferences dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	backend      BackendInfo
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect *widget.Select
	copyCheck      *widget.Check

	// display name -> language code
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, backend BackendInfo, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		backend:       backend,
		window:        window,
		onSaved:       onSaved,
		languageCodes: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog builds the dialog and shows it with current preferences
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, backend BackendInfo, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(window, settings, localization, backend, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	labels := make([]string, 0, len(sd.settings.GetLanguageOptions()))
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		labels = append(labels, name)
	}
	sort.Strings(labels)
	sd.languageSelect = widget.NewSelect(labels, nil)

	sd.copyCheck = widget.NewCheck(sd.localization.GetText(KeyCopyOnSuccess), nil)

	endpoint := widget.NewLabel(sd.backend.Endpoint)
	endpoint.Truncation = fyne.TextTruncateEllipsis

	content := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyLanguage)),
		sd.languageSelect,
		sd.copyCheck,
		widget.NewSeparator(),
		widget.NewForm(
			widget.NewFormItem(sd.localization.GetText(KeyEndpoint), endpoint),
			widget.NewFormItem(sd.localization.GetText(KeyContract), widget.NewLabel(sd.backend.Contract)),
		),
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		content,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogW, SettingsDialogH))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	current := sd.settings.GetLanguage()
	if name, ok := sd.settings.GetLanguageOptions()[current]; ok {
		sd.languageSelect.SetSelected(name)
	}
	sd.copyCheck.SetChecked(sd.settings.GetCopyOnSuccess())
}

// onSave persists the selection; Cancel leaves preferences untouched
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
	sd.settings.SetCopyOnSuccess(sd.copyCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
