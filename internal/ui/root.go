package ui

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/url-shortener/internal/config"
	"github.com/ytget/url-shortener/internal/form"
	"github.com/ytget/url-shortener/internal/model"
	"github.com/ytget/url-shortener/internal/platform"
	"github.com/ytget/url-shortener/internal/shorten"
)

// BackendInfo describes the deployment the form talks to, shown in settings
type BackendInfo struct {
	Endpoint string
	Contract string
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	controller   *form.Controller
	settings     *config.Settings
	localization *Localization
	backend      BackendInfo
	logger       *zap.Logger

	titleLabel    *widget.Label
	subtitleLabel *widget.Label
	urlLabel      *widget.Label
	urlEntry      *widget.Entry
	errorLabel    *widget.Label
	submitBtn     *widget.Button
	resultCaption *widget.Label
	resultEntry   *widget.Entry
	copyBtn       *widget.Button
	openBtn       *widget.Button

	// runAsync runs a submission off the UI goroutine; tests make it synchronous
	runAsync func(func())
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, controller *form.Controller, backend BackendInfo, logger *zap.Logger) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		controller:   controller,
		settings:     settings,
		localization: localization,
		backend:      backend,
		logger:       logger,
		runAsync: func(fn func()) {
			go fn()
		},
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	// Render every controller transition
	ui.controller.SetUpdateCallback(ui.onStateUpdate)
	ui.render(ui.controller.State())

	logger.Debug("root ui initialized",
		zap.String("endpoint", backend.Endpoint),
		zap.String("contract", backend.Contract),
	)
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.titleLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	ui.titleLabel.SizeName = theme.SizeNameHeadingText
	ui.subtitleLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})

	ui.urlLabel = widget.NewLabel("")
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.OnChanged = ui.controller.SetInput
	// Enter in the URL field submits like the button does
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onSubmitClick()
	}

	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Importance = widget.DangerImportance
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	ui.errorLabel.Hide()

	ui.submitBtn = widget.NewButton("", ui.onSubmitClick)
	ui.submitBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.resultCaption = widget.NewLabel("")
	ui.resultEntry = widget.NewEntry()
	ui.resultEntry.Disable()

	ui.copyBtn = widget.NewButton("", ui.onCopyClick)
	ui.copyBtn.Importance = widget.HighImportance
	ui.openBtn = widget.NewButton("", ui.onOpenClick)

	formPanel := container.NewVBox(
		ui.urlLabel,
		ui.urlEntry,
		ui.errorLabel,
		ui.submitBtn,
	)

	resultPanel := container.NewVBox(
		ui.resultCaption,
		container.NewBorder(nil, nil, nil, container.NewHBox(ui.copyBtn, ui.openBtn), ui.resultEntry),
	)

	header := container.NewBorder(nil, nil, nil, settingsBtn, container.NewVBox(ui.titleLabel, ui.subtitleLabel))

	card := container.NewVBox(
		header,
		widget.NewSeparator(),
		formPanel,
		widget.NewSeparator(),
		resultPanel,
	)

	// Keep the card narrow and centered like a form
	sizer := canvas.NewRectangle(color.Transparent)
	sizer.SetMinSize(fyne.NewSize(FormMinWidth, 0))
	content := container.NewCenter(container.NewStack(sizer, container.NewPadded(card)))

	ui.refreshUITexts()
	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.titleLabel.SetText(ui.localization.GetText(KeyAppTitle))
	ui.subtitleLabel.SetText(ui.localization.GetText(KeySubtitle))
	ui.urlLabel.SetText(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyURLPlaceholder))
	ui.resultCaption.SetText(ui.localization.GetText(KeyYourShortURL))
	ui.resultEntry.SetPlaceHolder(ui.localization.GetText(KeyShortURLPlaceholder))
	ui.copyBtn.SetText(IconCopy + " " + ui.localization.GetText(KeyCopy))
	ui.openBtn.SetText(IconOpen + " " + ui.localization.GetText(KeyOpen))

	if ui.controller != nil {
		ui.render(ui.controller.State())
	}
}

// onSubmitClick handles the submit button and Enter in the URL field
func (ui *RootUI) onSubmitClick() {
	// The entry may hold text the controller has not seen (e.g. set programmatically)
	ui.controller.SetInput(ui.urlEntry.Text)

	ui.runAsync(func() {
		err := ui.controller.Submit(context.Background())
		switch {
		case errors.Is(err, form.ErrSubmissionInFlight):
			ui.logger.Debug("submit ignored while loading")
		case err == nil && ui.settings.GetCopyOnSuccess():
			fyne.Do(ui.onCopyClick)
		}
	})
}

// onStateUpdate receives controller transitions from any goroutine
func (ui *RootUI) onStateUpdate(state model.FormState) {
	fyne.Do(func() {
		ui.render(state)
	})
}

// render applies a form state snapshot to the widgets
func (ui *RootUI) render(state model.FormState) {
	if state.Loading {
		ui.submitBtn.SetText(ui.localization.GetText(KeyShortening))
		ui.submitBtn.Disable()
	} else {
		ui.submitBtn.SetText(ui.localization.GetText(KeyShorten))
		ui.submitBtn.Enable()
	}

	if msg := ui.errorText(state); msg != "" {
		ui.errorLabel.SetText(msg)
		ui.errorLabel.Show()
	} else {
		ui.errorLabel.SetText("")
		ui.errorLabel.Hide()
	}

	// The entry placeholder covers the empty case
	ui.resultEntry.SetText(state.DisplayShortURL(""))
	if state.HasShortURL() {
		ui.copyBtn.Enable()
		ui.openBtn.Enable()
	} else {
		ui.copyBtn.Disable()
		ui.openBtn.Disable()
	}
}

// errorText localizes client-side messages; server-provided text is shown verbatim
func (ui *RootUI) errorText(state model.FormState) string {
	if !state.HasError() {
		return ""
	}

	switch state.ErrorKind {
	case model.ErrorKindNone:
		return state.ErrorMessage
	case model.ErrorKindValidation:
		return ui.localization.GetText(KeyPleaseEnterURL)
	case model.ErrorKindTransport:
		return ui.localization.GetText(KeyShortenFailedRetry)
	case model.ErrorKindService:
		if state.ErrorMessage == shorten.MsgShortenFailed {
			return ui.localization.GetText(KeyShortenFailed)
		}
		return state.ErrorMessage
	default:
		return state.ErrorMessage
	}
}

// onCopyClick copies the short URL to the clipboard
func (ui *RootUI) onCopyClick() {
	if ui.controller.Copy(ui.app.Clipboard()) {
		ui.showPopUp(ui.localization.GetText(KeyCopied))
	}
}

// onOpenClick opens the short URL in the browser
func (ui *RootUI) onOpenClick() {
	err := ui.controller.Open(ui.app)
	if err == nil || errors.Is(err, form.ErrNothingToOpen) {
		return
	}

	ui.logger.Warn("toolkit could not open url, trying os launcher", zap.Error(err))
	if err := platform.OpenURL(ui.controller.State().ShortenedURL); err != nil {
		ui.logger.Error("opening short url failed", zap.Error(err))
		ui.showPopUp(fmt.Sprintf("%s: %v", ui.localization.GetText(KeyErrorOpeningURL), err))
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.backend, func() {
		ui.onLanguageChange(ui.settings.GetLanguage())
		ui.showPopUp(ui.localization.GetText(KeySettingsSaved))
	})
}

// showPopUp shows a short message over the window and hides it after a while
func (ui *RootUI) showPopUp(message string) {
	popUp := widget.NewPopUp(widget.NewLabel(message), ui.window.Canvas())
	popUp.Show()

	time.AfterFunc(PopUpAutoHide, func() {
		fyne.Do(popUp.Hide)
	})
}
