package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeySubtitle            = "subtitle"
	KeyEnterURL            = "enter_url"
	KeyURLPlaceholder      = "url_placeholder"
	KeyShorten             = "shorten"
	KeyShortening          = "shortening"
	KeyYourShortURL        = "your_short_url"
	KeyShortURLPlaceholder = "short_url_placeholder"
	KeyCopy                = "copy"
	KeyOpen                = "open"
	KeyCopied              = "copied"
	KeyPleaseEnterURL      = "please_enter_url"
	KeyShortenFailed       = "shorten_failed"
	KeyShortenFailedRetry  = "shorten_failed_retry"
	KeyErrorOpeningURL     = "error_opening_url"
	KeySettings            = "settings"
	KeyFile                = "file"
	KeyLanguage            = "language"
	KeySave                = "save"
	KeyCancel              = "cancel"
	KeySettingsSaved       = "settings_saved"
	KeyCopyOnSuccess       = "copy_on_success"
	KeyEndpoint            = "endpoint"
	KeyContract            = "contract"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// system locale detection is not wired, English is used
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:            "URL Shortener",
		KeySubtitle:            "Shorten your long URLs in seconds",
		KeyEnterURL:            "Enter your URL",
		KeyURLPlaceholder:      "https://example.com",
		KeyShorten:             "Shorten URL",
		KeyShortening:          "Shortening...",
		KeyYourShortURL:        "Your shortened URL:",
		KeyShortURLPlaceholder: "Your shortened URL will appear here",
		KeyCopy:                "Copy",
		KeyOpen:                "Open",
		KeyCopied:              "Copied to clipboard",
		KeyPleaseEnterURL:      "Please enter a URL",
		KeyShortenFailed:       "Failed to shorten URL",
		KeyShortenFailedRetry:  "Failed to shorten URL. Please try again.",
		KeyErrorOpeningURL:     "Could not open the shortened URL",
		KeySettings:            "Settings",
		KeyFile:                "File",
		KeyLanguage:            "Language",
		KeySave:                "Save",
		KeyCancel:              "Cancel",
		KeySettingsSaved:       "Settings saved",
		KeyCopyOnSuccess:       "Copy the short URL automatically",
		KeyEndpoint:            "Endpoint",
		KeyContract:            "Backend contract",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:            "Сокращатель ссылок",
		KeySubtitle:            "Сократите длинную ссылку за секунды",
		KeyEnterURL:            "Введите URL",
		KeyURLPlaceholder:      "https://example.com",
		KeyShorten:             "Сократить",
		KeyShortening:          "Сокращаем...",
		KeyYourShortURL:        "Ваша короткая ссылка:",
		KeyShortURLPlaceholder: "Здесь появится короткая ссылка",
		KeyCopy:                "Копировать",
		KeyOpen:                "Открыть",
		KeyCopied:              "Скопировано в буфер обмена",
		KeyPleaseEnterURL:      "Пожалуйста, введите URL",
		KeyShortenFailed:       "Не удалось сократить URL",
		KeyShortenFailedRetry:  "Не удалось сократить URL. Попробуйте ещё раз.",
		KeyErrorOpeningURL:     "Не удалось открыть короткую ссылку",
		KeySettings:            "Настройки",
		KeyFile:                "Файл",
		KeyLanguage:            "Язык",
		KeySave:                "Сохранить",
		KeyCancel:              "Отмена",
		KeySettingsSaved:       "Настройки сохранены",
		KeyCopyOnSuccess:       "Копировать ссылку автоматически",
		KeyEndpoint:            "Адрес сервиса",
		KeyContract:            "Контракт бэкенда",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:            "Encurtador de URL",
		KeySubtitle:            "Encurte suas URLs longas em segundos",
		KeyEnterURL:            "Digite sua URL",
		KeyURLPlaceholder:      "https://example.com",
		KeyShorten:             "Encurtar URL",
		KeyShortening:          "Encurtando...",
		KeyYourShortURL:        "Sua URL encurtada:",
		KeyShortURLPlaceholder: "Sua URL encurtada aparecerá aqui",
		KeyCopy:                "Copiar",
		KeyOpen:                "Abrir",
		KeyCopied:              "Copiado para a área de transferência",
		KeyPleaseEnterURL:      "Por favor, digite uma URL",
		KeyShortenFailed:       "Falha ao encurtar a URL",
		KeyShortenFailedRetry:  "Falha ao encurtar a URL. Tente novamente.",
		KeyErrorOpeningURL:     "Não foi possível abrir a URL encurtada",
		KeySettings:            "Configurações",
		KeyFile:                "Arquivo",
		KeyLanguage:            "Idioma",
		KeySave:                "Salvar",
		KeyCancel:              "Cancelar",
		KeySettingsSaved:       "Configurações salvas",
		KeyCopyOnSuccess:       "Copiar a URL curta automaticamente",
		KeyEndpoint:            "Endpoint",
		KeyContract:            "Contrato do backend",
	}
}
