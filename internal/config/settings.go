package config

import "fyne.io/fyne/v2"

// Settings keys for Fyne preferences
const (
	KeyLanguage  = "app_language"
	KeyLastLogin = "last_login"
)

// Default values
const (
	DefaultLanguage = "system"
)

// Settings manages per-user UI preferences stored via Fyne.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured UI language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the UI language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLastLogin returns the login prefilled into the auth form
func (s *Settings) GetLastLogin() string {
	return s.app.Preferences().String(KeyLastLogin)
}

// SetLastLogin remembers the login for prefill on the next launch
func (s *Settings) SetLastLogin(login string) {
	s.app.Preferences().SetString(KeyLastLogin, login)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
	}
}
