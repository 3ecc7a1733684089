package config

import (
	"math"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage         = "app_language"
	KeyRotateStep       = "rotate_step"
	KeyRefreshThreshold = "refresh_threshold"
	KeyRefreshText      = "refresh_text"
)

// Settings manages user overrides persisted in the app preferences
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

// SetLanguage sets the header language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetRotateStep returns the spinner rotation step in degrees per frame
func (s *Settings) GetRotateStep() float64 {
	value := s.app.Preferences().Float(KeyRotateStep)
	if !(value > 0) || math.IsInf(value, 0) {
		s.SetRotateStep(DefaultRotateStep)
		return DefaultRotateStep
	}
	return value
}

// SetRotateStep sets the rotation step, clamped to [MinRotateStep, MaxRotateStep].
// NaN resets it to the default.
func (s *Settings) SetRotateStep(step float64) {
	s.app.Preferences().SetFloat(KeyRotateStep, clampRotateStep(step))
}

// GetRefreshThreshold returns the label fade band height
func (s *Settings) GetRefreshThreshold() float64 {
	value := s.app.Preferences().Float(KeyRefreshThreshold)
	if !(value > 0) || math.IsInf(value, 0) {
		s.SetRefreshThreshold(DefaultRefreshThreshold)
		return DefaultRefreshThreshold
	}
	return value
}

// SetRefreshThreshold sets the fade band height; non-positive or non-finite
// values reset it
func (s *Settings) SetRefreshThreshold(threshold float64) {
	if !(threshold > 0) || math.IsInf(threshold, 0) {
		threshold = DefaultRefreshThreshold
	}
	s.app.Preferences().SetFloat(KeyRefreshThreshold, threshold)
}

// GetRefreshText returns the custom label, empty for the localized default
func (s *Settings) GetRefreshText() string {
	return s.app.Preferences().String(KeyRefreshText)
}

// SetRefreshText sets a custom label
func (s *Settings) SetRefreshText(text string) {
	s.app.Preferences().SetString(KeyRefreshText, text)
}

// Apply layers the stored overrides on top of opts
func (s *Settings) Apply(opts Options) Options {
	opts.Language = s.GetLanguage()
	opts.RotateStep = s.GetRotateStep()
	opts.RefreshThreshold = s.GetRefreshThreshold()
	if text := s.GetRefreshText(); text != "" {
		opts.Text = text
	}
	return opts.Normalize()
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
		"zh":     "中文",
	}
}
