package ui

import (
	"os"
	"strings"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyRefreshing       = "refreshing"
	KeyPullHint         = "pull_hint"
	KeyRefreshDone      = "refresh_done"
	KeyRefreshCount     = "refresh_count"
	KeyStop             = "stop"
	KeyReset            = "reset"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyRotateStep       = "rotate_step"
	KeyRefreshThreshold = "refresh_threshold"
	KeyRefreshText      = "refresh_text"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
	KeyRestartHint      = "restart_hint"
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

// SetLanguage sets the current language. "system" picks the language from
// the LANG environment variable and falls back to English.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = systemLanguage()
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

	// Final fallback - return key itself
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
		"zh": "中文",
	}
}

// systemLanguage maps LANG (e.g. "ru_RU.UTF-8") to a language code
func systemLanguage() string {
	lang := os.Getenv("LANG")
	if len(lang) < 2 {
		return "en"
	}
	return strings.ToLower(lang[:2])
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Circle Refresh",
		KeyRefreshing:       "Refreshing",
		KeyPullHint:         "Pull down to refresh",
		KeyRefreshDone:      "Updated",
		KeyRefreshCount:     "Refreshed %d times",
		KeyStop:             "Stop",
		KeyReset:            "Reset",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyRotateStep:       "Spinner Step (degrees)",
		KeyRefreshThreshold: "Fade Threshold",
		KeyRefreshText:      "Custom Label",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyRestartHint:      "Changes apply to the next header.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Круговое обновление",
		KeyRefreshing:       "Обновление",
		KeyPullHint:         "Потяните вниз, чтобы обновить",
		KeyRefreshDone:      "Обновлено",
		KeyRefreshCount:     "Обновлено раз: %d",
		KeyStop:             "Стоп",
		KeyReset:            "Сброс",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyRotateStep:       "Шаг вращения (градусы)",
		KeyRefreshThreshold: "Порог затухания",
		KeyRefreshText:      "Своя надпись",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyRestartHint:      "Изменения применятся к следующему заголовку.",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Circle Refresh",
		KeyRefreshing:       "Atualizando",
		KeyPullHint:         "Puxe para baixo para atualizar",
		KeyRefreshDone:      "Atualizado",
		KeyRefreshCount:     "Atualizado %d vezes",
		KeyStop:             "Parar",
		KeyReset:            "Redefinir",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeyRotateStep:       "Passo do Indicador (graus)",
		KeyRefreshThreshold: "Limite de Esmaecimento",
		KeyRefreshText:      "Rótulo Personalizado",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyRestartHint:      "As alterações valem para o próximo cabeçalho.",
	}

	// Chinese texts
	l.texts["zh"] = map[string]string{
		KeyAppTitle:         "圆形刷新",
		KeyRefreshing:       "正在刷新",
		KeyPullHint:         "下拉刷新",
		KeyRefreshDone:      "已更新",
		KeyRefreshCount:     "已刷新 %d 次",
		KeyStop:             "停止",
		KeyReset:            "重置",
		KeySettings:         "设置",
		KeyFile:             "文件",
		KeyLanguage:         "语言",
		KeyRotateStep:       "旋转步长（度）",
		KeyRefreshThreshold: "渐隐阈值",
		KeyRefreshText:      "自定义文字",
		KeySave:             "保存",
		KeyCancel:           "取消",
		KeySettingsSaved:    "设置已保存！",
		KeyRestartHint:      "更改将应用于下一个标题。",
	}
}
