package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/circlerefresh/internal/config"
)

// SettingsDialog edits the header overrides stored in the preferences
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect  *widget.Select
	rotateStepEntry *widget.Entry
	thresholdEntry  *widget.Entry
	textEntry       *widget.Entry
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	// Language selection, sorted for a stable order
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.rotateStepEntry = widget.NewEntry()
	sd.rotateStepEntry.SetPlaceHolder(strconv.Itoa(config.MinRotateStep) + "-" + strconv.Itoa(config.MaxRotateStep))

	sd.thresholdEntry = widget.NewEntry()
	sd.thresholdEntry.SetPlaceHolder(strconv.Itoa(config.DefaultRefreshThreshold))

	sd.textEntry = widget.NewEntry()
	sd.textEntry.SetPlaceHolder(t(KeyRefreshing))

	form := container.NewVBox(
		widget.NewLabel(t(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(t(KeyRotateStep)+":"),
		sd.rotateStepEntry,

		widget.NewLabel(t(KeyRefreshThreshold)+":"),
		sd.thresholdEntry,

		widget.NewLabel(t(KeyRefreshText)+":"),
		sd.textEntry,

		widget.NewSeparator(),
		widget.NewLabel(t(KeyRestartHint)),
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogW, SettingsDialogH))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.rotateStepEntry.SetText(formatFloat(sd.settings.GetRotateStep()))
	sd.thresholdEntry.SetText(formatFloat(sd.settings.GetRefreshThreshold()))
	sd.textEntry.SetText(sd.settings.GetRefreshText())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// save writes the entries to the settings; unparsable numbers are skipped
func (sd *SettingsDialog) save() {
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if step, err := strconv.ParseFloat(sd.rotateStepEntry.Text, 64); err == nil {
		sd.settings.SetRotateStep(step)
	}

	if threshold, err := strconv.ParseFloat(sd.thresholdEntry.Text, 64); err == nil {
		sd.settings.SetRefreshThreshold(threshold)
	}

	sd.settings.SetRefreshText(sd.textEntry.Text)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
