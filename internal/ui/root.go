package ui

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/circlerefresh/internal/config"
)

// RootUI is the demo window: a refreshable list with controls for the header
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	options      config.Options

	layout      *RefreshLayout
	rows        []*widget.Label
	hintLabel   *widget.Label
	statusLabel *widget.Label

	refreshCount int
	refreshDelay time.Duration
}

// NewRootUI creates and initializes the main UI. opts are the file and
// environment options; preference overrides are layered on top.
func NewRootUI(window fyne.Window, app fyne.App, opts config.Options) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		options:      opts,
		refreshDelay: DemoRefreshDuration,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	return ui
}

// Layout returns the current refresh layout
func (ui *RootUI) Layout() *RefreshLayout {
	return ui.layout
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	header := NewLoadingHeader(ui.settings.Apply(ui.options), ui.localization)

	ui.rows = make([]*widget.Label, DemoRowCount)
	list := container.NewVBox()
	for i := range ui.rows {
		ui.rows[i] = widget.NewLabel(fmt.Sprintf("#%d", i+1))
		list.Add(ui.rows[i])
	}

	ui.layout = NewRefreshLayout(header, list)
	ui.layout.OnRefresh = ui.onRefresh
	ui.layout.OnRefreshCompleted = ui.onRefreshCompleted

	ui.hintLabel = widget.NewLabel(ui.localization.GetText(KeyPullHint))
	ui.statusLabel = widget.NewLabel("")
	ui.updateStatus()

	stopBtn := widget.NewButton(IconStop+" "+ui.localization.GetText(KeyStop), header.Stop)
	resetBtn := widget.NewButton(IconReset+" "+ui.localization.GetText(KeyReset), header.Reset)
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	toolbar := ui.mobile.CreateToolbar(settingsBtn, stopBtn, resetBtn)
	bottom := container.NewVBox(ui.hintLabel, ui.statusLabel)

	content := container.NewBorder(
		toolbar,   // top
		bottom,    // bottom
		nil,       // left
		nil,       // right
		ui.layout, // center
	)

	ui.window.SetContent(content)
	log.Printf("UI setup completed successfully")
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

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange switches language and rebuilds the header with the new label
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.setupUI()
}

// onRefresh simulates background work for one refresh cycle
func (ui *RootUI) onRefresh(cycleID string) {
	layout := ui.layout
	go func() {
		time.Sleep(ui.refreshDelay)
		stamp := time.Now().Format("15:04:05")
		fyne.Do(func() {
			for i, row := range ui.rows {
				row.SetText(fmt.Sprintf("#%d · %s %s", i+1, ui.localization.GetText(KeyRefreshDone), stamp))
			}
		})
		layout.Finish(cycleID)
	}()
}

// onRefreshCompleted counts finished refresh cycles
func (ui *RootUI) onRefreshCompleted(cycleID string) {
	if cycleID == "" {
		return
	}
	ui.refreshCount++
	ui.updateStatus()
}

func (ui *RootUI) updateStatus() {
	ui.statusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyRefreshCount), ui.refreshCount))
}

// onShowSettings shows the settings dialog; saving rebuilds the header
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.setupUI()
	}).Show()
}
