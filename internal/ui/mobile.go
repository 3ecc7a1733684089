package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// CreateToolbar lays out buttons in a row, or in an adaptive grid with
// larger touch targets on mobile
func (m *MobileUI) CreateToolbar(objects ...fyne.CanvasObject) *fyne.Container {
	if !m.IsMobileDevice() {
		return container.NewHBox(objects...)
	}
	return container.NewAdaptiveGrid(len(objects), objects...)
}
