package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/circlerefresh/internal/config"
)

// CompactTheme follows the refresh header: the header background is the
// primary color and text sizes are derived from the header label size.
type CompactTheme struct {
	accent   color.Color
	onAccent color.Color
	textSize float32
}

// NewCompactTheme creates a theme from the header options
func NewCompactTheme(opts config.Options) fyne.Theme {
	opts = opts.Normalize()
	t := &CompactTheme{textSize: float32(opts.TextSize) + 1}
	if c, err := config.ParseColor(opts.BackgroundColor); err == nil {
		t.accent = c
	}
	if c, err := config.ParseColor(opts.TextColor); err == nil {
		t.onAccent = c
	}
	return t
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus, theme.ColorNameHyperlink:
		if t.accent != nil {
			return t.accent
		}
	case theme.ColorNameForegroundOnPrimary:
		if t.onAccent != nil {
			return t.onAccent
		}
	}
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size scales text around the header label and tightens spacing to the
// spinner radius
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return t.textSize
	case theme.SizeNameHeadingText:
		return t.textSize + 3
	case theme.SizeNameSubHeadingText:
		return t.textSize + 1
	case theme.SizeNameCaptionText:
		return t.textSize - 2
	case theme.SizeNamePadding, theme.SizeNameInputRadius:
		return config.CircleRadius - 2
	case theme.SizeNameInnerPadding:
		return config.CircleRadius + 1
	}
	return theme.DefaultTheme().Size(name)
}
