package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconStop     = "⏹"
	IconReset    = "↺"
)

// Frame ticker
const (
	// TickerCycle is the length of one fyne.Animation cycle; the ticker repeats
	// forever until the header goes idle, so only the per-frame callback matters.
	TickerCycle = time.Second
)

// Demo host behavior
const (
	DemoRefreshDuration = 2 * time.Second
	DemoRowCount        = 12
)

// Layout sizing
const (
	MinHeaderWidth     float32 = 120
	SettingsDialogW    float32 = 420
	SettingsDialogH    float32 = 360
	MinTouchTargetSize float32 = 44
)
