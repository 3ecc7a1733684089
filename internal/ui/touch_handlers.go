package ui

import (
	"fyne.io/fyne/v2/driver/mobile"
)

// TouchDown starts a pull gesture on mobile
func (rl *RefreshLayout) TouchDown(event *mobile.TouchEvent) {
	rl.tracker.Begin(event.Position)
}

// TouchUp releases the pull on mobile. A touch that never went down is ignored.
func (rl *RefreshLayout) TouchUp(event *mobile.TouchEvent) {
	if !rl.tracker.Active() {
		return
	}
	rl.tracker.MoveTo(event.Position)
	rl.tracker.End()
}

// TouchCancel releases the pull when the system takes the touch away
func (rl *RefreshLayout) TouchCancel(event *mobile.TouchEvent) {
	rl.tracker.End()
}
