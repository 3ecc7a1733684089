package ui

import (
	"fyne.io/fyne/v2"
)

// PullTracker accumulates vertical pull distance over one gesture
type PullTracker struct {
	onPull    func(distance float32)
	onRelease func()

	// Touch tracking
	active   bool
	startPos fyne.Position
	distance float32
}

// NewPullTracker creates a tracker reporting the cumulative downward distance
func NewPullTracker(onPull func(float32), onRelease func()) *PullTracker {
	return &PullTracker{
		onPull:    onPull,
		onRelease: onRelease,
	}
}

// Begin starts a gesture at pos
func (pt *PullTracker) Begin(pos fyne.Position) {
	pt.active = true
	pt.startPos = pos
	pt.distance = 0
}

// MoveTo reports the absolute pointer position of an ongoing gesture
func (pt *PullTracker) MoveTo(pos fyne.Position) {
	if !pt.active {
		pt.Begin(pos)
		return
	}
	pt.set(pos.Y - pt.startPos.Y)
}

// MoveBy reports a relative movement of an ongoing gesture
func (pt *PullTracker) MoveBy(dy float32) {
	pt.active = true
	pt.set(pt.distance + dy)
}

// End finishes the gesture and fires the release callback once
func (pt *PullTracker) End() {
	if !pt.active {
		return
	}
	pt.active = false
	pt.distance = 0
	if pt.onRelease != nil {
		pt.onRelease()
	}
}

// Active reports whether a gesture is in progress
func (pt *PullTracker) Active() bool {
	return pt.active
}

// Distance returns the current cumulative pull, never negative
func (pt *PullTracker) Distance() float32 {
	return pt.distance
}

func (pt *PullTracker) set(d float32) {
	if d < 0 {
		d = 0
	}
	pt.distance = d
	if pt.onPull != nil {
		pt.onPull(d)
	}
}
