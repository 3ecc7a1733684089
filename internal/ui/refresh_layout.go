package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/ytget/circlerefresh/internal/model"
)

// RefreshLayout stacks a LoadingHeader above content and turns vertical drags
// into header pulls. Every refresh cycle gets an ID; the host passes it back to
// Finish when its work is done.
type RefreshLayout struct {
	widget.BaseWidget

	header  *LoadingHeader
	content fyne.CanvasObject
	tracker *PullTracker

	cycleID string

	// OnRefresh is called on the UI thread when a refresh cycle starts
	OnRefresh func(cycleID string)
	// OnRefreshCompleted is called after the header has settled
	OnRefreshCompleted func(cycleID string)
}

// NewRefreshLayout wraps content with a pull-to-refresh header
func NewRefreshLayout(header *LoadingHeader, content fyne.CanvasObject) *RefreshLayout {
	rl := &RefreshLayout{
		header:  header,
		content: content,
	}
	rl.tracker = NewPullTracker(rl.onPull, rl.onRelease)
	header.SetOnRefreshStarted(rl.onStarted)
	header.SetOnRefreshCompleted(rl.onCompleted)
	rl.ExtendBaseWidget(rl)
	return rl
}

// Header returns the wrapped header
func (rl *RefreshLayout) Header() *LoadingHeader {
	return rl.header
}

// CycleID returns the ID of the running refresh cycle, empty when idle
func (rl *RefreshLayout) CycleID() string {
	return rl.cycleID
}

// Finish ends the refresh cycle with the given ID. It is safe to call from
// any goroutine; stale IDs are ignored.
func (rl *RefreshLayout) Finish(cycleID string) {
	fyne.Do(func() {
		rl.finish(cycleID)
	})
}

func (rl *RefreshLayout) finish(cycleID string) {
	if cycleID == "" || cycleID != rl.cycleID {
		log.Printf("ui: ignoring finish for stale refresh cycle %q", cycleID)
		return
	}
	rl.header.FinishRefreshing()
}

// Dragged handles desktop drag events
func (rl *RefreshLayout) Dragged(event *fyne.DragEvent) {
	rl.tracker.MoveBy(event.Dragged.DY)
}

// DragEnd handles the end of a desktop drag
func (rl *RefreshLayout) DragEnd() {
	rl.tracker.End()
}

func (rl *RefreshLayout) onPull(distance float32) {
	rl.header.StartDrag(float64(distance))
}

// onRelease springs the header back unless a refresh is running; a refreshing
// header keeps spinning until Finish.
func (rl *RefreshLayout) onRelease() {
	if rl.header.Status() == model.StatusRefreshing {
		return
	}
	rl.header.ReleaseDrag()
}

func (rl *RefreshLayout) onStarted() {
	rl.cycleID = uuid.NewString()
	log.Printf("ui: refresh cycle %s started", rl.cycleID)
	if rl.OnRefresh != nil {
		rl.OnRefresh(rl.cycleID)
	}
}

func (rl *RefreshLayout) onCompleted() {
	id := rl.cycleID
	rl.cycleID = ""
	if id != "" {
		log.Printf("ui: refresh cycle %s completed", id)
	}
	if rl.OnRefreshCompleted != nil {
		rl.OnRefreshCompleted(id)
	}
}

// CreateRenderer creates the widget renderer
func (rl *RefreshLayout) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(rl.header, nil, nil, nil, rl.content))
}
