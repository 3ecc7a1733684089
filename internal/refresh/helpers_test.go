package refresh

import (
	"image/color"
	"testing"
	"time"

	"github.com/ytget/circlerefresh/internal/model"
)

const (
	testWidth  = 320.0
	testHeight = 124.0
	frameStep  = 16 * time.Millisecond
)

type fixedMeasurer struct {
	w, h float64
}

func (m fixedMeasurer) MeasureText(string, float64) (float64, float64) {
	return m.w, m.h
}

func testMetrics() model.Metrics {
	return model.Metrics{
		BaseHeight:       84,
		TopOffset:        40,
		BottomOffset:     40,
		MarginBottom:     10,
		RefreshThreshold: 5,
	}
}

func testStyle() *model.Style {
	return &model.Style{
		Text:         "Refreshing",
		TextColor:    color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		TextSize:     12,
		Background:   color.NRGBA{R: 0x12, G: 0x95, B: 0xf4, A: 0xff},
		CircleRadius: 5,
		IconSize:     20,
		IconColor:    color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		IconStroke:   2,
		RotateStep:   15,
	}
}

// harness runs a driver against a manual clock.
type harness struct {
	t         *testing.T
	d         *Driver
	c         *Controller
	now       time.Time
	started   int
	completed int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		t:   t,
		d:   New(testMetrics(), testStyle(), fixedMeasurer{w: 60, h: 12}),
		now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	h.c = h.d.Controller()
	h.c.SetOnRefreshStarted(func() { h.started++ })
	h.c.SetOnRefreshCompleted(func() { h.completed++ })
	h.c.Layout(testWidth, testHeight)
	h.step()
	return h
}

func (h *harness) step() Frame {
	h.now = h.now.Add(frameStep)
	f, _ := h.d.Step(h.now)
	return f
}

func (h *harness) run(d time.Duration) {
	for end := h.now.Add(d); h.now.Before(end); {
		h.step()
	}
}

func (h *harness) refreshing() {
	h.t.Helper()
	h.c.StartDrag(testMetrics().TopOffset + testMetrics().BottomOffset)
	h.step()
	h.step()
	if got := h.c.State().Status; got != model.StatusRefreshing {
		h.t.Fatalf("expected Refreshing, got %s", got)
	}
}
