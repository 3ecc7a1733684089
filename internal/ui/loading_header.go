package ui

import (
	"image"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/circlerefresh/internal/config"
	"github.com/ytget/circlerefresh/internal/model"
	"github.com/ytget/circlerefresh/internal/raster"
	"github.com/ytget/circlerefresh/internal/refresh"
)

// fyneMeasurer measures labels with the current theme font
type fyneMeasurer struct{}

// MeasureText implements refresh.TextMeasurer
func (fyneMeasurer) MeasureText(text string, size float64) (float64, float64) {
	s := fyne.MeasureText(text, float32(size), fyne.TextStyle{})
	return float64(s.Width), float64(s.Height)
}

// LoadingHeader is the pull-to-refresh header widget. It owns a frame driver
// and runs a fyne.Animation as its frame ticker while the driver is active.
type LoadingHeader struct {
	widget.BaseWidget

	driver *refresh.Driver
	frame  refresh.Frame

	ticker  *fyne.Animation
	ticking bool
	now     func() time.Time
}

// NewLoadingHeader creates a header from options. An empty Options.Text is
// replaced by the localized refresh label.
func NewLoadingHeader(opts config.Options, localization *Localization) *LoadingHeader {
	opts = opts.Normalize()
	label := "Refreshing"
	if localization != nil {
		label = localization.GetText(KeyRefreshing)
	}
	style := opts.Style(label)

	h := &LoadingHeader{
		driver: refresh.New(opts.Metrics(), style, fyneMeasurer{}),
		now:    time.Now,
	}
	h.driver.SetWake(h.startTicker)
	h.ExtendBaseWidget(h)
	return h
}

// SetOnRefreshStarted sets the callback fired when the header starts refreshing
func (h *LoadingHeader) SetOnRefreshStarted(fn func()) {
	h.driver.Controller().SetOnRefreshStarted(fn)
}

// SetOnRefreshCompleted sets the callback fired when the header settles
func (h *LoadingHeader) SetOnRefreshCompleted(fn func()) {
	h.driver.Controller().SetOnRefreshCompleted(fn)
}

// StartDrag feeds the cumulative pull distance
func (h *LoadingHeader) StartDrag(pull float64) {
	h.driver.Controller().StartDrag(pull)
}

// ReleaseDrag animates the header back to rest
func (h *LoadingHeader) ReleaseDrag() {
	h.driver.Controller().ReleaseDrag()
}

// FinishRefreshing ends a refresh cycle
func (h *LoadingHeader) FinishRefreshing() {
	h.driver.Controller().FinishRefreshing()
}

// Stop halts all animation and hides the header content
func (h *LoadingHeader) Stop() {
	h.driver.Controller().Stop()
}

// Reset returns the header to rest
func (h *LoadingHeader) Reset() {
	h.driver.Controller().Reset()
}

// Status returns the current header status
func (h *LoadingHeader) Status() model.Status {
	return h.driver.Controller().State().Status
}

// Frame returns the most recently applied frame
func (h *LoadingHeader) Frame() refresh.Frame {
	return h.frame
}

// startTicker is the driver's wake hook
func (h *LoadingHeader) startTicker() {
	if h.ticking {
		return
	}
	h.ticking = true
	// A fresh animation per wake; a stopped one is not restarted.
	h.ticker = fyne.NewAnimation(TickerCycle, func(float32) {
		h.step(h.now())
	})
	h.ticker.RepeatCount = fyne.AnimationRepeatForever
	h.ticker.Start()
}

func (h *LoadingHeader) stopTicker() {
	if !h.ticking {
		return
	}
	h.ticking = false
	if h.ticker != nil {
		h.ticker.Stop()
		h.ticker = nil
	}
}

// step runs one frame. It is called on the UI thread by the ticker.
func (h *LoadingHeader) step(now time.Time) {
	f, changed := h.driver.Step(now)
	if changed {
		h.frame = f
		h.Refresh()
	}
	if !h.driver.Active() {
		h.stopTicker()
	}
}

// MinSize returns the preferred header height
func (h *LoadingHeader) MinSize() fyne.Size {
	m := h.driver.Controller().Metrics()
	height := h.driver.Controller().PreferredHeight(m.BaseHeight + m.TopOffset + m.BottomOffset)
	return fyne.NewSize(MinHeaderWidth, float32(height))
}

// CreateRenderer creates the widget renderer
func (h *LoadingHeader) CreateRenderer() fyne.WidgetRenderer {
	r := &loadingHeaderRenderer{header: h}
	r.raster = canvas.NewRaster(r.paint)
	r.label = canvas.NewText("", h.driver.Renderer().Style().TextColor)
	r.label.Hide()
	return r
}

// loadingHeaderRenderer paints the background and spinner into a raster and
// the label as themed text
type loadingHeaderRenderer struct {
	header *LoadingHeader
	raster *canvas.Raster
	label  *canvas.Text

	icon   image.Image
	iconPx int
}

// Layout arranges the components
func (r *loadingHeaderRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
	r.header.driver.Controller().Layout(float64(size.Width), float64(size.Height))
}

// MinSize returns the minimum size
func (r *loadingHeaderRenderer) MinSize() fyne.Size {
	return r.header.MinSize()
}

// Refresh applies the latest frame
func (r *loadingHeaderRenderer) Refresh() {
	f := r.header.frame
	if op := f.Label; op != nil && op.Color.A > 0 {
		r.label.Text = op.Text
		r.label.Color = op.Color
		r.label.TextSize = float32(op.Size)
		r.label.Move(fyne.NewPos(float32(op.X), float32(op.Baseline-op.Height)))
		r.label.Show()
	} else {
		r.label.Hide()
	}
	r.label.Refresh()
	r.raster.Refresh()
}

// Objects returns the canvas objects
func (r *loadingHeaderRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster, r.label}
}

// Destroy stops the ticker
func (r *loadingHeaderRenderer) Destroy() {
	r.header.stopTicker()
}

// paint is the raster generator; w and h are in device pixels
func (r *loadingHeaderRenderer) paint(w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	f := r.header.frame
	if f.Width <= 0 || w <= 0 {
		return dst
	}
	scale := float64(w) / f.Width

	if f.Background != nil {
		raster.Background(dst, f.Background, scale)
	}
	if op := f.Spinner; op != nil {
		px := raster.IconPixels(op, scale)
		if r.icon == nil || px != r.iconPx {
			log.Printf("ui: drawing spinner icon at %dpx", px)
			r.icon = raster.SpinnerIcon(px, op.Color, op.Stroke*scale)
			r.iconPx = px
		}
		raster.Spinner(dst, op, r.icon, scale)
	}
	return dst
}
