package refresh

import (
	"log"
	"math"
	"time"

	"github.com/ytget/circlerefresh/internal/anim"
	"github.com/ytget/circlerefresh/internal/model"
)

// Release animation constants
const (
	ReleaseDuration = 500 * time.Millisecond
	BounceDuration  = 1000 * time.Millisecond
)

// bounceValues are fed as raw deltas after the header returns to rest.
var bounceValues = []float64{-10, 10, -8, 8, -6, 6, -4, 4, -2, 2, 0}

// BounceValues returns a copy of the settle oscillation.
func BounceValues() []float64 {
	return append([]float64(nil), bounceValues...)
}

// Controller owns the DragState and decides every status transition.
type Controller struct {
	metrics model.Metrics
	geom    model.ViewGeometry
	state   model.DragState
	sched   *anim.Scheduler

	release   *anim.Task
	spin      *anim.Task
	releasing bool

	invalidate  func()
	onStarted   func()
	onCompleted func()
}

// NewController creates a controller whose animations run on sched.
func NewController(metrics model.Metrics, sched *anim.Scheduler) *Controller {
	if sched == nil {
		sched = anim.NewScheduler()
	}
	c := &Controller{
		metrics: metrics.Normalize(),
		state:   model.NewDragState(),
		sched:   sched,
	}
	c.geom = model.NewViewGeometry(c.metrics, 0, 0)
	return c
}

// SetInvalidate sets the redraw request hook.
func (c *Controller) SetInvalidate(fn func()) {
	c.invalidate = fn
}

// SetOnRefreshStarted sets the callback fired when the header enters Refreshing.
func (c *Controller) SetOnRefreshStarted(fn func()) {
	c.onStarted = fn
}

// SetOnRefreshCompleted sets the callback fired when a release settles back to Normal.
func (c *Controller) SetOnRefreshCompleted(fn func()) {
	c.onCompleted = fn
}

// State returns a copy of the current state.
func (c *Controller) State() model.DragState {
	return c.state
}

// Geometry returns the geometry of the last layout pass.
func (c *Controller) Geometry() model.ViewGeometry {
	return c.geom
}

// Metrics returns the normalized metrics.
func (c *Controller) Metrics() model.Metrics {
	return c.metrics
}

// PreferredHeight clamps a proposed height into the range the header supports.
func (c *Controller) PreferredHeight(proposed float64) float64 {
	return c.metrics.ClampHeight(proposed)
}

// Layout recomputes the geometry for a new view size.
func (c *Controller) Layout(width, height float64) {
	g := model.NewViewGeometry(c.metrics, width, height)
	if g.Width == c.geom.Width && g.Height == c.geom.Height {
		return
	}
	c.geom = g
	if c.state.Status == model.StatusNormal {
		c.state.DragDelta = g.RestBend()
	}
	c.requestRedraw()
}

// StartDrag feeds a cumulative pull distance from the user. It supersedes a
// running release animation. Input is ignored while Refreshing or Stopped.
func (c *Controller) StartDrag(raw float64) {
	switch c.state.Status {
	case model.StatusRefreshing, model.StatusStopped:
		return
	}
	c.cancelRelease()
	c.apply(raw)
}

// apply is the single entry point for user and animator drag values.
func (c *Controller) apply(raw float64) {
	raw = sanitize(raw)
	g := c.geom

	c.state.DragDelta = g.Bend(g.ClampDrag(g.DragStart + raw))
	c.state.RawDelta = raw
	c.state.DragTick = true

	if raw > 0 && raw >= g.RefreshAt() {
		alpha := 255 * (g.TotalOffset() - raw) / g.RefreshThreshold
		alpha = math.Max(0, math.Min(model.MaxAlpha, alpha))
		c.state.LabelAlpha = model.MaxAlpha - uint8(alpha)
		c.setStatus(model.StatusDrawRefresh)
	} else {
		c.state.LabelAlpha = model.MaxAlpha
		c.setStatus(model.StatusPullDown)
	}
	c.requestRedraw()
}

// ReleaseDrag animates the header back to rest and then plays the bounce.
// A release already in flight is replaced.
func (c *Controller) ReleaseDrag() {
	if c.state.Status == model.StatusStopped {
		return
	}
	c.cancelSpin()
	c.cancelRelease()
	if c.state.Status == model.StatusRefreshing {
		c.setStatus(model.StatusPullDown)
	}

	c.releasing = true
	from := c.state.DragDelta
	c.release = c.sched.Play(anim.Tween{
		From:   from,
		To:     0,
		Length: ReleaseDuration,
		Ease:   anim.AccelerateDecelerate,
	}, c.apply, c.bounce)
	c.requestRedraw()
}

// FinishRefreshing is called by the host once its refresh work completes.
func (c *Controller) FinishRefreshing() {
	if c.state.Status != model.StatusRefreshing {
		log.Printf("refresh: finish requested in status %s", c.state.Status)
	}
	c.ReleaseDrag()
}

// Stop cancels all animations and stops drawing.
func (c *Controller) Stop() {
	c.cancelSpin()
	c.cancelRelease()
	c.setStatus(model.StatusStopped)
	c.requestRedraw()
}

// Reset returns a stopped or dragged header to rest without animating.
func (c *Controller) Reset() {
	c.cancelSpin()
	c.cancelRelease()
	c.rest()
	c.requestRedraw()
}

func (c *Controller) bounce() {
	c.release = c.sched.Play(anim.Keyframes{
		Values: bounceValues,
		Length: BounceDuration,
		Ease:   anim.Linear,
	}, c.apply, c.settle)
}

func (c *Controller) settle() {
	c.release = nil
	c.releasing = false
	c.rest()
	c.requestRedraw()
	if c.onCompleted != nil {
		c.onCompleted()
	}
}

func (c *Controller) rest() {
	c.setStatus(model.StatusNormal)
	c.state.DragDelta = c.geom.RestBend()
	c.state.RawDelta = 0
	c.state.LabelAlpha = model.MaxAlpha
	c.state.DragTick = false
}

// commit applies the side effects a rendered frame asks for.
func (c *Controller) commit(f Frame) {
	if c.state.Status.ShowsIndicator() {
		c.state.RotateAngle = f.RotateAngle
	}
	c.state.DragTick = false

	if f.Escalate && c.state.Status == model.StatusDrawRefresh && !c.releasing {
		c.enterRefreshing()
	}
}

func (c *Controller) enterRefreshing() {
	c.setStatus(model.StatusRefreshing)
	c.cancelSpin()
	c.spin = c.sched.Every(0, c.requestRedraw)
	c.requestRedraw()
	if c.onStarted != nil {
		c.onStarted()
	}
}

func (c *Controller) setStatus(s model.Status) {
	if c.state.Status == s {
		return
	}
	log.Printf("refresh: status %s -> %s", c.state.Status, s)
	c.state.Status = s
}

func (c *Controller) cancelRelease() {
	c.release.Cancel()
	c.release = nil
	c.releasing = false
}

func (c *Controller) cancelSpin() {
	c.spin.Cancel()
	c.spin = nil
}

func (c *Controller) requestRedraw() {
	if c.invalidate != nil {
		c.invalidate()
	}
}

// sanitize maps NaN to zero. Infinities pass through and are clamped later.
func sanitize(raw float64) float64 {
	if math.IsNaN(raw) {
		log.Printf("refresh: ignoring NaN drag delta")
		return 0
	}
	return raw
}
