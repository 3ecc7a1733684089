package refresh

import (
	"time"

	"github.com/ytget/circlerefresh/internal/anim"
	"github.com/ytget/circlerefresh/internal/model"
)

// Driver is the frame loop glue. Each Step first runs the animation tasks,
// which may feed drag values into the controller, then renders the settled
// state and commits the frame's side effects. A drag update is therefore never
// observed half applied.
type Driver struct {
	ctrl     *Controller
	renderer *Renderer
	sched    *anim.Scheduler

	pending bool
	wake    func()
	last    Frame
}

// New wires a controller, renderer and scheduler for the given configuration.
func New(metrics model.Metrics, style *model.Style, measure TextMeasurer) *Driver {
	sched := anim.NewScheduler()
	return NewDriver(NewController(metrics, sched), NewRenderer(style, measure), sched)
}

// NewDriver wires existing parts. ctrl must schedule its animations on sched.
func NewDriver(ctrl *Controller, renderer *Renderer, sched *anim.Scheduler) *Driver {
	d := &Driver{
		ctrl:     ctrl,
		renderer: renderer,
		sched:    sched,
		pending:  true,
	}
	ctrl.SetInvalidate(d.invalidate)
	return d
}

// Controller returns the driven controller.
func (d *Driver) Controller() *Controller {
	return d.ctrl
}

// Renderer returns the renderer.
func (d *Driver) Renderer() *Renderer {
	return d.renderer
}

// SetWake sets the hook called on every redraw request, including the first
// one after construction. Hosts use it to start their frame ticker and must
// ignore it while the ticker runs.
func (d *Driver) SetWake(fn func()) {
	d.wake = fn
}

// Active reports whether another Step would do anything.
func (d *Driver) Active() bool {
	return d.pending || d.sched.Active()
}

// Last returns the most recently rendered frame.
func (d *Driver) Last() Frame {
	return d.last
}

// Step advances animations to now and renders if a redraw was requested.
// changed is false when the previous frame is still current.
func (d *Driver) Step(now time.Time) (f Frame, changed bool) {
	d.sched.Tick(now)
	if !d.pending {
		return d.last, false
	}
	d.pending = false

	f = d.renderer.Render(d.ctrl.State(), d.ctrl.Geometry())
	d.ctrl.commit(f)
	if f.NeedsFrame {
		d.pending = true
	}
	d.last = f
	return f, true
}

func (d *Driver) invalidate() {
	d.pending = true
	if d.wake != nil {
		d.wake()
	}
}
