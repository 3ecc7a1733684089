package refresh

import (
	"math"

	"github.com/ytget/circlerefresh/internal/geom"
	"github.com/ytget/circlerefresh/internal/model"
)

// TextMeasurer reports the rendered size of a label.
type TextMeasurer interface {
	MeasureText(text string, size float64) (width, height float64)
}

type renderFunc func(r *Renderer, st model.DragState, g model.ViewGeometry, f *Frame)

// renderers dispatches on status. A nil entry is a programming error caught
// by the package tests; the status guard in model forces this table to be
// revisited when statuses change.
var renderers = [model.StatusCount]renderFunc{
	model.StatusNormal:      (*Renderer).renderNormal,
	model.StatusPullDown:    (*Renderer).renderPullDown,
	model.StatusDrawRefresh: (*Renderer).renderIndicator,
	model.StatusRefreshing:  (*Renderer).renderIndicator,
	model.StatusStopped:     (*Renderer).renderStopped,
}

// Renderer computes frames. It never mutates the state it is given.
type Renderer struct {
	style   *model.Style
	measure TextMeasurer

	labelW float64
	labelH float64
}

// NewRenderer creates a renderer for a fixed style. The label is measured once.
func NewRenderer(style *model.Style, measure TextMeasurer) *Renderer {
	r := &Renderer{style: style, measure: measure}
	if measure != nil && style.Text != "" {
		r.labelW, r.labelH = measure.MeasureText(style.Text, style.TextSize)
	}
	return r
}

// Style returns the style the renderer draws with.
func (r *Renderer) Style() *model.Style {
	return r.style
}

// Render computes the frame for st in geometry g.
func (r *Renderer) Render(st model.DragState, g model.ViewGeometry) Frame {
	f := Frame{
		Status:      st.Status,
		Width:       g.Width,
		Height:      g.Height,
		RotateAngle: st.RotateAngle,
	}
	if g.IsDegenerate() || !st.Status.IsValid() {
		return f
	}
	renderers[st.Status](r, st, g, &f)
	return f
}

func (r *Renderer) renderNormal(_ model.DragState, g model.ViewGeometry, f *Frame) {
	r.background(g, g.RestBend(), f)
}

func (r *Renderer) renderPullDown(st model.DragState, g model.ViewGeometry, f *Frame) {
	r.background(g, st.DragDelta, f)
}

func (r *Renderer) renderStopped(model.DragState, model.ViewGeometry, *Frame) {}

func (r *Renderer) renderIndicator(st model.DragState, g model.ViewGeometry, f *Frame) {
	r.background(g, st.DragDelta, f)
	if !g.HasAnchor {
		return
	}

	anchor := g.Anchor
	f.Label = &LabelOp{
		Text:     r.style.Text,
		X:        (g.Width - r.labelW) / 2,
		Baseline: anchor.Y - g.MarginBottom,
		Width:    r.labelW,
		Height:   r.labelH,
		Size:     r.style.TextSize,
		Color:    model.WithAlpha(r.style.TextColor, st.LabelAlpha),
	}

	switch st.Status {
	case model.StatusDrawRefresh:
		if st.DragTick {
			f.RotateAngle = advance(st.RotateAngle, r.style.RotateStep)
		}
		if st.DragDelta == g.FullBend() {
			f.Escalate = true
			f.NeedsFrame = true
		}
	case model.StatusRefreshing:
		f.RotateAngle = advance(st.RotateAngle, r.style.RotateStep)
		f.NeedsFrame = true
	}

	radius := r.style.CircleRadius
	left := g.Width/2 - radius
	top := anchor.Y - g.MarginBottom*2 - r.labelH - radius*2
	icon := r.style.IconSize

	f.Spinner = &SpinnerOp{
		Angle:     f.RotateAngle,
		Transform: rotation(f.RotateAngle, icon).Translate(left-radius, top-radius),
		Left:      left,
		Top:       top,
		Radius:    radius,
		IconSize:  icon,
		Color:     r.style.IconColor,
		Stroke:    r.style.IconStroke,
	}
}

func (r *Renderer) background(g model.ViewGeometry, bend float64, f *Frame) {
	f.Background = &BackgroundOp{
		Curve: g.BoundaryCurve(bend),
		Color: r.style.Background,
	}
}

// advance adds step to angle modulo 360, keeping the result in [0, 360).
func advance(angle, step float64) float64 {
	a := math.Mod(angle+step, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// rotation turns a square icon of the given side around its own centre.
func rotation(deg, side float64) geom.Affine {
	return geom.Rotation(deg, side/2, side/2)
}
