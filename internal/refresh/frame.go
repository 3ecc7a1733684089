package refresh

import (
	"image/color"

	"github.com/ytget/circlerefresh/internal/geom"
	"github.com/ytget/circlerefresh/internal/model"
)

// Frame is the outcome of one render: what to paint and what the controller
// has to do next.
type Frame struct {
	Status model.Status
	Width  float64
	Height float64

	Background *BackgroundOp
	Label      *LabelOp
	Spinner    *SpinnerOp

	// RotateAngle is the spinner angle this frame was drawn with
	RotateAngle float64
	// Escalate asks the controller to enter Refreshing
	Escalate bool
	// NeedsFrame asks the host to render again on the next frame without input
	NeedsFrame bool
}

// Empty reports whether nothing is painted.
func (f Frame) Empty() bool {
	return f.Background == nil && f.Label == nil && f.Spinner == nil
}

// BackgroundOp fills the header from the top edge down to the boundary curve.
type BackgroundOp struct {
	Curve geom.QuadCurve
	Color color.NRGBA
}

// Outline returns the straight part of the filled shape: top-left corner,
// curve start, then (after the curve) curve end and top-right corner.
func (b BackgroundOp) Outline() (start, end []geom.Point) {
	start = []geom.Point{geom.Pt(0, 0), b.Curve.P0}
	end = []geom.Point{b.Curve.P2, geom.Pt(b.Curve.P2.X, 0)}
	return start, end
}

// LabelOp draws the refresh text with its baseline at (X, Baseline).
type LabelOp struct {
	Text     string
	X        float64
	Baseline float64
	Width    float64
	Height   float64
	Size     float64
	Color    color.NRGBA
}

// SpinnerOp draws the spinner icon through Transform, which maps icon space
// (origin at the icon's top-left) to view space.
type SpinnerOp struct {
	Angle     float64
	Transform geom.Affine
	Left      float64
	Top       float64
	Radius    float64
	IconSize  float64
	Color     color.NRGBA
	Stroke    float64
}
