package model

import (
	"math"

	"github.com/ytget/circlerefresh/internal/geom"
)

// Metrics are the configured sizes that drive the geometry, in layout units.
type Metrics struct {
	BaseHeight       float64
	TopOffset        float64
	BottomOffset     float64
	MarginBottom     float64
	RefreshThreshold float64
}

// Normalize clamps malformed values instead of failing. Negative sizes become
// zero. The threshold stays below TopOffset+BottomOffset so a pull of zero
// never reaches DrawRefresh, and is never below 1 since the label alpha
// divides by it.
func (m Metrics) Normalize() Metrics {
	m.BaseHeight = nonNegative(m.BaseHeight)
	m.TopOffset = nonNegative(m.TopOffset)
	m.BottomOffset = nonNegative(m.BottomOffset)
	m.MarginBottom = nonNegative(m.MarginBottom)
	m.RefreshThreshold = nonNegative(m.RefreshThreshold)

	total := m.TopOffset + m.BottomOffset
	if m.RefreshThreshold >= total {
		m.RefreshThreshold = total - 1
	}
	if m.RefreshThreshold < 1 {
		m.RefreshThreshold = 1
	}
	return m
}

// ClampHeight bounds a proposed header height to [BaseHeight, BaseHeight+BottomOffset].
func (m Metrics) ClampHeight(proposed float64) float64 {
	if math.IsNaN(proposed) || proposed < m.BaseHeight {
		return m.BaseHeight
	}
	if maxH := m.BaseHeight + m.BottomOffset; proposed > maxH {
		return maxH
	}
	return proposed
}

// ViewGeometry is recomputed on every size change and immutable in between.
type ViewGeometry struct {
	Metrics

	Width     float64
	Height    float64
	DragStart float64
	DragEnd   float64

	// Anchor is the arc-length midpoint of the fully extended reference curve
	Anchor geom.Point
	// HasAnchor is false when the reference curve is degenerate
	HasAnchor bool
}

// NewViewGeometry derives the geometry for a view of the given size.
func NewViewGeometry(m Metrics, width, height float64) ViewGeometry {
	m = m.Normalize()
	width = nonNegative(width)
	height = nonNegative(height)

	g := ViewGeometry{
		Metrics:   m,
		Width:     width,
		Height:    height,
		DragStart: height - m.TopOffset - m.BottomOffset,
		DragEnd:   height,
	}
	if !g.IsDegenerate() {
		g.Anchor, g.HasAnchor = g.ReferenceCurve().PointAtFraction(0.5)
	}
	return g
}

// IsDegenerate reports a zero-area view that must not be rendered.
func (g ViewGeometry) IsDegenerate() bool {
	return g.Width <= 0 || g.Height <= 0
}

// Bend applies the curve amplification to a clamped drag position.
func (g ViewGeometry) Bend(v float64) float64 {
	return v + (v-g.BaseHeight)/2
}

// MinDrag is the lower clamp of the drag position. It sits TopOffset above
// the base line, which allows a small upward overshoot.
func (g ViewGeometry) MinDrag() float64 {
	return g.BaseHeight - g.TopOffset
}

// ClampDrag bounds a drag position to [MinDrag, DragEnd].
func (g ViewGeometry) ClampDrag(v float64) float64 {
	return math.Min(math.Max(v, g.MinDrag()), g.DragEnd)
}

// RestBend is the bend value of the resting header.
func (g ViewGeometry) RestBend() float64 {
	return g.Bend(g.DragStart)
}

// FullBend is the bend value of a fully extended header.
func (g ViewGeometry) FullBend() float64 {
	return g.Bend(g.DragEnd)
}

// TotalOffset is TopOffset+BottomOffset.
func (g ViewGeometry) TotalOffset() float64 {
	return g.TopOffset + g.BottomOffset
}

// RefreshAt is the raw delta from which the label and spinner are drawn.
func (g ViewGeometry) RefreshAt() float64 {
	return g.TotalOffset() - g.RefreshThreshold
}

// BoundaryCurve is the draggable boundary for a given bend value.
func (g ViewGeometry) BoundaryCurve(bend float64) geom.QuadCurve {
	return geom.Quad(
		geom.Pt(0, g.BaseHeight),
		geom.Pt(g.Width/2, bend),
		geom.Pt(g.Width, g.BaseHeight),
	)
}

// ReferenceCurve is the fixed fully extended curve used to place the label
// and spinner independently of the live drag.
func (g ViewGeometry) ReferenceCurve() geom.QuadCurve {
	return g.BoundaryCurve(g.FullBend())
}

// nonNegative maps negative and non-finite sizes to zero.
func nonNegative(v float64) float64 {
	if !(v >= 0) || math.IsInf(v, 1) {
		return 0
	}
	return v
}
