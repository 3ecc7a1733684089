package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuadCurve_Point(t *testing.T) {
	q := Quad(Pt(0, 84), Pt(200, 144), Pt(400, 84))

	assert.Equal(t, Pt(0, 84), q.Point(0))
	assert.Equal(t, Pt(400, 84), q.Point(1))

	mid := q.Point(0.5)
	assert.InDelta(t, 200, mid.X, 1e-9)
	assert.InDelta(t, (84+2*144+84)/4.0, mid.Y, 1e-9)
}

func TestQuadCurve_LengthStraightLine(t *testing.T) {
	// Control point on the chord makes the curve a straight segment.
	q := Quad(Pt(0, 0), Pt(50, 0), Pt(100, 0))
	assert.InDelta(t, 100, q.Length(), 1e-6)
	assert.InDelta(t, 25, q.ArcLength(0.25), 1e-6)
}

func TestQuadCurve_LengthBoundedByPolygon(t *testing.T) {
	q := Quad(Pt(0, 84), Pt(200, 300), Pt(400, 84))
	chord := 400.0
	poly := Pt(200, 216).Len() * 2

	l := q.Length()
	assert.Greater(t, l, chord)
	assert.Less(t, l, poly)
}

func TestQuadCurve_PointAtFractionSymmetric(t *testing.T) {
	tests := []struct {
		name    string
		control float64
	}{
		{"bulge down", 300},
		{"bulge up", 10},
		{"flat", 84},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Quad(Pt(0, 84), Pt(160, tt.control), Pt(320, 84))
			p, ok := q.PointAtFraction(0.5)
			require.True(t, ok)
			want := q.Point(0.5)
			assert.InDelta(t, want.X, p.X, 1e-4)
			assert.InDelta(t, want.Y, p.Y, 1e-6)
		})
	}
}

func TestQuadCurve_PointAtFractionAsymmetric(t *testing.T) {
	q := Quad(Pt(0, 0), Pt(10, 100), Pt(200, 0))
	p, ok := q.PointAtFraction(0.3)
	require.True(t, ok)

	// Walk back to t and compare arc lengths.
	lo, hi := 0.0, 1.0
	for i := 0; i < 60; i++ {
		mid := (lo + hi) / 2
		if q.Point(mid).X < p.X {
			lo = mid
		} else {
			hi = mid
		}
	}
	assert.InDelta(t, 0.3*q.Length(), q.ArcLength(lo), 1e-3)
}

func TestQuadCurve_PointAtFractionDegenerate(t *testing.T) {
	q := Quad(Pt(5, 5), Pt(5, 5), Pt(5, 5))
	_, ok := q.PointAtFraction(0.5)
	assert.False(t, ok)

	q = Quad(Pt(0, 0), Pt(1, 1), Pt(2, 0))
	_, ok = q.PointAtFraction(math.NaN())
	assert.False(t, ok)
}

func TestAffine_RotationAroundPivot(t *testing.T) {
	m := Rotation(90, 10, 10)

	// The pivot is fixed.
	p := m.Apply(Pt(10, 10))
	assert.InDelta(t, 10, p.X, 1e-9)
	assert.InDelta(t, 10, p.Y, 1e-9)

	// Clockwise on screen: right of the pivot moves below it.
	p = m.Apply(Pt(20, 10))
	assert.InDelta(t, 10, p.X, 1e-9)
	assert.InDelta(t, 20, p.Y, 1e-9)
}

func TestAffine_TranslateAfterRotate(t *testing.T) {
	m := Rotation(180, 5, 5).Translate(100, 50)
	p := m.Apply(Pt(0, 0))
	assert.InDelta(t, 110, p.X, 1e-9)
	assert.InDelta(t, 60, p.Y, 1e-9)

	assert.Equal(t, Pt(3, 4), Identity().Apply(Pt(3, 4)))
}
