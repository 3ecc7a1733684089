package geom

import "math"

// Gauss-Legendre nodes and weights (5 points) used for arc length.
var (
	glNodes   = [5]float64{0, -0.5384693101056831, 0.5384693101056831, -0.9061798459386640, 0.9061798459386640}
	glWeights = [5]float64{0.5688888888888889, 0.4786286704993665, 0.4786286704993665, 0.2369268850561891, 0.2369268850561891}
)

const (
	// arcSubdivisions splits [0,t] before integrating each piece.
	arcSubdivisions = 16
	// solveIterations bounds the bisection in PointAtFraction.
	solveIterations = 48
)

// QuadCurve is a quadratic Bézier curve from P0 to P2 pulled towards P1.
type QuadCurve struct {
	P0, P1, P2 Point
}

// Quad builds a QuadCurve.
func Quad(p0, p1, p2 Point) QuadCurve {
	return QuadCurve{P0: p0, P1: p1, P2: p2}
}

// Point evaluates the curve at parameter t in [0,1].
func (q QuadCurve) Point(t float64) Point {
	mt := 1 - t
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Derivative returns dB/dt at t.
func (q QuadCurve) Derivative(t float64) Point {
	a := q.P1.Sub(q.P0).Mul(2 * (1 - t))
	b := q.P2.Sub(q.P1).Mul(2 * t)
	return a.Add(b)
}

// Length returns the total arc length of the curve.
func (q QuadCurve) Length() float64 {
	return q.ArcLength(1)
}

// ArcLength returns the length of the curve between parameter 0 and t.
func (q QuadCurve) ArcLength(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t > 1 {
		t = 1
	}
	step := t / arcSubdivisions
	var total float64
	for i := 0; i < arcSubdivisions; i++ {
		a := float64(i) * step
		half := step / 2
		mid := a + half
		var sum float64
		for k, x := range glNodes {
			sum += glWeights[k] * q.Derivative(mid+half*x).Len()
		}
		total += sum * half
	}
	return total
}

// PointAtFraction returns the point located at fraction f of the total arc
// length. ok is false when the curve has no usable length or f is not finite.
func (q QuadCurve) PointAtFraction(f float64) (p Point, ok bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Point{}, false
	}
	total := q.Length()
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return Point{}, false
	}
	f = math.Max(0, math.Min(1, f))
	target := total * f

	lo, hi := 0.0, 1.0
	for i := 0; i < solveIterations; i++ {
		mid := (lo + hi) / 2
		if q.ArcLength(mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return q.Point((lo + hi) / 2), true
}
