package geom

import "math"

// Affine is a 2x3 matrix laid out row-major:
//
//	x' = m[0]*x + m[1]*y + m[2]
//	y' = m[3]*x + m[4]*y + m[5]
type Affine [6]float64

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{1, 0, 0, 0, 1, 0}
}

// Rotation returns a clockwise (screen space) rotation of deg degrees around
// the pivot (px, py).
func Rotation(deg, px, py float64) Affine {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Affine{
		cos, -sin, px - cos*px + sin*py,
		sin, cos, py - sin*px - cos*py,
	}
}

// Then returns the transform that applies m first and n second.
func (m Affine) Then(n Affine) Affine {
	return Affine{
		n[0]*m[0] + n[1]*m[3], n[0]*m[1] + n[1]*m[4], n[0]*m[2] + n[1]*m[5] + n[2],
		n[3]*m[0] + n[4]*m[3], n[3]*m[1] + n[4]*m[4], n[3]*m[2] + n[4]*m[5] + n[5],
	}
}

// Translate appends a translation after m.
func (m Affine) Translate(dx, dy float64) Affine {
	return m.Then(Affine{1, 0, dx, 0, 1, dy})
}

// Scale appends a uniform scale after m.
func (m Affine) Scale(k float64) Affine {
	return m.Then(Affine{k, 0, 0, 0, k, 0})
}

// Apply transforms p.
func (m Affine) Apply(p Point) Point {
	return Point{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}
}
