package geom

import "math"

// Point is a position in layout units, y growing downwards.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul scales p by k.
func (p Point) Mul(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Len returns the distance from the origin.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Lerp interpolates between p and q.
func Lerp(p, q Point, t float64) Point {
	return p.Add(q.Sub(p).Mul(t))
}
