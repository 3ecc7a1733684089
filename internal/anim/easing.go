package anim

import "math"

// Easing maps linear progress in [0,1] to eased progress.
type Easing func(t float64) float64

// Linear leaves progress unchanged.
func Linear(t float64) float64 {
	return t
}

// AccelerateDecelerate starts and ends slowly and is fastest in the middle.
func AccelerateDecelerate(t float64) float64 {
	return math.Cos((t+1)*math.Pi)/2 + 0.5
}

func ease(e Easing, t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	if e == nil {
		return t
	}
	return e(t)
}
