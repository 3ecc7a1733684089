package anim

import (
	"math"
	"time"
)

// Sequence is a value that changes over a fixed duration.
type Sequence interface {
	Duration() time.Duration
	// At returns the value after elapsed time; elapsed beyond Duration yields the final value.
	At(elapsed time.Duration) float64
}

// Tween interpolates from From to To.
type Tween struct {
	From   float64
	To     float64
	Length time.Duration
	Ease   Easing
}

// Duration implements Sequence.
func (tw Tween) Duration() time.Duration {
	return tw.Length
}

// At implements Sequence.
func (tw Tween) At(elapsed time.Duration) float64 {
	f := ease(tw.Ease, progress(elapsed, tw.Length))
	return tw.From + (tw.To-tw.From)*f
}

// Keyframes passes through Values at evenly spaced fractions of Length,
// interpolating linearly between neighbours after easing the overall progress.
type Keyframes struct {
	Values []float64
	Length time.Duration
	Ease   Easing
}

// Duration implements Sequence.
func (k Keyframes) Duration() time.Duration {
	return k.Length
}

// At implements Sequence.
func (k Keyframes) At(elapsed time.Duration) float64 {
	switch len(k.Values) {
	case 0:
		return 0
	case 1:
		return k.Values[0]
	}

	f := ease(k.Ease, progress(elapsed, k.Length))
	segments := float64(len(k.Values) - 1)
	pos := f * segments
	i := int(math.Floor(pos))
	if i >= len(k.Values)-1 {
		return k.Values[len(k.Values)-1]
	}
	local := pos - float64(i)
	return k.Values[i] + (k.Values[i+1]-k.Values[i])*local
}

// Chain plays sequences back to back.
type Chain []Sequence

// Duration implements Sequence.
func (c Chain) Duration() time.Duration {
	var total time.Duration
	for _, s := range c {
		total += s.Duration()
	}
	return total
}

// At implements Sequence.
func (c Chain) At(elapsed time.Duration) float64 {
	if len(c) == 0 {
		return 0
	}
	for _, s := range c {
		if elapsed < s.Duration() {
			return s.At(elapsed)
		}
		elapsed -= s.Duration()
	}
	last := c[len(c)-1]
	return last.At(last.Duration())
}

// Samples evaluates seq every interval, including both ends. It is meant for
// offline consumers such as frame dumps.
func Samples(seq Sequence, interval time.Duration) []float64 {
	if interval <= 0 {
		return []float64{seq.At(seq.Duration())}
	}
	var out []float64
	for at := time.Duration(0); at < seq.Duration(); at += interval {
		out = append(out, seq.At(at))
	}
	return append(out, seq.At(seq.Duration()))
}

func progress(elapsed, length time.Duration) float64 {
	if length <= 0 {
		return 1
	}
	return float64(elapsed) / float64(length)
}
