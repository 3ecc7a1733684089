package model

import "image/color"

// Style describes how a frame is painted. It is built once and shared
// read-only between frames.
type Style struct {
	Text       string
	TextColor  color.NRGBA
	TextSize   float64
	Background color.NRGBA

	// CircleRadius is fixed by the icon artwork and not configurable per header
	CircleRadius float64
	// IconSize is the side of the square spinner icon
	IconSize   float64
	IconColor  color.NRGBA
	IconStroke float64
	RotateStep float64
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = uint8(uint16(c.A) * uint16(a) / MaxAlpha)
	return c
}
