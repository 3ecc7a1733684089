package config

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses "#rrggbb" or "#rgb" into an opaque colour.
func ParseColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// FormatColor renders c as "#rrggbb", dropping alpha.
func FormatColor(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
