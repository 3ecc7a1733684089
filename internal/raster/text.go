package raster

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ytget/circlerefresh/internal/refresh"
)

// BasicMeasurer measures labels with the fixed 7x13 bitmap face.
// The size argument is ignored; the face has a single size.
type BasicMeasurer struct{}

// MeasureText implements refresh.TextMeasurer.
func (BasicMeasurer) MeasureText(text string, _ float64) (float64, float64) {
	face := basicfont.Face7x13
	w := font.MeasureString(face, text)
	m := face.Metrics()
	return fixedToFloat(w), fixedToFloat(m.Ascent + m.Descent)
}

// Label draws the label text at its baseline. Bitmap glyphs are not scaled,
// only the position is.
func Label(dst draw.Image, op *refresh.LabelOp, scale float64) {
	if op.Text == "" || op.Color.A == 0 {
		return
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(op.Color),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(math.Round(op.X*scale)), int(math.Round(op.Baseline*scale))),
	}
	d.DrawString(op.Text)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
