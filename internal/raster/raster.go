package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"

	"github.com/ytget/circlerefresh/internal/geom"
	"github.com/ytget/circlerefresh/internal/refresh"
)

// Frame paints f into a new image of its size times scale. icon may be nil,
// in which case one is drawn for the frame's spinner.
func Frame(f refresh.Frame, scale float64, icon image.Image) *image.RGBA {
	w := int(math.Ceil(f.Width * scale))
	h := int(math.Ceil(f.Height * scale))
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if f.Background != nil {
		Background(dst, f.Background, scale)
	}
	if f.Spinner != nil {
		if icon == nil {
			icon = SpinnerIcon(IconPixels(f.Spinner, scale), f.Spinner.Color, f.Spinner.Stroke*scale)
		}
		Spinner(dst, f.Spinner, icon, scale)
	}
	if f.Label != nil {
		Label(dst, f.Label, scale)
	}
	return dst
}

// Background fills the area between the top edge and the boundary curve.
func Background(dst draw.Image, op *refresh.BackgroundOp, scale float64) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	pt := func(p geom.Point) (float32, float32) {
		return float32(p.X * scale), float32(p.Y * scale)
	}

	start, end := op.Outline()
	z.MoveTo(pt(start[0]))
	z.LineTo(pt(start[1]))
	cx, cy := pt(op.Curve.P1)
	ex, ey := pt(op.Curve.P2)
	z.QuadTo(cx, cy, ex, ey)
	z.LineTo(pt(end[1]))
	z.ClosePath()

	z.Draw(dst, b, image.NewUniform(op.Color), b.Min)
}

// Spinner draws icon through the op's transform. The icon may be any pixel
// size; it is stretched to op.IconSize layout units.
func Spinner(dst draw.Image, op *refresh.SpinnerOp, icon image.Image, scale float64) {
	sb := icon.Bounds()
	if sb.Empty() || op.IconSize <= 0 {
		return
	}
	k := op.IconSize / float64(sb.Dx())
	m := geom.Affine{k, 0, -float64(sb.Min.X) * k, 0, k, -float64(sb.Min.Y) * k}.
		Then(op.Transform).
		Scale(scale)
	draw.BiLinear.Transform(dst, f64.Aff3(m), icon, sb, draw.Over, nil)
}

// IconPixels returns the pixel side of the icon for op at scale.
func IconPixels(op *refresh.SpinnerOp, scale float64) int {
	px := int(math.Round(op.IconSize * scale))
	if px < 1 {
		px = 1
	}
	return px
}

// SpinnerIcon draws a three-quarter ring of the given pixel size.
func SpinnerIcon(size int, c color.NRGBA, stroke float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if size <= 0 {
		return img
	}
	if stroke < 1 {
		stroke = 1
	}

	const (
		sweep    = 1.5 * math.Pi
		segments = 48
	)
	mid := float64(size) / 2
	outer := mid - 0.5
	inner := outer - stroke
	if inner < 0 {
		inner = 0
	}

	z := vector.NewRasterizer(size, size)
	at := func(r, a float64) (float32, float32) {
		sin, cos := math.Sincos(a - math.Pi/2)
		return float32(mid + r*cos), float32(mid + r*sin)
	}
	z.MoveTo(at(outer, 0))
	for i := 1; i <= segments; i++ {
		z.LineTo(at(outer, sweep*float64(i)/segments))
	}
	for i := segments; i >= 0; i-- {
		z.LineTo(at(inner, sweep*float64(i)/segments))
	}
	z.ClosePath()

	z.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
	return img
}
