package ui

import (
	"bytes"
	"image/color"
	"image/png"
	"log"

	"fyne.io/fyne/v2"

	"github.com/ytget/circlerefresh/internal/raster"
)

const (
	AppIcon     = "circlerefresh.png"
	AppIconSize = 256
)

// IconResource draws the spinner ring as a PNG app icon
func IconResource(c color.NRGBA) fyne.Resource {
	img := raster.SpinnerIcon(AppIconSize, c, AppIconSize/8)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		log.Printf("ui: encoding app icon: %v", err)
		return nil
	}
	return fyne.NewStaticResource(AppIcon, buf.Bytes())
}
