package raster

// Package raster paints refresh frames into RGBA images with golang.org/x/image.
// It backs both the Fyne header and the headless frame exporter.
