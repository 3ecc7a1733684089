package config

import (
	"image/color"
	"log"
	"math"

	"github.com/ytget/circlerefresh/internal/model"
)

// Default values
const (
	DefaultRotateStep       = 15
	DefaultTextColor        = "#ffffff"
	DefaultTextSize         = 12
	DefaultBackgroundColor  = "#1295f4"
	DefaultBaseHeight       = 84
	DefaultTopOffset        = 40
	DefaultBottomOffset     = 40
	DefaultMarginBottom     = 10
	DefaultRefreshThreshold = 5
	DefaultLanguage         = "system"

	// CircleRadius matches the spinner artwork and cannot be overridden
	CircleRadius = 5
	// IconScale sizes the square spinner icon relative to CircleRadius
	IconScale = 4
	// IconStroke is the spinner ring thickness
	IconStroke = 2
)

// Rotate step bounds
const (
	MinRotateStep = 1
	MaxRotateStep = 180
)

// Options configures a refresh header. Sizes are in layout units.
type Options struct {
	RotateStep       float64 `mapstructure:"rotate_step" yaml:"rotate_step"`
	Text             string  `mapstructure:"text" yaml:"text"`
	Language         string  `mapstructure:"language" yaml:"language"`
	TextColor        string  `mapstructure:"text_color" yaml:"text_color"`
	TextSize         float64 `mapstructure:"text_size" yaml:"text_size"`
	BackgroundColor  string  `mapstructure:"background_color" yaml:"background_color"`
	BaseHeight       float64 `mapstructure:"base_height" yaml:"base_height"`
	TopOffset        float64 `mapstructure:"top_offset" yaml:"top_offset"`
	BottomOffset     float64 `mapstructure:"bottom_offset" yaml:"bottom_offset"`
	MarginBottom     float64 `mapstructure:"margin_bottom" yaml:"margin_bottom"`
	RefreshThreshold float64 `mapstructure:"refresh_threshold" yaml:"refresh_threshold"`
}

// DefaultOptions returns the stock header configuration. Text is left empty
// so the host can fill in a localized label.
func DefaultOptions() Options {
	return Options{
		RotateStep:       DefaultRotateStep,
		Language:         DefaultLanguage,
		TextColor:        DefaultTextColor,
		TextSize:         DefaultTextSize,
		BackgroundColor:  DefaultBackgroundColor,
		BaseHeight:       DefaultBaseHeight,
		TopOffset:        DefaultTopOffset,
		BottomOffset:     DefaultBottomOffset,
		MarginBottom:     DefaultMarginBottom,
		RefreshThreshold: DefaultRefreshThreshold,
	}
}

// Normalize fixes out-of-range values instead of rejecting them.
func (o Options) Normalize() Options {
	o.RotateStep = clampRotateStep(o.RotateStep)
	if !(o.TextSize > 0) || math.IsInf(o.TextSize, 1) {
		o.TextSize = DefaultTextSize
	}
	if o.Language == "" {
		o.Language = DefaultLanguage
	}
	if _, err := ParseColor(o.TextColor); err != nil {
		log.Printf("config: %v, using %s", err, DefaultTextColor)
		o.TextColor = DefaultTextColor
	}
	if _, err := ParseColor(o.BackgroundColor); err != nil {
		log.Printf("config: %v, using %s", err, DefaultBackgroundColor)
		o.BackgroundColor = DefaultBackgroundColor
	}

	m := o.Metrics()
	o.BaseHeight = m.BaseHeight
	o.TopOffset = m.TopOffset
	o.BottomOffset = m.BottomOffset
	o.MarginBottom = m.MarginBottom
	o.RefreshThreshold = m.RefreshThreshold
	return o
}

// Metrics returns the normalized geometry inputs.
func (o Options) Metrics() model.Metrics {
	return model.Metrics{
		BaseHeight:       o.BaseHeight,
		TopOffset:        o.TopOffset,
		BottomOffset:     o.BottomOffset,
		MarginBottom:     o.MarginBottom,
		RefreshThreshold: o.RefreshThreshold,
	}.Normalize()
}

// Style builds the immutable style descriptor. label overrides Options.Text
// when the latter is empty.
func (o Options) Style(label string) *model.Style {
	o = o.Normalize()
	text := o.Text
	if text == "" {
		text = label
	}
	fg := mustColor(o.TextColor)
	return &model.Style{
		Text:         text,
		TextColor:    fg,
		TextSize:     o.TextSize,
		Background:   mustColor(o.BackgroundColor),
		CircleRadius: CircleRadius,
		IconSize:     CircleRadius * IconScale,
		IconColor:    fg,
		IconStroke:   IconStroke,
		RotateStep:   o.RotateStep,
	}
}

// clampRotateStep bounds step to [MinRotateStep, MaxRotateStep]. NaN falls
// back to the default.
func clampRotateStep(step float64) float64 {
	switch {
	case math.IsNaN(step):
		return DefaultRotateStep
	case step < MinRotateStep:
		return MinRotateStep
	case step > MaxRotateStep:
		return MaxRotateStep
	}
	return step
}

func mustColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		return color.NRGBA{A: 0xff}
	}
	return c
}
