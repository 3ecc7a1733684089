package model

// MaxAlpha is the fully opaque label alpha.
const MaxAlpha = 255

// DragState is the mutable state owned by the refresh controller.
type DragState struct {
	Status Status

	// DragDelta is the amplified, clamped bend value used as the curve's control point y
	DragDelta float64

	// RawDelta is the last sanitized cumulative pull distance fed to the controller
	RawDelta float64

	// RotateAngle is the spinner rotation in degrees, always within [0, 360)
	RotateAngle float64

	// LabelAlpha is the label opacity, 0-255
	LabelAlpha uint8

	// DragTick is set by a drag update and consumed by the next render
	DragTick bool
}

// NewDragState returns the state of a freshly created header.
func NewDragState() DragState {
	return DragState{
		Status:     StatusNormal,
		LabelAlpha: MaxAlpha,
	}
}
