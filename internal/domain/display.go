package domain

import "image"

// Shape is the physical outline of a display.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeRound
)

// ParseShape maps a config string to a Shape. Unknown values are rectangular.
func ParseShape(s string) Shape {
	switch s {
	case "round", "circle", "circular":
		return ShapeRound
	default:
		return ShapeRect
	}
}

func (s Shape) String() string {
	if s == ShapeRound {
		return "round"
	}
	return "rect"
}

// Common display sizes.
var (
	PebbleRectSize  = DisplaySize{Width: 144, Height: 168}
	PebbleRoundSize = DisplaySize{Width: 180, Height: 180}
	Pixoo64         = DisplaySize{Width: Pixoo64Size, Height: Pixoo64Size}
)

// DisplaySize represents display dimensions.
type DisplaySize struct {
	Width  int
	Height int
}

// Bounds returns the display rectangle anchored at the origin.
func (d DisplaySize) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.Width, d.Height)
}

// Display describes the surface a watch face is rendered onto.
type Display struct {
	Size  DisplaySize
	Shape Shape
}

// NewDisplay creates a display description.
func NewDisplay(width, height int, shape Shape) Display {
	return Display{Size: DisplaySize{Width: width, Height: height}, Shape: shape}
}
