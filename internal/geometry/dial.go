package geometry

import (
	"image"

	"github.com/alinanorakari/supersimple/internal/domain"
)

// Dial is the circle the face is laid out on.
type Dial struct {
	Bounds image.Rectangle
	Shape  domain.Shape
	Center image.Point
	// MaxRadius is the radius of the largest circle inscribed in Bounds.
	MaxRadius int
}

// NewDial fits a dial to the display. Rectangular displays use the square
// centered in the frame.
func NewDial(d domain.Display) Dial {
	return DialIn(d.Size.Bounds(), d.Shape)
}

// DialIn fits a dial to bounds, which need not start at the origin.
func DialIn(b image.Rectangle, shape domain.Shape) Dial {
	side := min(b.Dx(), b.Dy())
	center := image.Pt(b.Min.X+b.Dx()/2, b.Min.Y+b.Dy()/2)
	return Dial{
		Bounds:    b,
		Shape:     shape,
		Center:    center,
		MaxRadius: side / 2,
	}
}

// Square is the centered square sub-region used for rectangular displays.
func (d Dial) Square() image.Rectangle {
	r := d.MaxRadius
	return image.Rect(d.Center.X-r, d.Center.Y-r, d.Center.X+r, d.Center.Y+r)
}

// Inset returns the square shrunk by n pixels on every side.
func (d Dial) Inset(n int) image.Rectangle {
	return d.Square().Inset(n)
}
