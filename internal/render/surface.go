package render

import (
	"image"

	"github.com/alinanorakari/supersimple/internal/domain"
)

// Surface is the drawing context the compositor paints onto. It exposes
// only the primitives a watch face needs.
type Surface interface {
	// Bounds returns the drawable area.
	Bounds() image.Rectangle

	SetFillColor(c domain.RGB)
	SetStrokeColor(c domain.RGB)
	SetStrokeWidth(width int)
	SetAntialiased(on bool)

	// FillRect fills r with the fill color.
	FillRect(r image.Rectangle)
	// FillCircle fills a disc with the fill color.
	FillCircle(center image.Point, radius int)
	// DrawLine strokes a segment with round caps using the stroke color
	// and width.
	DrawLine(p0, p1 image.Point)
}
