package render

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/alinanorakari/supersimple/internal/domain"
	"github.com/alinanorakari/supersimple/internal/trig"
)

// arcSteps is the number of polygon vertices used for a full circle.
const arcSteps = 32

type unitVec struct{ x, y float32 }

// unitCircle holds arcSteps points on the unit circle, counterclockwise
// from +x, taken from the fixed-point lookup.
var unitCircle [arcSteps]unitVec

func init() {
	for i := range unitCircle {
		a := int32(trig.MaxAngle * i / arcSteps)
		unitCircle[i] = unitVec{
			x: float32(trig.Cos(a)) / trig.MaxRatio,
			y: float32(trig.Sin(a)) / trig.MaxRatio,
		}
	}
}

// Canvas is a Surface backed by a domain.Frame. Antialiased shapes are
// rasterized into a coverage mask and blended into the frame; the mask and
// rasterizer are reused across draws.
type Canvas struct {
	frame  *domain.Frame
	fill   domain.RGB
	stroke domain.RGB
	width  int
	aa     bool

	raster vector.Rasterizer
	mask   *image.Alpha
}

// NewCanvas creates a canvas drawing onto f. Antialiasing starts enabled.
func NewCanvas(f *domain.Frame) *Canvas {
	return &Canvas{
		frame: f,
		width: 1,
		aa:    true,
		mask:  image.NewAlpha(f.Bounds()),
	}
}

// Frame returns the frame being drawn on.
func (c *Canvas) Frame() *domain.Frame { return c.frame }

func (c *Canvas) Bounds() image.Rectangle { return c.frame.Bounds() }

func (c *Canvas) SetFillColor(col domain.RGB)   { c.fill = col }
func (c *Canvas) SetStrokeColor(col domain.RGB) { c.stroke = col }
func (c *Canvas) SetAntialiased(on bool)        { c.aa = on }

func (c *Canvas) SetStrokeWidth(width int) {
	c.width = max(width, 1)
}

func (c *Canvas) FillRect(r image.Rectangle) {
	r = r.Intersect(c.Bounds())
	c.frame.FillRect(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), c.fill)
}

func (c *Canvas) FillCircle(center image.Point, radius int) {
	if radius < 0 {
		return
	}
	if !c.aa {
		c.frame.FillCircle(center.X, center.Y, radius, c.fill)
		return
	}

	cx, cy := float32(center.X)+0.5, float32(center.Y)+0.5
	r := float32(radius) + 0.5
	c.begin()
	c.raster.MoveTo(cx+r, cy)
	for i := 1; i < arcSteps; i++ {
		u := unitCircle[i]
		c.raster.LineTo(cx+r*u.x, cy+r*u.y)
	}
	c.raster.ClosePath()

	pad := radius + 2
	c.blend(image.Rect(center.X-pad, center.Y-pad, center.X+pad+1, center.Y+pad+1), c.fill)
}

func (c *Canvas) DrawLine(p0, p1 image.Point) {
	if !c.aa {
		c.frame.DrawThickLine(p0.X, p0.Y, p1.X, p1.Y, c.width, c.stroke)
		return
	}

	hw := float32(c.width) / 2
	ax, ay := float32(p0.X)+0.5, float32(p0.Y)+0.5
	bx, by := float32(p1.X)+0.5, float32(p1.Y)+0.5

	dx, dy := bx-ax, by-ay
	length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if length == 0 {
		// A zero-length stroke is just its round cap.
		dx, dy = 1, 0
	} else {
		dx, dy = dx/length, dy/length
	}
	nx, ny := -dy, dx

	c.begin()
	c.raster.MoveTo(ax+nx*hw, ay+ny*hw)
	c.raster.LineTo(bx+nx*hw, by+ny*hw)
	c.cap(bx, by, nx, ny, dx, dy, hw)
	c.raster.LineTo(ax-nx*hw, ay-ny*hw)
	c.cap(ax, ay, -nx, -ny, -dx, -dy, hw)
	c.raster.ClosePath()

	pad := c.width/2 + 2
	box := image.Rect(p0.X, p0.Y, p0.X+1, p0.Y+1).
		Union(image.Rect(p1.X, p1.Y, p1.X+1, p1.Y+1)).
		Inset(-pad)
	c.blend(box, c.stroke)
}

// cap adds a half circle around (cx, cy) from the +n side through the +d
// side to the -n side.
func (c *Canvas) cap(cx, cy, nx, ny, dx, dy, r float32) {
	half := arcSteps / 2
	for i := 1; i <= half; i++ {
		u := unitCircle[i]
		vx := nx*u.x + dx*u.y
		vy := ny*u.x + dy*u.y
		c.raster.LineTo(cx+r*vx, cy+r*vy)
	}
}

func (c *Canvas) begin() {
	b := c.Bounds()
	c.raster.Reset(b.Dx(), b.Dy())
	c.raster.DrawOp = draw.Src
}

// blend rasterizes the current path into the mask and composites col into
// the frame wherever the mask has coverage inside box.
func (c *Canvas) blend(box image.Rectangle, col domain.RGB) {
	c.raster.Draw(c.mask, c.mask.Bounds(), image.Opaque, image.Point{})

	box = box.Intersect(c.Bounds())
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			if a := c.mask.AlphaAt(x, y).A; a > 0 {
				c.frame.BlendPixel(x, y, col, a)
			}
		}
	}
}

var _ Surface = (*Canvas)(nil)
