// Package domain contains core domain types for the watch face renderer.
package domain

import (
	"image"
	"image/color"
)

// Pixoo64Size is the default Pixoo64 display size (64x64).
const Pixoo64Size = 64

// BytesPerPixel is the number of bytes per pixel (RGB).
const BytesPerPixel = 3

// Frame represents a single frame of pixel data.
//
// Frame implements draw.Image so rasterizers and image encoders can work
// on it directly. Every pixel is opaque.
type Frame struct {
	Width  int
	Height int
	// Pixels is a flat array of RGB values: [r0,g0,b0, r1,g1,b1, ...]
	Pixels []byte
}

// NewFrame creates a new frame filled with black (0, 0, 0).
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]byte, width*height*BytesPerPixel),
	}
}

// NewFrameWithColor creates a new frame filled with the specified color.
func NewFrameWithColor(width, height int, color RGB) *Frame {
	f := NewFrame(width, height)
	f.Fill(color)
	return f
}

// NewFrameForDisplay creates a black frame sized for the display.
func NewFrameForDisplay(d Display) *Frame {
	return NewFrame(d.Size.Width, d.Size.Height)
}

// SetPixel sets a single pixel in the frame. Out of bounds coordinates are silently ignored.
func (f *Frame) SetPixel(x, y int, color RGB) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return
	}
	offset := (y*f.Width + x) * BytesPerPixel
	f.Pixels[offset] = color.R
	f.Pixels[offset+1] = color.G
	f.Pixels[offset+2] = color.B
}

// GetPixel returns the color at the specified coordinates, or nil if out of bounds.
func (f *Frame) GetPixel(x, y int) *RGB {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return nil
	}
	offset := (y*f.Width + x) * BytesPerPixel
	return &RGB{
		R: f.Pixels[offset],
		G: f.Pixels[offset+1],
		B: f.Pixels[offset+2],
	}
}

// BlendPixel composites color over the pixel with coverage in [0, 255].
func (f *Frame) BlendPixel(x, y int, color RGB, coverage uint8) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height || coverage == 0 {
		return
	}
	if coverage == 0xFF {
		f.SetPixel(x, y, color)
		return
	}
	offset := (y*f.Width + x) * BytesPerPixel
	a := uint16(coverage)
	f.Pixels[offset] = blend(f.Pixels[offset], color.R, a)
	f.Pixels[offset+1] = blend(f.Pixels[offset+1], color.G, a)
	f.Pixels[offset+2] = blend(f.Pixels[offset+2], color.B, a)
}

func blend(dst, src uint8, a uint16) uint8 {
	return uint8((uint16(src)*a + uint16(dst)*(0xFF-a) + 0x7F) / 0xFF)
}

// Fill fills the entire frame with the specified color.
func (f *Frame) Fill(color RGB) {
	for i := 0; i < f.Width*f.Height; i++ {
		offset := i * BytesPerPixel
		f.Pixels[offset] = color.R
		f.Pixels[offset+1] = color.G
		f.Pixels[offset+2] = color.B
	}
}

// Clear clears the frame to black (0, 0, 0).
func (f *Frame) Clear() {
	for i := range f.Pixels {
		f.Pixels[i] = 0
	}
}

// Clone creates a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	clone := &Frame{
		Width:  f.Width,
		Height: f.Height,
		Pixels: make([]byte, len(f.Pixels)),
	}
	copy(clone.Pixels, f.Pixels)
	return clone
}

// FillRect fills a rectangular area with the specified color.
func (f *Frame) FillRect(x, y, width, height int, color RGB) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			f.SetPixel(x+dx, y+dy, color)
		}
	}
}

// FillCircle fills a disc of the given radius without antialiasing.
// A radius of zero sets the center pixel only.
func (f *Frame) FillCircle(cx, cy, radius int, color RGB) {
	if radius < 0 {
		return
	}
	rr := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= rr {
				f.SetPixel(cx+dx, cy+dy, color)
			}
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm.
func (f *Frame) DrawLine(x0, y0, x1, y1 int, color RGB) {
	f.walkLine(x0, y0, x1, y1, func(x, y int) { f.SetPixel(x, y, color) })
}

// DrawThickLine draws a line with round caps by stamping discs along a
// Bresenham walk. Widths below 2 fall back to DrawLine.
func (f *Frame) DrawThickLine(x0, y0, x1, y1, width int, color RGB) {
	if width < 2 {
		f.DrawLine(x0, y0, x1, y1, color)
		return
	}
	radius := width / 2
	f.walkLine(x0, y0, x1, y1, func(x, y int) { f.FillCircle(x, y, radius, color) })
}

func (f *Frame) walkLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// ColorModel implements image.Image.
func (f *Frame) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (f *Frame) Bounds() image.Rectangle { return image.Rect(0, 0, f.Width, f.Height) }

// At implements image.Image.
func (f *Frame) At(x, y int) color.Color {
	p := f.GetPixel(x, y)
	if p == nil {
		return color.RGBA{}
	}
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xFF}
}

// Set implements draw.Image. Translucent colors are un-premultiplied; the
// frame itself stays opaque.
func (f *Frame) Set(x, y int, c color.Color) {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return
	}
	if a != 0xFFFF {
		r = r * 0xFFFF / a
		g = g * 0xFFFF / a
		b = b * 0xFFFF / a
	}
	f.SetPixel(x, y, RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)})
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
