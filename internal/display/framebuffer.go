package display

import (
	"context"
	"image"
	"image/color"
	"image/draw"

	fb "github.com/gonutz/framebuffer"

	"github.com/alinanorakari/supersimple/internal/domain"
)

// DefaultFramebuffer is the Linux framebuffer device path.
const DefaultFramebuffer = "/dev/fb0"

// Framebuffer blits frames to a Linux framebuffer device.
type Framebuffer struct {
	dev     draw.Image
	closeFn func()
}

// OpenFramebuffer opens the device at path (DefaultFramebuffer when empty).
func OpenFramebuffer(path string) (*Framebuffer, error) {
	if path == "" {
		path = DefaultFramebuffer
	}
	dev, err := fb.Open(path)
	if err != nil {
		return nil, err
	}
	return &Framebuffer{dev: dev, closeFn: func() { dev.Close() }}, nil
}

// Present clears the device and blits the frame aspect-fitted.
func (f *Framebuffer) Present(_ context.Context, frame *domain.Frame) error {
	bounds := f.dev.Bounds()
	draw.Draw(f.dev, bounds, &image.Uniform{C: color.Black}, image.Point{}, draw.Src)
	blit(f.dev, frame)
	return nil
}

// Close releases the device.
func (f *Framebuffer) Close() error {
	if f.closeFn != nil {
		f.closeFn()
		f.closeFn = nil
	}
	return nil
}

// blit writes frame into dst using nearest-neighbor sampling.
func blit(dst draw.Image, frame *domain.Frame) {
	r := fit(frame.Bounds(), dst.Bounds())
	w, h := r.Dx(), r.Dy()
	for y := 0; y < h; y++ {
		sy := (y * frame.Height) / h
		for x := 0; x < w; x++ {
			sx := (x * frame.Width) / w
			p := frame.GetPixel(sx, sy)
			if p == nil {
				continue
			}
			dst.Set(r.Min.X+x, r.Min.Y+y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xFF})
		}
	}
}
