package display

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/alinanorakari/supersimple/internal/domain"
	xdraw "golang.org/x/image/draw"
)

// PNG writes each frame to a file, replacing it atomically.
type PNG struct {
	Path  string
	Scale int
}

// NewPNG returns a PNG target. Scale values below 1 mean 1.
func NewPNG(path string, scale int) *PNG {
	return &PNG{Path: path, Scale: max(scale, 1)}
}

// Present encodes the frame and renames it over Path.
func (p *PNG) Present(_ context.Context, frame *domain.Frame) error {
	if p.Path == "" {
		return fmt.Errorf("png target has no path")
	}

	tmp, err := os.CreateTemp(filepath.Dir(p.Path), ".frame-*.png")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, frame, p.Scale); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), p.Path); err != nil {
		return fmt.Errorf("failed to write %s: %w", p.Path, err)
	}
	return nil
}

// Close is a no-op.
func (p *PNG) Close() error { return nil }

// Encode writes frame as PNG, upscaled by an integer factor.
func Encode(w io.Writer, frame *domain.Frame, scale int) error {
	scale = max(scale, 1)
	img := image.NewRGBA(image.Rect(0, 0, frame.Width*scale, frame.Height*scale))
	xdraw.NearestNeighbor.Scale(img, img.Bounds(), frame, frame.Bounds(), xdraw.Src, nil)

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
