// Package display presents rendered watch face frames on output targets.
package display

import (
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/alinanorakari/supersimple/internal/domain"
	xdraw "golang.org/x/image/draw"
)

// Target shows frames. Present is called from the watch face loop only.
type Target interface {
	Present(ctx context.Context, frame *domain.Frame) error
	Close() error
}

// Kind names a target type in configuration.
type Kind string

const (
	KindPNG         Kind = "png"
	KindPixoo       Kind = "pixoo"
	KindFramebuffer Kind = "framebuffer"
	KindTerminal    Kind = "terminal"
	KindNone        Kind = "none"
)

// Options configures Open.
type Options struct {
	Kind Kind

	// PNG
	Path  string
	Scale int

	// Pixoo
	PixooIP   string
	PixooPort int

	// Framebuffer
	Device string

	// Terminal; OnQuit runs when the user presses q, Esc or Ctrl-C.
	OnQuit func()
}

// Open creates the target described by opts.
func Open(opts Options) (Target, error) {
	switch Kind(strings.ToLower(string(opts.Kind))) {
	case KindPNG:
		return NewPNG(opts.Path, opts.Scale), nil
	case KindPixoo:
		if opts.PixooIP == "" {
			return nil, fmt.Errorf("pixoo target requires an IP address")
		}
		return NewPixoo(opts.PixooIP, opts.PixooPort), nil
	case KindFramebuffer:
		return OpenFramebuffer(opts.Device)
	case KindTerminal:
		return NewTerminal(opts.OnQuit)
	case KindNone, "":
		return Discard{}, nil
	default:
		return nil, fmt.Errorf("unknown display target %q", opts.Kind)
	}
}

// Discard drops every frame.
type Discard struct{}

func (Discard) Present(context.Context, *domain.Frame) error { return nil }
func (Discard) Close() error                                 { return nil }

// fit returns the largest rectangle with src's aspect ratio centered in dst.
func fit(src, dst image.Rectangle) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	dw, dh := dst.Dx(), dst.Dy()
	if sw <= 0 || sh <= 0 || dw <= 0 || dh <= 0 {
		return image.Rectangle{}
	}

	w, h := dw, sh*dw/sw
	if h > dh {
		w, h = sw*dh/sh, dh
	}
	x := dst.Min.X + (dw-w)/2
	y := dst.Min.Y + (dh-h)/2
	return image.Rect(x, y, x+w, y+h)
}

// scaleInto draws frame into dst, aspect-fitted and nearest-neighbor
// scaled, leaving the letterbox area untouched.
func scaleInto(dst xdraw.Image, frame *domain.Frame) {
	r := fit(frame.Bounds(), dst.Bounds())
	if r.Empty() {
		return
	}
	xdraw.NearestNeighbor.Scale(dst, r, frame, frame.Bounds(), xdraw.Src, nil)
}
