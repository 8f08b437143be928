package display

import (
	"context"

	"github.com/alinanorakari/supersimple/internal/domain"
	"github.com/alinanorakari/supersimple/internal/pixoo"
)

// Pixoo presents frames on a Pixoo64 panel. Frames of other sizes are
// letterboxed and scaled down to 64x64.
type Pixoo struct {
	client *pixoo.Client
	buf    *domain.Frame
}

// NewPixoo returns a target for the panel at ip. A zero port means the
// panel's default.
func NewPixoo(ip string, port int) *Pixoo {
	if port == 0 {
		port = pixoo.DefaultPort
	}
	return NewPixooWithClient(pixoo.NewClientWithPort(ip, port))
}

// NewPixooWithClient wraps an existing client.
func NewPixooWithClient(client *pixoo.Client) *Pixoo {
	return &Pixoo{client: client}
}

// Present implements Target.
func (p *Pixoo) Present(ctx context.Context, frame *domain.Frame) error {
	if pixoo.ValidateFrame(frame) == nil {
		return p.client.Present(ctx, frame)
	}

	if p.buf == nil {
		p.buf = domain.NewFrame(domain.Pixoo64Size, domain.Pixoo64Size)
	}
	p.buf.Clear()
	scaleInto(p.buf, frame)
	return p.client.Present(ctx, p.buf)
}

// Close is a no-op; the panel keeps showing the last frame.
func (p *Pixoo) Close() error { return nil }
