// Package render composes watch face frames.
package render

import (
	"github.com/alinanorakari/supersimple/internal/animation"
	"github.com/alinanorakari/supersimple/internal/clock"
	"github.com/alinanorakari/supersimple/internal/domain"
	"github.com/alinanorakari/supersimple/internal/face"
	"github.com/alinanorakari/supersimple/internal/geometry"
	"github.com/alinanorakari/supersimple/internal/ticks"
)

// Scene contains all data needed to render a frame.
type Scene struct {
	Time    clock.TimeOfDay
	Anim    animation.State
	Colors  face.ColorSet
	Options face.OptionSet
	Shape   domain.Shape

	// Layout overrides the hand dimensions. The zero value selects
	// geometry.DefaultLayout adapted to Shape.
	Layout geometry.Layout
	// TickStyle overrides tick dimensions. The zero value selects
	// ticks.DefaultStyle.
	TickStyle ticks.Style
}

// Report summarizes what a Compose call drew.
type Report struct {
	Ticks      int
	MinuteHand bool
	HourHand   bool
	Shadows    bool
	TickLayout error
	Radius     int
}

// Compositor draws scenes. It keeps scratch buffers between frames, so a
// single Compositor must not be shared across goroutines.
type Compositor struct {
	ticks []ticks.Tick
}

// Compose draws a scene with a throwaway compositor.
func Compose(s Surface, sc Scene) Report {
	var c Compositor
	return c.Compose(s, sc)
}

// Compose paints sc onto s in a fixed order: background, ticks, shadows,
// hour hand, minute hand, peg. Hands whose length does not exceed their
// inner margin are skipped together with their shadows.
func (c *Compositor) Compose(s Surface, sc Scene) Report {
	var rep Report

	bounds := s.Bounds()
	dial := geometry.DialIn(bounds, sc.Shape)
	layout := sc.Layout
	if layout == (geometry.Layout{}) {
		layout = geometry.DefaultLayout().ForShape(sc.Shape)
	}
	style := sc.TickStyle
	if style == (ticks.Style{}) {
		style = ticks.DefaultStyle()
	}

	s.SetAntialiased(true)
	s.SetFillColor(sc.Colors.Background.RGB())
	s.FillRect(bounds)

	if sc.Options.TickCount > 0 {
		var err error
		c.ticks, err = style.Append(c.ticks[:0], sc.Options.TickCount, sc.Options.TickLayout(), dial, sc.Anim.Percent)
		rep.TickLayout = err
		s.SetFillColor(sc.Colors.Tick.RGB())
		for _, tk := range c.ticks {
			if tk.Radius <= 0 {
				continue
			}
			s.FillCircle(tk.Center, tk.Radius)
			rep.Ticks++
		}
	}

	hands := geometry.Hands(sc.Time, sc.Anim, dial, layout)
	rep.Radius = hands.Radius
	rep.HourHand = hands.Hour.Visible
	rep.MinuteHand = hands.Minute.Visible
	s.SetStrokeWidth(layout.HandWidth)

	if sc.Options.ShadowsEnabled && (hands.Hour.Visible || hands.Minute.Visible) {
		rep.Shadows = true
		s.SetStrokeColor(sc.Colors.Shadow().RGB())
		if hands.Hour.Visible {
			line(s, hands.Hour.Offset(layout.HourShadowOffset))
		}
		if hands.Minute.Visible {
			line(s, hands.Minute.Offset(layout.MinuteShadowOffset))
		}
	}

	if hands.Hour.Visible {
		s.SetStrokeColor(sc.Colors.HourHand.RGB())
		line(s, hands.Hour)
	}
	if hands.Minute.Visible {
		s.SetStrokeColor(sc.Colors.MinuteHand.RGB())
		line(s, hands.Minute)
	}

	s.SetFillColor(sc.Colors.Peg.RGB())
	s.FillCircle(hands.Peg, layout.PegRadius)

	return rep
}

func line(s Surface, seg geometry.Segment) {
	s.DrawLine(seg.Inner, seg.Outer)
}

// Renderer owns a frame, a canvas over it and a compositor, and reuses all
// three between renders.
type Renderer struct {
	display    domain.Display
	frame      *domain.Frame
	canvas     *Canvas
	compositor Compositor
}

// NewRenderer creates a renderer for the display.
func NewRenderer(d domain.Display) *Renderer {
	f := domain.NewFrameForDisplay(d)
	return &Renderer{display: d, frame: f, canvas: NewCanvas(f)}
}

// Display returns the display the renderer draws for.
func (r *Renderer) Display() domain.Display { return r.display }

// Render composes sc into the renderer's frame and returns it. The frame
// is overwritten by the next call; Clone it to keep a copy.
func (r *Renderer) Render(sc Scene) (*domain.Frame, Report) {
	sc.Shape = r.display.Shape
	rep := r.compositor.Compose(r.canvas, sc)
	return r.frame, rep
}

// RenderFrame renders one scene into a new frame.
func RenderFrame(d domain.Display, sc Scene) *domain.Frame {
	f, _ := NewRenderer(d).Render(sc)
	return f
}
