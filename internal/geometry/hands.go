package geometry

import (
	"image"

	"github.com/alinanorakari/supersimple/internal/animation"
	"github.com/alinanorakari/supersimple/internal/clock"
)

// Segment is one hand stroke from its inner margin to its tip.
type Segment struct {
	Angle   int32
	Inner   image.Point
	Outer   image.Point
	Length  int
	Visible bool
}

// Offset returns the segment moved down by dy pixels.
func (s Segment) Offset(dy int) Segment {
	s.Inner.Y += dy
	s.Outer.Y += dy
	return s
}

// HandSet is everything a render pass needs to stroke the hands.
type HandSet struct {
	Radius int
	Minute Segment
	Hour   Segment
	Peg    image.Point
}

// Radius is the animated face radius, clamped to the dial. In scaled mode
// the target radius is FinalRadius or the dial radius, whichever is
// smaller, so small dials keep growing until the animation ends.
func Radius(dial Dial, anim animation.State, l Layout) int {
	pct := min(max(anim.Percent, 0), 100)

	var r int
	switch l.Mode {
	case RadiusShrink:
		shrink := dial.MaxRadius * (100 - pct) / 100
		r = dial.MaxRadius - shrink
	default:
		r = min(l.FinalRadius, dial.MaxRadius) * pct / 100
	}
	return min(max(r, 0), dial.MaxRadius)
}

// Hands computes both hand segments for the given time and animation state.
// The hour hand is hidden until the radius exceeds HourMinRadius.
func Hands(t clock.TimeOfDay, anim animation.State, dial Dial, l Layout) HandSet {
	r := Radius(dial, anim, l)
	offset := anim.AngleOffset()

	minuteLen := r - l.OuterMargin
	hourLen := int(float64(r-l.OuterMargin) - float64(r)*float64(l.HourShortening)/100)

	hs := HandSet{
		Radius: r,
		Minute: segment(dial, MinuteAngle(t)-offset, l.InnerMargin, minuteLen),
		Hour:   segment(dial, HourAngle(t)+offset, l.InnerMargin, hourLen),
		Peg:    dial.Center,
	}
	hs.Hour.Visible = hs.Hour.Visible && hs.Minute.Visible && r > l.HourMinRadius
	return hs
}

func segment(dial Dial, angle int32, inner, outer int) Segment {
	return Segment{
		Angle:   angle,
		Inner:   Polar(dial.Center, inner, angle),
		Outer:   Polar(dial.Center, outer, angle),
		Length:  outer,
		Visible: outer > inner,
	}
}
