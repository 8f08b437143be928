package geometry

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alinanorakari/supersimple/internal/animation"
	"github.com/alinanorakari/supersimple/internal/clock"
	"github.com/alinanorakari/supersimple/internal/domain"
	"github.com/alinanorakari/supersimple/internal/trig"
)

func roundDial() Dial {
	return NewDial(domain.NewDisplay(180, 180, domain.ShapeRound))
}

func TestNewDial(t *testing.T) {
	d := roundDial()
	assert.Equal(t, image.Pt(90, 90), d.Center)
	assert.Equal(t, 90, d.MaxRadius)

	rect := NewDial(domain.Display{Size: domain.PebbleRectSize, Shape: domain.ShapeRect})
	assert.Equal(t, image.Pt(72, 84), rect.Center)
	assert.Equal(t, 72, rect.MaxRadius)
	assert.Equal(t, image.Rect(0, 12, 144, 156), rect.Square())
	assert.Equal(t, image.Rect(8, 20, 136, 148), rect.Inset(8))
}

func TestHandsAtThreeOClock(t *testing.T) {
	d := roundDial()
	hs := Hands(clock.TimeOfDay{Hour: 3}, animation.Settled, d, DefaultLayout())

	assert.Equal(t, 88, hs.Radius)
	assert.True(t, hs.Minute.Visible)
	assert.True(t, hs.Hour.Visible)

	// Minute hand straight up to twelve.
	assert.Equal(t, d.Center, hs.Minute.Inner)
	assert.Equal(t, image.Pt(90, 90-75), hs.Minute.Outer)
	assert.Equal(t, 75, hs.Minute.Length)

	// Hour hand exactly on three.
	assert.Equal(t, d.Center, hs.Hour.Inner)
	assert.Equal(t, image.Pt(90+48, 90), hs.Hour.Outer)
	assert.Equal(t, 48, hs.Hour.Length)
	assert.Equal(t, d.Center, hs.Peg)
}

func TestHandsHalfPastThree(t *testing.T) {
	d := roundDial()
	hs := Hands(clock.TimeOfDay{Hour: 3, Minute: 30}, animation.Settled, d, DefaultLayout())

	// Minute hand straight down.
	assert.Equal(t, image.Pt(90, 90+75), hs.Minute.Outer)
	// Hour hand below the three, right of six.
	assert.Greater(t, hs.Hour.Outer.X, d.Center.X)
	assert.Greater(t, hs.Hour.Outer.Y, d.Center.Y)
	assert.Equal(t, HourAngle(clock.TimeOfDay{Hour: 3, Minute: 30}), hs.Hour.Angle)
}

func TestHandsDegenerateAtLaunch(t *testing.T) {
	hs := Hands(clock.TimeOfDay{Hour: 10, Minute: 10}, animation.State{}, roundDial(), DefaultLayout())
	assert.Equal(t, 0, hs.Radius)
	assert.False(t, hs.Minute.Visible)
	assert.False(t, hs.Hour.Visible)
}

func TestHourHandDisappearsBeforeMinuteHand(t *testing.T) {
	l := DefaultLayout()
	d := roundDial()
	// Radius 14: minute hand is 1px long, hour hand is shorter than zero.
	anim := animation.State{Percent: 17, Animating: true}
	hs := Hands(clock.TimeOfDay{}, anim, d, l)
	assert.Equal(t, 14, hs.Radius)
	assert.True(t, hs.Minute.Visible)
	assert.False(t, hs.Hour.Visible)
}

func TestHandMarginThresholds(t *testing.T) {
	l := DefaultLayout()
	assert.Equal(t, 13, l.OuterMargin)
	assert.Equal(t, 17, l.HourMinRadius)

	d := roundDial()
	l.HourShortening = 0
	tests := []struct {
		percent int
		radius  int
		minute  bool
		hour    bool
	}{
		{percent: 15, radius: 13, minute: false, hour: false},
		{percent: 16, radius: 14, minute: true, hour: false},
		// Without shortening the hour hand has length at radius 17 but
		// still waits for the radius to pass 17.
		{percent: 20, radius: 17, minute: true, hour: false},
		{percent: 21, radius: 18, minute: true, hour: true},
	}
	for _, tt := range tests {
		hs := Hands(clock.TimeOfDay{}, animation.State{Percent: tt.percent}, d, l)
		assert.Equal(t, tt.radius, hs.Radius, "percent %d", tt.percent)
		assert.Equal(t, tt.minute, hs.Minute.Visible, "minute at radius %d", tt.radius)
		assert.Equal(t, tt.hour, hs.Hour.Visible, "hour at radius %d", tt.radius)
	}
}

func TestMarginsFollowHandWidth(t *testing.T) {
	assert.Equal(t, 13, MarginFor(7))
	assert.Equal(t, 14, MarginFor(9))
	assert.Equal(t, 17, HourMinRadiusFor(7))
	assert.Equal(t, 16, HourMinRadiusFor(9))
}

func TestHandsDivergeWhileAnimating(t *testing.T) {
	anim := animation.State{Percent: 60, Animating: true}
	tod := clock.TimeOfDay{Hour: 3}
	hs := Hands(tod, anim, roundDial(), DefaultLayout())

	off := anim.AngleOffset()
	assert.Greater(t, off, int32(0))
	assert.Equal(t, MinuteAngle(tod)-off, hs.Minute.Angle)
	assert.Equal(t, HourAngle(tod)+off, hs.Hour.Angle)

	settled := Hands(tod, animation.State{Percent: 60}, roundDial(), DefaultLayout())
	assert.Equal(t, MinuteAngle(tod), settled.Minute.Angle)
	assert.Equal(t, HourAngle(tod), settled.Hour.Angle)
}

func TestRadiusModes(t *testing.T) {
	d := roundDial()
	l := DefaultLayout()

	assert.Equal(t, 44, Radius(d, animation.State{Percent: 50}, l))

	l.Mode = RadiusShrink
	assert.Equal(t, 45, Radius(d, animation.State{Percent: 50}, l))
	assert.Equal(t, 90, Radius(d, animation.Settled, l))
	assert.Equal(t, 0, Radius(d, animation.State{}, l))
}

func TestRadiusClampedToDial(t *testing.T) {
	rect := NewDial(domain.Display{Size: domain.PebbleRectSize, Shape: domain.ShapeRect})
	l := DefaultLayout().ForShape(domain.ShapeRect)
	assert.Equal(t, 72, Radius(rect, animation.Settled, l))
	assert.Equal(t, 8, l.OuterMargin)
	assert.Equal(t, 11, l.HourMinRadius)

	hs := Hands(clock.TimeOfDay{Minute: 15}, animation.Settled, rect, l)
	assert.Equal(t, image.Pt(72+64, 84), hs.Minute.Outer)
	assert.True(t, rect.Bounds.Max.X > hs.Minute.Outer.X)
}

func TestScaledRadiusGrowsThroughWholeIntroOnSmallDials(t *testing.T) {
	l := DefaultLayout()
	rect := NewDial(domain.Display{Size: domain.PebbleRectSize, Shape: domain.ShapeRect})
	pixoo := NewDial(domain.NewDisplay(64, 64, domain.ShapeRound))

	assert.Equal(t, 36, Radius(rect, animation.State{Percent: 50}, l))
	assert.Equal(t, 64, Radius(rect, animation.State{Percent: 90}, l))
	assert.Equal(t, 16, Radius(pixoo, animation.State{Percent: 50}, l))
	assert.Equal(t, 28, Radius(pixoo, animation.State{Percent: 90}, l))
	assert.Equal(t, 32, Radius(pixoo, animation.Settled, l))

	prev := -1
	for pct := 0; pct <= 100; pct++ {
		r := Radius(pixoo, animation.State{Percent: pct}, l)
		assert.GreaterOrEqual(t, r, prev)
		prev = r
	}
	assert.Greater(t, Radius(pixoo, animation.State{Percent: 99}, l), Radius(pixoo, animation.State{Percent: 50}, l))
}

func TestDialInOffsetBounds(t *testing.T) {
	d := DialIn(image.Rect(100, 50, 280, 230), domain.ShapeRound)
	assert.Equal(t, image.Pt(190, 140), d.Center)
	assert.Equal(t, 90, d.MaxRadius)
	assert.Equal(t, image.Rect(100, 50, 280, 230), d.Square())
}

func TestSegmentOffset(t *testing.T) {
	s := Segment{Inner: image.Pt(1, 2), Outer: image.Pt(3, 4)}
	moved := s.Offset(3)
	assert.Equal(t, image.Pt(1, 5), moved.Inner)
	assert.Equal(t, image.Pt(3, 7), moved.Outer)
	assert.Equal(t, image.Pt(1, 2), s.Inner)
}

func TestParseRadiusMode(t *testing.T) {
	m, err := ParseRadiusMode("shrink")
	assert.NoError(t, err)
	assert.Equal(t, RadiusShrink, m)
	assert.Equal(t, "shrink", m.String())

	_, err = ParseRadiusMode("wobble")
	assert.Error(t, err)
}

func TestMaxAngleOffsetIsSmall(t *testing.T) {
	assert.Less(t, animation.MaxAngleOffset, trig.MaxAngle/12)
}
