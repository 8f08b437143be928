package geometry

import (
	"fmt"

	"github.com/alinanorakari/supersimple/internal/domain"
)

// RadiusMode selects how the animation drives the hand radius.
type RadiusMode int

const (
	// RadiusScaled grows the radius as a percentage of FinalRadius.
	RadiusScaled RadiusMode = iota
	// RadiusShrink starts from the dial radius and removes the remaining
	// animation shrink.
	RadiusShrink
)

// ParseRadiusMode reads "scaled" or "shrink".
func ParseRadiusMode(s string) (RadiusMode, error) {
	switch s {
	case "", "scaled":
		return RadiusScaled, nil
	case "shrink":
		return RadiusShrink, nil
	default:
		return 0, fmt.Errorf("unknown radius mode %q", s)
	}
}

func (m RadiusMode) String() string {
	if m == RadiusShrink {
		return "shrink"
	}
	return "scaled"
}

// Layout holds the hand dimensions in pixels.
type Layout struct {
	FinalRadius int
	HandWidth   int
	// OuterMargin is the gap between the face radius and the minute hand
	// tip.
	OuterMargin int
	InnerMargin int
	// HourMinRadius is the face radius the hour hand needs before it is
	// drawn at all.
	HourMinRadius int
	// HourShortening is the share of the radius, in percent, the hour
	// hand is shorter than the minute hand.
	HourShortening int
	PegRadius      int

	HourShadowOffset   int
	MinuteShadowOffset int

	Mode RadiusMode
}

// MarginFor is the outer margin for a hand width: 10 plus half the width,
// 13 for the classic 7px hands.
func MarginFor(handWidth int) int {
	return 10 + handWidth/2
}

// HourMinRadiusFor is the hour hand threshold for a hand width: 20 minus
// half the width, 17 for the classic 7px hands.
func HourMinRadiusFor(handWidth int) int {
	return 20 - handWidth/2
}

// DefaultLayout returns the classic proportions of the face.
func DefaultLayout() Layout {
	return Layout{
		FinalRadius:        88,
		HandWidth:          7,
		OuterMargin:        MarginFor(7),
		InnerMargin:        0,
		HourMinRadius:      HourMinRadiusFor(7),
		HourShortening:     30,
		PegRadius:          7 / 4,
		HourShadowOffset:   2,
		MinuteShadowOffset: 3,
		Mode:               RadiusScaled,
	}
}

// ForShape adapts the margins to the display shape. The inscribed circle
// of a rectangular display is small relative to the frame, so its margins
// shrink to two thirds.
func (l Layout) ForShape(shape domain.Shape) Layout {
	if shape == domain.ShapeRect {
		l.OuterMargin = l.OuterMargin * 2 / 3
		l.InnerMargin = l.InnerMargin * 2 / 3
		l.HourMinRadius = l.HourMinRadius * 2 / 3
	}
	return l
}
