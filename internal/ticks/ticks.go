// Package ticks lays out the hour marks around the dial.
package ticks

import (
	"errors"
	"fmt"
	"image"

	"github.com/alinanorakari/supersimple/internal/domain"
	"github.com/alinanorakari/supersimple/internal/geometry"
	"github.com/alinanorakari/supersimple/internal/trig"
)

// ErrUnsupportedTickCount is returned by the rectangular fixed layout for
// any count other than 1, 4 or 12.
var ErrUnsupportedTickCount = errors.New("unsupported tick count for rectangular layout")

// MaxCount is the largest tick count accepted from settings.
const MaxCount = 60

// Layout selects how ticks are placed.
type Layout int

const (
	// Circular spaces ticks evenly around the inscribed circle.
	Circular Layout = iota
	// RectangularFixed pins ticks to hand-tuned spots along the frame edge.
	RectangularFixed
)

func (l Layout) String() string {
	if l == RectangularFixed {
		return "rectangular"
	}
	return "circular"
}

// Tick is one filled marker.
type Tick struct {
	Center image.Point
	Radius int
}

// Style holds tick dimensions in pixels at full animation progress.
type Style struct {
	Inset      int
	HalfInset  int
	Radius     int
	HalfRadius int
}

// DefaultStyle returns the classic tick proportions.
func DefaultStyle() Style {
	return Style{Inset: 8, HalfInset: 7, Radius: 4, HalfRadius: 2}
}

// Positions lays out count ticks using DefaultStyle.
func Positions(count int, layout Layout, dial geometry.Dial, percent int) ([]Tick, error) {
	return DefaultStyle().Append(nil, count, layout, dial, percent)
}

// Append lays out count ticks and appends them to dst. Rectangular fixed
// layout applies only to rectangular displays; round displays always use
// the circular layout. percent scales both placement and tick size.
func (s Style) Append(dst []Tick, count int, layout Layout, dial geometry.Dial, percent int) ([]Tick, error) {
	if count <= 0 {
		return dst, nil
	}
	percent = min(max(percent, 0), 100)

	if layout == RectangularFixed && dial.Shape == domain.ShapeRect {
		return s.appendFixed(dst, count, dial, percent)
	}
	return s.appendCircular(dst, count, dial, percent), nil
}

func (s Style) appendCircular(dst []Tick, count int, dial geometry.Dial, percent int) []Tick {
	emphasize := count == 12
	for i := 0; i < count; i++ {
		inset, radius := s.Inset, s.Radius
		if emphasize && i%3 != 0 {
			inset, radius = s.HalfInset, s.HalfRadius
		}
		angle := int32(int64(trig.MaxAngle) * int64(i) / int64(count))
		dist := (dial.MaxRadius - inset) * percent / 100
		dst = append(dst, Tick{
			Center: geometry.Polar(dial.Center, dist, angle),
			Radius: scale(radius, percent),
		})
	}
	return dst
}

// group is a set of hour positions drawn together in the fixed layout.
type group []hourPos

// hourPos is a position on the frame edge relative to the dial center,
// measured in reference-display pixels.
type hourPos struct{ dx, dy int }

// Reference geometry of the 144x168 display the fixed offsets were tuned
// on, measured from the center to the tick inset line.
const (
	refHalfWidth  = 64
	refHalfHeight = 76
	refTopOffset  = 44
	refSideOffset = 37
)

var (
	groupTwelve = group{{0, -refHalfHeight}}
	groupFour   = group{
		{0, -refHalfHeight},
		{refHalfWidth, 0},
		{0, refHalfHeight},
		{-refHalfWidth, 0},
	}
	groupIntercardinal = group{
		{refTopOffset, -refHalfHeight},  // 1
		{refHalfWidth, -refSideOffset},  // 2
		{refHalfWidth, refSideOffset},   // 4
		{refTopOffset, refHalfHeight},   // 5
		{-refTopOffset, refHalfHeight},  // 7
		{-refHalfWidth, refSideOffset},  // 8
		{-refHalfWidth, -refSideOffset}, // 10
		{-refTopOffset, -refHalfHeight}, // 11
	}
)

// fixedGroups lists the groups drawn for each supported count. Larger
// counts include every group of the smaller ones.
var fixedGroups = map[int][]group{
	1:  {groupTwelve},
	4:  {groupFour, groupTwelve},
	12: {groupIntercardinal, groupFour, groupTwelve},
}

// FixedCount reports how many ticks the rectangular fixed layout draws for
// count, or an error for unsupported counts.
func FixedCount(count int) (int, error) {
	groups, ok := fixedGroups[count]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedTickCount, count)
	}
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	return n, nil
}

func (s Style) appendFixed(dst []Tick, count int, dial geometry.Dial, percent int) ([]Tick, error) {
	groups, ok := fixedGroups[count]
	if !ok {
		return dst, fmt.Errorf("%w: %d", ErrUnsupportedTickCount, count)
	}

	halfW := dial.Bounds.Dx()/2 - s.Inset
	halfH := dial.Bounds.Dy()/2 - s.Inset
	radius := scale(s.Radius, percent)
	for _, g := range groups {
		for _, p := range g {
			dx := p.dx * halfW / refHalfWidth
			dy := p.dy * halfH / refHalfHeight
			dst = append(dst, Tick{
				Center: image.Pt(
					dial.Center.X+dx*percent/100,
					dial.Center.Y+dy*percent/100,
				),
				Radius: radius,
			})
		}
	}
	return dst, nil
}

// scale shrinks n by percent, rounding up so a started animation never
// yields an invisible tick.
func scale(n, percent int) int {
	return (n*percent + 99) / 100
}
