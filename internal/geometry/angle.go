// Package geometry converts a time of day and animation state into pixel
// coordinates for the hands of the face.
package geometry

import (
	"image"
	"math"

	"github.com/alinanorakari/supersimple/internal/clock"
	"github.com/alinanorakari/supersimple/internal/trig"
)

// MinuteAngle is the minute hand angle: minute/60 of a full turn.
func MinuteAngle(t clock.TimeOfDay) int32 {
	return int32(trig.MaxAngle * t.Minute / 60)
}

// HourAngle is the hour hand angle including the creep through the hour.
func HourAngle(t clock.TimeOfDay) int32 {
	return int32(math.Round(hourAngle(t)))
}

// hourAngle accumulates in floating point so the minute contribution is
// exact: at 3:30 the result is precisely halfway between 3 and 4.
func hourAngle(t clock.TimeOfDay) float64 {
	const full = float64(trig.MaxAngle)
	hour := full * float64(t.Hour%12) / 12
	minute := full * float64(t.Minute) / 60
	return hour + (minute/full)*(full/12)
}

// Polar places a point at radius pixels from center, clockwise from twelve
// o'clock. Coordinates truncate toward zero like the fixed-point lookups.
func Polar(center image.Point, radius int, angle int32) image.Point {
	r := int64(radius)
	return image.Point{
		X: center.X + int(int64(trig.Sin(angle))*r/trig.MaxRatio),
		Y: center.Y - int(int64(trig.Cos(angle))*r/trig.MaxRatio),
	}
}
