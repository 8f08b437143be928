// Package clock tracks the time of day shown by the face and produces
// periodic tick events.
package clock

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is the hour and minute the hands point at.
// Hour is always normalized to the 12-hour range 0..11.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// FromTime extracts the 12-hour time of day from t.
func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour() % 12, Minute: t.Minute()}
}

// New builds a TimeOfDay from a 24-hour hour and a minute.
func New(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("hour %d out of range", hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("minute %d out of range", minute)
	}
	return TimeOfDay{Hour: hour % 12, Minute: minute}, nil
}

// Parse reads "H:MM" or "HH:MM" in 24-hour notation.
func Parse(s string) (TimeOfDay, error) {
	hs, ms, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return TimeOfDay{}, fmt.Errorf("parse time %q: expected H:MM", s)
	}
	hour, err := strconv.Atoi(hs)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	minute, err := strconv.Atoi(ms)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	return New(hour, minute)
}

// String formats the time as a 12-hour clock reading, "12:05" for 0:05.
func (t TimeOfDay) String() string {
	h := t.Hour
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d", h, t.Minute)
}

// Clock provides the current time. Tests inject a fixed clock.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed always reports the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }
