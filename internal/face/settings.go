// Package face holds the configurable colors and options of the watch face.
package face

import (
	"context"
	"errors"
	"fmt"

	"github.com/alinanorakari/supersimple/internal/domain"
	"github.com/alinanorakari/supersimple/internal/shadow"
	"github.com/alinanorakari/supersimple/internal/storage"
	"github.com/alinanorakari/supersimple/internal/ticks"
)

// MaxColor is the largest packed 0xRRGGBB value.
const MaxColor = 0xFFFFFF

// ColorSet is the active palette. The shadow color is derived from the
// background and cannot be set on its own.
type ColorSet struct {
	Background domain.Color8
	MinuteHand domain.Color8
	HourHand   domain.Color8
	Peg        domain.Color8
	Tick       domain.Color8

	shadow domain.Color8
}

// Shadow returns the shadow color derived from the background.
func (c ColorSet) Shadow() domain.Color8 { return c.shadow }

// WithBackground returns the set with a new background and its shadow.
func (c ColorSet) WithBackground(bg domain.Color8) ColorSet {
	c.Background = bg
	c.shadow = shadow.For(bg)
	return c
}

// OptionSet holds the toggles of the face.
type OptionSet struct {
	ShadowsEnabled   bool
	TickCount        int
	RectangularTicks bool
}

// TickLayout maps the rectangular toggle to a tick layout.
func (o OptionSet) TickLayout() ticks.Layout {
	if o.RectangularTicks {
		return ticks.RectangularFixed
	}
	return ticks.Circular
}

// DefaultColors is the palette used for fields that were never configured.
func DefaultColors() ColorSet {
	return ColorSet{
		MinuteHand: domain.Color8White,
		HourHand:   domain.Color8Red,
		Peg:        domain.Color8DarkGray,
		Tick:       domain.Color8White,
	}.WithBackground(domain.Color8Black)
}

// DefaultOptions are the toggles used for fields that were never configured.
func DefaultOptions() OptionSet {
	return OptionSet{}
}

// Update is a partial settings change keyed by field. Values are raw
// integers: packed RGB for colors, 0 or nonzero for toggles, a small count
// for ticks.
type Update map[Key]int32

// SlotStore is the durable storage the settings persist to.
type SlotStore interface {
	ReadSlot(ctx context.Context, slot int) (int32, error)
	WriteSlot(ctx context.Context, slot int, value int32) error
}

// Result reports what an Apply call did.
type Result struct {
	Applied  []Key
	Rejected []Key
	// Err collects persistence failures. The in-memory value is applied
	// regardless.
	Err error
}

// Changed reports whether any field was applied.
func (r Result) Changed() bool { return len(r.Applied) > 0 }

// Settings owns the active ColorSet and OptionSet.
type Settings struct {
	colors     ColorSet
	options    OptionSet
	store      SlotStore
	invalidate func()
}

// NewSettings creates settings holding the defaults. store may be nil to
// keep settings in memory only. invalidate is called once per update that
// changed anything.
func NewSettings(store SlotStore, invalidate func()) *Settings {
	if invalidate == nil {
		invalidate = func() {}
	}
	return &Settings{
		colors:     DefaultColors(),
		options:    DefaultOptions(),
		store:      store,
		invalidate: invalidate,
	}
}

// Colors returns the active palette.
func (s *Settings) Colors() ColorSet { return s.colors }

// Options returns the active toggles.
func (s *Settings) Options() OptionSet { return s.options }

// Load reads every slot. A slot that is missing, unreadable or holds an
// invalid value leaves the default in place. The returned error joins read
// failures other than missing slots.
func (s *Settings) Load(ctx context.Context) error {
	s.colors = DefaultColors()
	s.options = DefaultOptions()
	if s.store == nil {
		return nil
	}

	var errs []error
	for _, k := range Keys {
		v, err := s.store.ReadSlot(ctx, k.Slot())
		if err != nil {
			if !storage.IsNotFound(err) {
				errs = append(errs, fmt.Errorf("read %s: %w", k, err))
			}
			continue
		}
		s.set(k, v)
	}
	return errors.Join(errs...)
}

// Apply merges a partial update. Each field is validated, stored and
// persisted on its own; invalid fields are skipped without affecting the
// rest of the batch. Fields absent from u keep their current value.
func (s *Settings) Apply(ctx context.Context, u Update) Result {
	var res Result
	var errs []error
	for _, k := range Keys {
		v, ok := u[k]
		if !ok {
			continue
		}
		if !s.set(k, v) {
			res.Rejected = append(res.Rejected, k)
			continue
		}
		res.Applied = append(res.Applied, k)
		if s.store != nil {
			if err := s.store.WriteSlot(ctx, k.Slot(), v); err != nil {
				errs = append(errs, fmt.Errorf("persist %s: %w", k, err))
			}
		}
	}
	for k := range u {
		if _, known := keyNames[k]; !known {
			res.Rejected = append(res.Rejected, k)
		}
	}
	res.Err = errors.Join(errs...)

	if res.Changed() {
		s.invalidate()
	}
	return res
}

// Snapshot returns every field in its raw form, suitable for Apply.
func (s *Settings) Snapshot() Update {
	b := func(v bool) int32 {
		if v {
			return 1
		}
		return 0
	}
	return Update{
		KeyBackground:       s.colors.Background.Hex(),
		KeyMinuteHand:       s.colors.MinuteHand.Hex(),
		KeyHourHand:         s.colors.HourHand.Hex(),
		KeyPeg:              s.colors.Peg.Hex(),
		KeyTick:             s.colors.Tick.Hex(),
		KeyShadows:          b(s.options.ShadowsEnabled),
		KeyTickCount:        int32(s.options.TickCount),
		KeyRectangularTicks: b(s.options.RectangularTicks),
	}
}

// set validates and stores one field. It reports false for invalid values.
func (s *Settings) set(k Key, v int32) bool {
	if k.IsColor() {
		if v < 0 || v > MaxColor {
			return false
		}
		c := domain.Color8FromHex(v)
		switch k {
		case KeyBackground:
			s.colors = s.colors.WithBackground(c)
		case KeyMinuteHand:
			s.colors.MinuteHand = c
		case KeyHourHand:
			s.colors.HourHand = c
		case KeyPeg:
			s.colors.Peg = c
		case KeyTick:
			s.colors.Tick = c
		}
		return true
	}

	switch k {
	case KeyShadows:
		s.options.ShadowsEnabled = v != 0
	case KeyTickCount:
		if v < 0 || v > ticks.MaxCount {
			return false
		}
		s.options.TickCount = int(v)
	case KeyRectangularTicks:
		s.options.RectangularTicks = v != 0
	default:
		return false
	}
	return true
}
