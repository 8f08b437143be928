package face

import (
	"strconv"
	"strings"
)

// Key identifies one configurable field. Its numeric value doubles as the
// durable storage slot.
type Key int

const (
	KeyBackground Key = iota
	KeyMinuteHand
	KeyHourHand
	KeyPeg
	KeyTick
	KeyShadows
	KeyTickCount
	KeyRectangularTicks
)

// Keys lists every field in slot order.
var Keys = []Key{
	KeyBackground,
	KeyMinuteHand,
	KeyHourHand,
	KeyPeg,
	KeyTick,
	KeyShadows,
	KeyTickCount,
	KeyRectangularTicks,
}

var keyNames = map[Key]string{
	KeyBackground:       "colorbg",
	KeyMinuteHand:       "colorm",
	KeyHourHand:         "colorh",
	KeyPeg:              "colorp",
	KeyTick:             "colort",
	KeyShadows:          "shadows",
	KeyTickCount:        "ticks",
	KeyRectangularTicks: "rectticks",
}

// Slot is the durable storage slot of the key.
func (k Key) Slot() int { return int(k) }

// String returns the configuration page name of the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "key(" + strconv.Itoa(int(k)) + ")"
}

// IsColor reports whether the key holds a packed RGB color.
func (k Key) IsColor() bool {
	return k >= KeyBackground && k <= KeyTick
}

// ParseKey resolves a configuration page name or a numeric key.
func ParseKey(s string) (Key, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range keyNames {
		if name == s {
			return k, true
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	k := Key(n)
	if _, ok := keyNames[k]; !ok {
		return 0, false
	}
	return k, true
}
