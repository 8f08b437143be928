package face

import (
	"strings"

	"github.com/alinanorakari/supersimple/internal/domain"
)

// namedColors is the 64 color palette of the watch, keyed by lowercase
// name.
var namedColors = map[string]int32{
	"black":                 0x000000,
	"oxfordblue":            0x000055,
	"dukeblue":              0x0000AA,
	"blue":                  0x0000FF,
	"darkgreen":             0x005500,
	"midnightgreen":         0x005555,
	"cobaltblue":            0x0055AA,
	"bluemoon":              0x0055FF,
	"islamicgreen":          0x00AA00,
	"jaegergreen":           0x00AA55,
	"tiffanyblue":           0x00AAAA,
	"vividcerulean":         0x00AAFF,
	"green":                 0x00FF00,
	"malachite":             0x00FF55,
	"mediumspringgreen":     0x00FFAA,
	"cyan":                  0x00FFFF,
	"bulgarianrose":         0x550000,
	"imperialpurple":        0x550055,
	"indigo":                0x5500AA,
	"electricultramarine":   0x5500FF,
	"armygreen":             0x555500,
	"darkgray":              0x555555,
	"liberty":               0x5555AA,
	"verylightblue":         0x5555FF,
	"kellygreen":            0x55AA00,
	"maygreen":              0x55AA55,
	"cadetblue":             0x55AAAA,
	"pictonblue":            0x55AAFF,
	"brightgreen":           0x55FF00,
	"screamingreen":         0x55FF55,
	"mediumaquamarine":      0x55FFAA,
	"electricblue":          0x55FFFF,
	"darkcandyapplered":     0xAA0000,
	"jazzberryjam":          0xAA0055,
	"purple":                0xAA00AA,
	"vividviolet":           0xAA00FF,
	"windsortan":            0xAA5500,
	"rosevale":              0xAA5555,
	"purpureus":             0xAA55AA,
	"lavenderindigo":        0xAA55FF,
	"limerick":              0xAAAA00,
	"brass":                 0xAAAA55,
	"lightgray":             0xAAAAAA,
	"babyblueeyes":          0xAAAAFF,
	"springbud":             0xAAFF00,
	"inchworm":              0xAAFF55,
	"mintgreen":             0xAAFFAA,
	"celeste":               0xAAFFFF,
	"red":                   0xFF0000,
	"folly":                 0xFF0055,
	"fashionmagenta":        0xFF00AA,
	"magenta":               0xFF00FF,
	"orange":                0xFF5500,
	"sunsetorange":          0xFF5555,
	"brilliantrose":         0xFF55AA,
	"shockingpink":          0xFF55FF,
	"chromeyellow":          0xFFAA00,
	"rajah":                 0xFFAA55,
	"melon":                 0xFFAAAA,
	"richbrilliantlavender": 0xFFAAFF,
	"yellow":                0xFFFF00,
	"icterine":              0xFFFF55,
	"pastelyellow":          0xFFFFAA,
	"white":                 0xFFFFFF,
}

// ColorByName looks up a palette color. Case, spaces, dashes and
// underscores are ignored, so "Dark Gray" and "dark_gray" both match.
func ColorByName(name string) (int32, bool) {
	v, ok := namedColors[normalizeName(name)]
	return v, ok
}

// ColorName returns the palette name of c.
func ColorName(c domain.Color8) string {
	hex := c.Hex()
	for name, v := range namedColors {
		if v == hex {
			return name
		}
	}
	return c.String()
}

func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
