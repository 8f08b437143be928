package domain

import (
	"fmt"
	"image/color"
)

// RGB represents an RGB color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// NewRGB creates a new RGB color.
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// Equals checks if two RGB colors are equal.
func (c RGB) Equals(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// String returns a string representation of the RGB color.
func (c RGB) String() string {
	return fmt.Sprintf("RGB(%d, %d, %d)", c.R, c.G, c.B)
}

// RGBA implements color.Color. The color is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}.RGBA()
}

// Color8 is a packed 64-color palette entry laid out as 0bAARRGGBB,
// two bits per channel. Watch settings and the shadow table operate on
// this representation.
type Color8 uint8

// Palette entries used as defaults.
const (
	Color8Clear     Color8 = 0x00
	Color8Black     Color8 = 0xC0
	Color8DarkGray  Color8 = 0xD5
	Color8LightGray Color8 = 0xEA
	Color8White     Color8 = 0xFF
	Color8Red       Color8 = 0xF0
	Color8Green     Color8 = 0xCC
	Color8Blue      Color8 = 0xC3
)

// Color8FromHex quantizes a packed 0xRRGGBB value into an opaque Color8.
func Color8FromHex(hex int32) Color8 {
	r := uint8(hex>>16) >> 6
	g := uint8(hex>>8) >> 6
	b := uint8(hex) >> 6
	return Color8(0b11<<6 | r<<4 | g<<2 | b)
}

// Alpha returns the two alpha bits (0 transparent .. 3 opaque).
func (c Color8) Alpha() uint8 { return uint8(c) >> 6 }

// RGB expands the two-bit channels to 8 bits (0, 85, 170, 255).
func (c Color8) RGB() RGB {
	return RGB{
		R: (uint8(c) >> 4 & 0b11) * 85,
		G: (uint8(c) >> 2 & 0b11) * 85,
		B: (uint8(c) & 0b11) * 85,
	}
}

// Hex returns the expanded color packed as 0xRRGGBB.
func (c Color8) Hex() int32 {
	rgb := c.RGB()
	return int32(rgb.R)<<16 | int32(rgb.G)<<8 | int32(rgb.B)
}

// String returns the color in #RRGGBB form.
func (c Color8) String() string {
	return fmt.Sprintf("#%06X", c.Hex())
}
