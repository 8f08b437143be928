// Package shadow derives drop-shadow colors from a background color.
package shadow

import "github.com/alinanorakari/supersimple/internal/domain"

// Mask clears the low alpha bit before indexing, so an opaque color lands in
// the 0b10xxxxxx rows of the table.
const Mask = 0b10111111

// table maps a masked 0bAARRGGBB background to its shaded variant.
var table = [256]uint8{
	192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192,
	192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192,
	192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192,
	192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192, 192,
	192, 192, 192, 193, 192, 192, 192, 193, 192, 192, 192, 193, 196, 196, 196, 197,
	192, 192, 192, 193, 192, 192, 192, 193, 192, 192, 192, 193, 196, 196, 196, 197,
	192, 192, 192, 193, 192, 192, 192, 193, 192, 192, 192, 193, 196, 196, 196, 197,
	208, 208, 208, 209, 208, 208, 208, 209, 208, 208, 208, 209, 212, 212, 212, 213,
	192, 192, 193, 194, 192, 192, 193, 194, 196, 196, 197, 198, 200, 200, 201, 202,
	192, 192, 193, 194, 192, 192, 193, 194, 196, 196, 197, 198, 200, 200, 201, 202,
	208, 208, 209, 210, 208, 208, 209, 210, 212, 212, 213, 214, 216, 216, 217, 218,
	224, 224, 225, 226, 224, 224, 225, 226, 228, 228, 229, 230, 232, 232, 233, 234,
	192, 193, 194, 195, 196, 197, 198, 199, 200, 201, 202, 203, 204, 205, 206, 207,
	208, 209, 210, 211, 212, 213, 214, 215, 216, 217, 218, 219, 220, 221, 222, 223,
	224, 225, 226, 227, 228, 229, 230, 231, 232, 233, 234, 235, 236, 237, 238, 239,
	240, 241, 242, 243, 244, 245, 246, 247, 248, 249, 250, 251, 252, 253, 254, 255,
}

// For returns the shadow color to draw beneath hands on the given background.
func For(background domain.Color8) domain.Color8 {
	return domain.Color8(table[uint8(background)&Mask])
}
