package ansi

import (
	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Color returns c as a set optional color.
func (c RGB) Color() Color {
	return Color{rgb: c, set: true}
}

// Color is an optional RGB value. The zero Color is unset: it selects no
// color and emits no escape sequence. Constructors normalize the accepted
// input forms (channels, packed int, hex string) once at the boundary.
type Color struct {
	rgb RGB
	set bool
}

// ColorRGB builds a set color from 8-bit channels.
func ColorRGB(r, g, b uint8) Color {
	return Color{rgb: RGB{r, g, b}, set: true}
}

// ColorInt builds a set color from a packed 0xRRGGBB value.
// Bits above the low 24 are ignored.
func ColorInt(v int) Color {
	return Color{rgb: RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}, set: true}
}

// ColorHex parses "#rrggbb" or "#rgb" into a set color.
func ColorHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	r, g, b := c.RGB255()
	return Color{rgb: RGB{r, g, b}, set: true}, nil
}

// IsSet reports whether the color carries a value.
func (c Color) IsSet() bool { return c.set }

// RGB returns the color channels. Unset colors read as black.
func (c Color) RGB() RGB { return c.rgb }
