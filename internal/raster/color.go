package raster

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit opaque color. Fields are laid out blue, green, red:
// that is the byte order of a true-color TGA pixel, so encoders copy the
// fields in declaration order.
type Color struct {
	B, G, R uint8
}

var (
	Black = Color{}
	White = RGB(255, 255, 255)
	Red   = RGB(255, 0, 0)
	Green = RGB(0, 255, 0)
	Blue  = RGB(0, 0, 255)
)

// RGB builds a Color from channels given in red, green, blue order.
func RGB(r, g, b uint8) Color {
	return Color{B: b, G: g, R: r}
}

// RGBA implements image/color.Color. The result is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Scale multiplies every channel by k, clamping to [0,255].
func (c Color) Scale(k float64) Color {
	return Color{
		B: clamp255(float64(c.B) * k),
		G: clamp255(float64(c.G) * k),
		R: clamp255(float64(c.R) * k),
	}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ColorFromHex parses "#rrggbb" (or the short "#rgb" form).
func ColorFromHex(s string) (Color, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("raster: color %q: %w", s, err)
	}
	return FromColorful(cf), nil
}

// FromColorful converts a go-colorful color, clamping out-of-gamut values.
func FromColorful(cf colorful.Color) Color {
	r, g, b := cf.Clamped().RGB255()
	return RGB(r, g, b)
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
