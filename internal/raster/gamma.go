package raster

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGamma is returned for non-positive or non-finite exponents.
var ErrInvalidGamma = errors.New("raster: invalid gamma")

// GammaCurve maps each 8-bit channel value c to round(255*(c/255)^gamma).
type GammaCurve [256]uint8

// NewGammaCurve precomputes the lookup table for gamma.
func NewGammaCurve(gamma float64) (*GammaCurve, error) {
	if !(gamma > 0) || math.IsInf(gamma, 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGamma, gamma)
	}
	var g GammaCurve
	for i := range g {
		g[i] = clamp255(255 * math.Pow(float64(i)/255, gamma))
	}
	return &g, nil
}

// Apply remaps the three channels of c.
func (g *GammaCurve) Apply(c Color) Color {
	return Color{B: g[c.B], G: g[c.G], R: g[c.R]}
}

// Map returns the corrected copy of pixels; the input is not modified.
func (g *GammaCurve) Map(pixels []Color) []Color {
	out := make([]Color, len(pixels))
	for i, c := range pixels {
		out[i] = g.Apply(c)
	}
	return out
}

// ApplyGamma replaces every pixel with its gamma-corrected value.
// On error the buffer is unchanged.
func (b *Buffer) ApplyGamma(gamma float64) error {
	g, err := NewGammaCurve(gamma)
	if err != nil {
		return err
	}
	b.pix = g.Map(b.pix)
	return nil
}
