package raster

import "math"

// Point is an integer pixel coordinate. Signed so that differences and
// off-buffer geometry never wrap around.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Line draws the segment p0-p1, both endpoints included, one pixel per
// step along the dominant axis. Pixels falling outside the buffer are
// dropped by SetPixel.
func (b *Buffer) Line(p0, p1 Point, c Color) {
	// Walk along y for steep lines so consecutive pixels stay connected.
	steep := abs(p0.X-p1.X) < abs(p0.Y-p1.Y)
	if steep {
		p0.X, p0.Y = p0.Y, p0.X
		p1.X, p1.Y = p1.Y, p1.X
	}
	if p0.X > p1.X {
		p0, p1 = p1, p0
	}

	plot := func(x, y int) {
		if steep {
			x, y = y, x
		}
		_ = b.SetPixel(x, y, c)
	}

	if p0.X == p1.X {
		// Both endpoints coincide.
		plot(p0.X, p0.Y)
		return
	}

	dx := float64(p1.X - p0.X)
	y0, y1 := float64(p0.Y), float64(p1.Y)
	for x := p0.X; x <= p1.X; x++ {
		t := float64(x-p0.X) / dx
		y := math.Round(y0*(1-t) + y1*t)
		plot(x, int(y))
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
