package raster

import (
	"math"

	"tiny-renderer/internal/mathutil"
)

// degenerate is returned by Barycentric for triangles with (almost) no
// screen area. Its negative component keeps every pixel outside.
var degenerate = mathutil.Vec3{-1, 1, 1}

// Barycentric returns the barycentric coordinates of p with respect to
// the triangle abc. When the triangle spans less than one unit of doubled
// area the result has a negative component, so p counts as outside.
func Barycentric(a, b, c, p Point) mathutil.Vec3 {
	u := mathutil.Vec3{
		float64(c.X - a.X), float64(b.X - a.X), float64(a.X - p.X),
	}.Cross(mathutil.Vec3{
		float64(c.Y - a.Y), float64(b.Y - a.Y), float64(a.Y - p.Y),
	})
	if math.Abs(u[2]) < 1 {
		return degenerate
	}
	return mathutil.Vec3{1 - (u[0]+u[1])/u[2], u[1] / u[2], u[0] / u[2]}
}

// Inside reports whether all barycentric components are non-negative,
// i.e. the point lies inside the triangle or on its boundary.
func Inside(bc mathutil.Vec3) bool {
	return bc[0] >= 0 && bc[1] >= 0 && bc[2] >= 0
}

// Triangle fills every pixel of the triangle abc, boundary included.
// Degenerate triangles draw nothing.
func (b *Buffer) Triangle(v0, v1, v2 Point, col Color) {
	minX, minY := b.Width-1, b.Height-1
	maxX, maxY := 0, 0
	for _, v := range [3]Point{v0, v1, v2} {
		minX = max(0, min(minX, v.X))
		minY = max(0, min(minY, v.Y))
		maxX = min(b.Width-1, max(maxX, v.X))
		maxY = min(b.Height-1, max(maxY, v.Y))
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if Inside(Barycentric(v0, v1, v2, Point{x, y})) {
				b.set(x, y, col)
			}
		}
	}
}

// TriangleOutline draws the three edges of abc.
func (b *Buffer) TriangleOutline(v0, v1, v2 Point, col Color) {
	b.Line(v0, v1, col)
	b.Line(v1, v2, col)
	b.Line(v2, v0, col)
}
