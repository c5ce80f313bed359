package mathutil

import "math"

// Vec3 is a 3-component vector (value type, stack-allocated).
type Vec3 [3]float64

// normEps is the length below which Normalize reports the zero vector.
const normEps = 1e-12

func (a Vec3) X() float64 { return a[0] }
func (a Vec3) Y() float64 { return a[1] }
func (a Vec3) Z() float64 { return a[2] }

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a[0] * s, a[1] * s, a[2] * s}
}

// Dot returns the scalar product a·b.
func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns a×b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Len returns the Euclidean norm.
func (a Vec3) Len() float64 {
	return math.Sqrt(a.Dot(a))
}

// Normalize returns a/|a|. A vector shorter than normEps has no direction
// and normalizes to the zero vector.
func (a Vec3) Normalize() Vec3 {
	l := a.Len()
	if l < normEps {
		return Vec3{}
	}
	return a.Scale(1 / l)
}
