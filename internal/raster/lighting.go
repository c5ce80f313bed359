package raster

import "tiny-renderer/internal/mathutil"

// Light is a directional light for flat (per-face) shading.
type Light struct {
	Dir     mathutil.Vec3 // direction the light travels, normalized
	Ambient float64       // floor added to lit faces, 0..1
}

// DefaultLight shines straight into the screen.
func DefaultLight() Light {
	return Light{Dir: mathutil.Vec3{0, 0, -1}}
}

// NewLight normalizes dir. A zero direction falls back to DefaultLight.
func NewLight(dir mathutil.Vec3, ambient float64) Light {
	n := dir.Normalize()
	if n == (mathutil.Vec3{}) {
		n = DefaultLight().Dir
	}
	return Light{Dir: n, Ambient: min(max(ambient, 0), 1)}
}

// FaceNormal returns the unit normal of the face v0 v1 v2 using the
// (v2-v0)×(v1-v0) winding. Degenerate faces give the zero vector.
func FaceNormal(v0, v1, v2 mathutil.Vec3) mathutil.Vec3 {
	return v2.Sub(v0).Cross(v1.Sub(v0)).Normalize()
}

// Intensity returns the shading factor for a face with normal n, or 0
// when the face points away from the light.
func (l Light) Intensity(n mathutil.Vec3) float64 {
	d := n.Dot(l.Dir)
	if d <= 0 {
		return 0
	}
	return min(l.Ambient+(1-l.Ambient)*d, 1)
}
