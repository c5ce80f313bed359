package model

import (
	"errors"
	"fmt"

	"tiny-renderer/internal/mathutil"
)

// ErrParse marks a model file that could not be loaded.
var ErrParse = errors.New("model: parse error")

// ParseError reports the line and token that failed to parse.
type ParseError struct {
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("model: line %d: bad token %q: %v", e.Line, e.Token, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// Model holds vertex positions and triangular faces. Face indices are
// zero-based and always valid for Vertices.
type Model struct {
	Vertices []mathutil.Vec3
	Faces    [][3]int
}

func (m *Model) VertexCount() int { return len(m.Vertices) }
func (m *Model) FaceCount() int   { return len(m.Faces) }

// Vertex returns vertex i. It panics if i is out of range.
func (m *Model) Vertex(i int) mathutil.Vec3 { return m.Vertices[i] }

// Face returns the vertex indices of face i.
func (m *Model) Face(i int) [3]int { return m.Faces[i] }

// FaceVertices returns the three positions of face i.
func (m *Model) FaceVertices(i int) [3]mathutil.Vec3 {
	f := m.Faces[i]
	return [3]mathutil.Vec3{m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]}
}

// Bounds returns the per-axis minimum and maximum over all vertices.
func (m *Model) Bounds() (lo, hi mathutil.Vec3) {
	if len(m.Vertices) == 0 {
		return
	}
	lo, hi = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		for k := 0; k < 3; k++ {
			lo[k] = min(lo[k], v[k])
			hi[k] = max(hi[k], v[k])
		}
	}
	return lo, hi
}
