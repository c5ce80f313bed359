// Package scene holds the demo renderings: fixed test patterns and the
// model-driven wireframe, random-color and flat-shaded views.
package scene

import (
	"errors"
	"fmt"
	"sort"

	"tiny-renderer/internal/mathutil"
	"tiny-renderer/internal/model"
	"tiny-renderer/internal/raster"
)

// ErrNoModel is returned by scenes that draw a model when none is given.
var ErrNoModel = errors.New("scene: model required")

// Options tune how a scene draws.
type Options struct {
	Foreground raster.Color
	Background raster.Color
	Light      raster.Light
	Seed       uint64

	// Model orientation in degrees, applied before the viewport mapping.
	Yaw, Pitch float64
	// Fit rescales the model so its bounding box fills [-1,1].
	Fit bool
}

// DefaultOptions draws white on black lit from the viewer.
func DefaultOptions() Options {
	return Options{
		Foreground: raster.White,
		Background: raster.Black,
		Light:      raster.DefaultLight(),
		Seed:       1,
	}
}

// Scene is one named demo.
type Scene struct {
	Name        string
	Description string
	NeedsModel  bool
	Draw        func(b *raster.Buffer, m *model.Model, opts Options) error
}

var registry = map[string]Scene{}

func register(s Scene) {
	if _, dup := registry[s.Name]; dup {
		panic("scene: duplicate name " + s.Name)
	}
	registry[s.Name] = s
}

// All returns every registered scene sorted by name.
func All() []Scene {
	out := make([]Scene, 0, len(registry))
	for _, s := range registry {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup finds a scene by name.
func Lookup(name string) (Scene, error) {
	s, ok := registry[name]
	if !ok {
		return Scene{}, fmt.Errorf("scene: unknown scene %q", name)
	}
	return s, nil
}

// Render clears b to the background and draws s.
func Render(s Scene, b *raster.Buffer, m *model.Model, opts Options) error {
	if s.NeedsModel && m == nil {
		return fmt.Errorf("%w: %s", ErrNoModel, s.Name)
	}
	b.Clear(opts.Background)
	return s.Draw(b, m, opts)
}

// Viewport maps x and y from [-1,1] onto the pixel grid of a w×h buffer.
// z is ignored: there is no perspective.
func Viewport(v mathutil.Vec3, w, h int) raster.Point {
	return raster.Point{
		X: int((v[0] + 1) * float64(w-1) / 2),
		Y: int((v[1] + 1) * float64(h-1) / 2),
	}
}

// placement turns model vertices into screen space.
type placement struct {
	rot    mathutil.Mat3
	center mathutil.Vec3
	scale  float64
}

func newPlacement(m *model.Model, opts Options) placement {
	p := placement{rot: mathutil.Orientation(opts.Yaw, opts.Pitch), scale: 1}
	if opts.Fit && m.VertexCount() > 0 {
		lo, hi := m.Bounds()
		p.center = lo.Add(hi).Scale(0.5)
		span := max(hi[0]-lo[0], hi[1]-lo[1], hi[2]-lo[2])
		if span > 1e-9 {
			p.scale = 2 / span
		}
	}
	return p
}

func (p placement) world(v mathutil.Vec3) mathutil.Vec3 {
	return p.rot.MulVec3(v.Sub(p.center).Scale(p.scale))
}
