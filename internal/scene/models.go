package scene

import (
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"tiny-renderer/internal/model"
	"tiny-renderer/internal/raster"
)

func init() {
	register(Scene{
		Name:        "wireframe",
		Description: "model edges",
		NeedsModel:  true,
		Draw:        drawWireframe,
	})
	register(Scene{
		Name:        "random",
		Description: "model faces filled with random colors",
		NeedsModel:  true,
		Draw:        drawRandom,
	})
	register(Scene{
		Name:        "flat",
		Description: "model with flat per-face lighting and back faces culled",
		NeedsModel:  true,
		Draw:        drawFlat,
	})
}

func drawWireframe(b *raster.Buffer, m *model.Model, opts Options) error {
	p := newPlacement(m, opts)
	for i := 0; i < m.FaceCount(); i++ {
		fv := m.FaceVertices(i)
		var s [3]raster.Point
		for k, v := range fv {
			s[k] = Viewport(p.world(v), b.Width, b.Height)
		}
		b.TriangleOutline(s[0], s[1], s[2], opts.Foreground)
	}
	return nil
}

func drawRandom(b *raster.Buffer, m *model.Model, opts Options) error {
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	p := newPlacement(m, opts)
	for i := 0; i < m.FaceCount(); i++ {
		fv := m.FaceVertices(i)
		var s [3]raster.Point
		for k, v := range fv {
			s[k] = Viewport(p.world(v), b.Width, b.Height)
		}
		col := colorful.Hsv(rng.Float64()*360, 0.5+rng.Float64()*0.5, 0.6+rng.Float64()*0.4)
		b.Triangle(s[0], s[1], s[2], raster.FromColorful(col))
	}
	return nil
}

// drawFlat shades each face by the angle between its normal and the
// light. Without a depth buffer, faces turned away from the light are
// skipped instead of hidden.
func drawFlat(b *raster.Buffer, m *model.Model, opts Options) error {
	p := newPlacement(m, opts)
	for i := 0; i < m.FaceCount(); i++ {
		fv := m.FaceVertices(i)
		var s [3]raster.Point
		for k := range fv {
			fv[k] = p.world(fv[k])
			s[k] = Viewport(fv[k], b.Width, b.Height)
		}
		intensity := opts.Light.Intensity(raster.FaceNormal(fv[0], fv[1], fv[2]))
		if intensity <= 0 {
			continue
		}
		b.Triangle(s[0], s[1], s[2], opts.Foreground.Scale(intensity))
	}
	return nil
}
