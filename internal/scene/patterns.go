package scene

import (
	"tiny-renderer/internal/model"
	"tiny-renderer/internal/raster"
)

func init() {
	register(Scene{
		Name:        "line",
		Description: "single line from the origin to (128,128)",
		Draw: func(b *raster.Buffer, _ *model.Model, opts Options) error {
			b.Line(raster.Pt(0, 0), raster.Pt(128, 128), opts.Foreground)
			return nil
		},
	})
	register(Scene{
		Name:        "lines",
		Description: "shallow, steep and reversed segments",
		Draw: func(b *raster.Buffer, _ *model.Model, opts Options) error {
			b.Line(raster.Pt(13, 20), raster.Pt(80, 40), opts.Foreground)
			b.Line(raster.Pt(20, 13), raster.Pt(40, 80), raster.Red)
			b.Line(raster.Pt(80, 40), raster.Pt(13, 20), raster.Red)
			return nil
		},
	})
	register(Scene{
		Name:        "triangles",
		Description: "filled triangles with outlines",
		Draw:        drawTriangles,
	})
}

func drawTriangles(b *raster.Buffer, _ *model.Model, opts Options) error {
	tris := []struct {
		v   [3]raster.Point
		col raster.Color
	}{
		{[3]raster.Point{{10, 70}, {50, 160}, {70, 80}}, raster.Red},
		{[3]raster.Point{{180, 50}, {150, 1}, {70, 180}}, opts.Foreground},
		{[3]raster.Point{{180, 150}, {120, 160}, {130, 180}}, raster.Green},
		{[3]raster.Point{{10, 10}, {100, 30}, {190, 160}}, raster.Blue},
	}
	for _, t := range tris {
		b.Triangle(t.v[0], t.v[1], t.v[2], t.col)
	}
	for _, t := range tris {
		b.TriangleOutline(t.v[0], t.v[1], t.v[2], opts.Foreground)
	}
	return nil
}
