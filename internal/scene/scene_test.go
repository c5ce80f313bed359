package scene

import (
	"errors"
	"testing"

	"tiny-renderer/internal/mathutil"
	"tiny-renderer/internal/model"
	"tiny-renderer/internal/raster"
)

// quad is a square covering the whole viewport, wound counter-clockwise
// as seen from the viewer.
func quad() *model.Model {
	return &model.Model{
		Vertices: []mathutil.Vec3{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}},
		Faces:    [][3]int{{0, 1, 2}, {0, 2, 3}},
	}
}

func count(b *raster.Buffer, bg raster.Color) int {
	n := 0
	for _, c := range b.Pixels() {
		if c != bg {
			n++
		}
	}
	return n
}

func TestRegistry(t *testing.T) {
	var names []string
	for _, s := range All() {
		names = append(names, s.Name)
	}
	want := []string{"flat", "line", "lines", "random", "triangles", "wireframe"}
	if len(names) != len(want) {
		t.Fatalf("scenes = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("scenes = %v, want %v", names, want)
		}
	}
	if _, err := Lookup("teapot"); err == nil {
		t.Fatal("expected unknown scene error")
	}
}

func TestModelRequired(t *testing.T) {
	for _, name := range []string{"wireframe", "random", "flat"} {
		s, _ := Lookup(name)
		err := Render(s, raster.NewBuffer(10, 10), nil, DefaultOptions())
		if !errors.Is(err, ErrNoModel) {
			t.Fatalf("%s: err = %v", name, err)
		}
	}
}

func TestLineScene(t *testing.T) {
	s, _ := Lookup("line")
	b := raster.NewBuffer(200, 200)
	if err := Render(s, b, nil, DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	if got := count(b, raster.Black); got != 129 {
		t.Fatalf("drew %d pixels, want 129", got)
	}

	small := raster.NewBuffer(64, 64)
	if err := Render(s, small, nil, DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	if small.Dropped() != 65 {
		t.Fatalf("Dropped = %d, want 65", small.Dropped())
	}
}

func TestBackground(t *testing.T) {
	opts := DefaultOptions()
	opts.Background = raster.RGB(1, 2, 3)
	s, _ := Lookup("triangles")
	b := raster.NewBuffer(200, 200)
	if err := Render(s, b, nil, opts); err != nil {
		t.Fatal(err)
	}
	if c, _ := b.Pixel(199, 0); c != opts.Background {
		t.Fatalf("corner = %v", c)
	}
	if c, _ := b.Pixel(100, 30); c == opts.Background {
		t.Fatal("triangle not drawn")
	}
}

func TestViewport(t *testing.T) {
	if p := Viewport(mathutil.Vec3{-1, -1, 5}, 100, 50); p != raster.Pt(0, 0) {
		t.Fatalf("(-1,-1) -> %v", p)
	}
	if p := Viewport(mathutil.Vec3{1, 1, 0}, 100, 50); p != raster.Pt(99, 49) {
		t.Fatalf("(1,1) -> %v", p)
	}
}

func TestFlat(t *testing.T) {
	s, _ := Lookup("flat")
	b := raster.NewBuffer(32, 32)
	if err := Render(s, b, quad(), DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	if got := count(b, raster.Black); got != 32*32 {
		t.Fatalf("lit quad covered %d pixels", got)
	}
	if c, _ := b.Pixel(16, 16); c != raster.White {
		t.Fatalf("head-on face = %v, want white", c)
	}

	// Turned around, the quad faces away from the light and is culled.
	opts := DefaultOptions()
	opts.Yaw = 180
	b = raster.NewBuffer(32, 32)
	if err := Render(s, b, quad(), opts); err != nil {
		t.Fatal(err)
	}
	if got := count(b, raster.Black); got != 0 {
		t.Fatalf("back-facing quad drew %d pixels", got)
	}
}

func TestFlatDimsObliqueFaces(t *testing.T) {
	s, _ := Lookup("flat")
	opts := DefaultOptions()
	opts.Yaw = 60
	b := raster.NewBuffer(32, 32)
	if err := Render(s, b, quad(), opts); err != nil {
		t.Fatal(err)
	}
	c, _ := b.Pixel(16, 16)
	if c == raster.Black || c == raster.White {
		t.Fatalf("oblique face = %v, want partial intensity", c)
	}
}

func TestWireframe(t *testing.T) {
	s, _ := Lookup("wireframe")
	b := raster.NewBuffer(33, 33)
	if err := Render(s, b, quad(), DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	for _, p := range []raster.Point{{0, 0}, {32, 0}, {32, 32}, {0, 32}, {16, 16}} {
		if c, _ := b.Pixel(p.X, p.Y); c != raster.White {
			t.Fatalf("edge pixel %v = %v", p, c)
		}
	}
	if c, _ := b.Pixel(24, 8); c != raster.Black {
		t.Fatal("wireframe filled a face")
	}
}

func TestRandomDeterministic(t *testing.T) {
	s, _ := Lookup("random")
	render := func(seed uint64) []raster.Color {
		opts := DefaultOptions()
		opts.Seed = seed
		b := raster.NewBuffer(16, 16)
		if err := Render(s, b, quad(), opts); err != nil {
			t.Fatal(err)
		}
		return b.Pixels()
	}
	a, a2, other := render(7), render(7), render(8)
	same := true
	for i := range a {
		if a[i] != a2[i] {
			t.Fatalf("same seed differs at %d", i)
		}
		if a[i] != other[i] {
			same = false
		}
	}
	if same {
		t.Fatal("different seeds gave identical output")
	}
}

func TestFit(t *testing.T) {
	m := &model.Model{
		Vertices: []mathutil.Vec3{{10, 10, 0}, {20, 10, 0}, {20, 20, 0}},
		Faces:    [][3]int{{0, 1, 2}},
	}
	s, _ := Lookup("flat")
	opts := DefaultOptions()
	b := raster.NewBuffer(21, 21)
	if err := Render(s, b, m, opts); err != nil {
		t.Fatal(err)
	}
	if b.Dropped() != 0 || count(b, raster.Black) != 0 {
		t.Fatal("unfitted model should land outside the buffer")
	}

	opts.Fit = true
	if err := Render(s, b, m, opts); err != nil {
		t.Fatal(err)
	}
	for _, p := range []raster.Point{{0, 0}, {20, 0}, {20, 20}} {
		if c, _ := b.Pixel(p.X, p.Y); c != raster.White {
			t.Fatalf("fitted corner %v = %v", p, c)
		}
	}
}
