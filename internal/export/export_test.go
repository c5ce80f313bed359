package export

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"tiny-renderer/internal/raster"
)

func testBuffer() *raster.Buffer {
	b := raster.NewBuffer(4, 3)
	_ = b.SetPixel(0, 0, raster.Red)  // bottom-left
	_ = b.SetPixel(3, 2, raster.Blue) // top-right
	return b
}

func TestToImageFlipsRows(t *testing.T) {
	img := ToImage(testBuffer())
	if img.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if got := img.NRGBAAt(0, 2); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Fatalf("bottom-left = %v", got)
	}
	if got := img.NRGBAAt(3, 0); got != (color.NRGBA{0, 0, 255, 255}) {
		t.Fatalf("top-right = %v", got)
	}
	if got := img.NRGBAAt(1, 1); got != (color.NRGBA{0, 0, 0, 255}) {
		t.Fatalf("background = %v", got)
	}
}

func TestScale(t *testing.T) {
	img := ToImage(testBuffer())
	if Scale(img, 1) != img {
		t.Fatal("factor 1 should return the input")
	}
	big := Scale(img, 3)
	if big.Bounds() != image.Rect(0, 0, 12, 9) {
		t.Fatalf("bounds = %v", big.Bounds())
	}
	for _, p := range []image.Point{{0, 6}, {2, 8}, {1, 7}} {
		if got := big.NRGBAAt(p.X, p.Y); got != (color.NRGBA{255, 0, 0, 255}) {
			t.Fatalf("scaled pixel %v = %v", p, got)
		}
	}
	if got := big.NRGBAAt(3, 8); got.R != 0 {
		t.Fatalf("neighbour bled into %v", got)
	}
}

func TestWriteDecodable(t *testing.T) {
	dir := t.TempDir()
	for _, format := range []string{"png", "bmp"} {
		path := filepath.Join(dir, "out."+format)
		if err := Write(path, format, testBuffer(), 2); err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		f, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}
		img, name, err := image.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("%s: decode: %v", format, err)
		}
		if name != format || img.Bounds().Dx() != 8 || img.Bounds().Dy() != 6 {
			t.Fatalf("%s: decoded %s %v", format, name, img.Bounds())
		}
		r, g, b, _ := img.At(0, 5).RGBA()
		if r>>8 != 255 || g != 0 || b != 0 {
			t.Fatalf("%s: bottom-left = %d %d %d", format, r>>8, g>>8, b>>8)
		}
	}
}

func TestWriteWebPAndTGA(t *testing.T) {
	dir := t.TempDir()
	for _, format := range []string{"webp", "tga", "TGA"} {
		path := filepath.Join(dir, "out-"+format)
		if err := Write(path, format, testBuffer(), 1); err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		st, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if st.Size() == 0 {
			t.Fatalf("%s: empty file", format)
		}
	}
	st, err := os.Stat(filepath.Join(dir, "out-tga"))
	if err != nil {
		t.Fatal(err)
	}
	if st.Size() != 18+4*3*3 {
		t.Fatalf("tga size = %d", st.Size())
	}
}

func TestWriteUnsupported(t *testing.T) {
	if err := Write(filepath.Join(t.TempDir(), "x.gif"), "gif", testBuffer(), 1); err == nil {
		t.Fatal("expected error for gif")
	}
	if Supported("jpeg") || !Supported("WebP") {
		t.Fatal("Supported mismatch")
	}
}
