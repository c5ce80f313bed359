// Package export converts rendered buffers into standard images and
// writes them in formats other than TGA.
package export

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"tiny-renderer/internal/raster"
	"tiny-renderer/internal/tga"
)

// Formats lists the output formats Write understands, by file extension.
var Formats = []string{"tga", "png", "webp", "bmp"}

// Supported reports whether format is one of Formats.
func Supported(format string) bool {
	for _, f := range Formats {
		if f == strings.ToLower(format) {
			return true
		}
	}
	return false
}

// ToImage returns b as a top-down opaque NRGBA image: buffer row 0 becomes
// the last image row.
func ToImage(b *raster.Buffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	pix := b.Pixels()
	for y := 0; y < b.Height; y++ {
		off := img.PixOffset(0, b.Height-1-y)
		for x, c := range pix[y*b.Width : (y+1)*b.Width] {
			i := off + x*4
			img.Pix[i] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = 255
		}
	}
	return img
}

// Scale enlarges img by an integer factor with nearest-neighbor sampling,
// so every source pixel stays a sharp square. Factors below 2 return img.
func Scale(img *image.NRGBA, factor int) *image.NRGBA {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Write stores b at path in the given format. Non-TGA formats are scaled
// by scale first; TGA is always written at native size.
func Write(path, format string, b *raster.Buffer, scale int) error {
	format = strings.ToLower(format)
	if format == "tga" {
		return tga.WriteFile(path, b)
	}
	if !Supported(format) {
		return fmt.Errorf("export: unsupported format %q", format)
	}

	img := Scale(ToImage(b), scale)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	w := bufio.NewWriter(f)

	switch format {
	case "png":
		err = png.Encode(w, img)
	case "webp":
		err = nativewebp.Encode(w, img, nil)
	case "bmp":
		err = bmp.Encode(w, img)
	}
	if err == nil {
		err = w.Flush()
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("export: %s encode %s: %w", format, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", path, err)
	}
	return nil
}
