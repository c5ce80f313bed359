/*
Package tga reads and writes uncompressed 24-bit true-color TGA files.

The writer emits an 18-byte header followed by Width*Height blue, green,
red triplets in buffer storage order. The image descriptor is zero, which
places the origin at the bottom-left corner: buffer row 0 is the bottom
row of the picture. There is no color map, no image ID, no padding and
no run-length encoding.
*/
package tga

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	ftga "github.com/ftrvxmtrx/tga"

	"tiny-renderer/internal/raster"
)

const (
	headerSize     = 18
	imageTrueColor = 2
	pixelDepth     = 24
	bytesPerPixel  = pixelDepth / 8
	maxDimension   = 0xffff
)

// ErrTooLarge is returned when a dimension does not fit the 16-bit
// header fields.
var ErrTooLarge = errors.New("tga: image dimensions exceed 65535")

// header builds the file header field by field. Offsets:
//
//	0      id length         0
//	1      color map type    0
//	2      image type        2
//	3..7   color map spec    zeros
//	8..11  x/y origin        zeros
//	12..13 width             little-endian
//	14..15 height            little-endian
//	16     pixel depth       24
//	17     image descriptor  0
func header(width, height int) [headerSize]byte {
	var h [headerSize]byte
	h[2] = imageTrueColor
	binary.LittleEndian.PutUint16(h[12:14], uint16(width))
	binary.LittleEndian.PutUint16(h[14:16], uint16(height))
	h[16] = pixelDepth
	return h
}

// Encode writes b to w. The buffer is only read.
func Encode(w io.Writer, b *raster.Buffer) error {
	if b.Width > maxDimension || b.Height > maxDimension {
		return fmt.Errorf("%w: %dx%d", ErrTooLarge, b.Width, b.Height)
	}

	bw := bufio.NewWriter(w)
	h := header(b.Width, b.Height)
	if _, err := bw.Write(h[:]); err != nil {
		return err
	}

	pix := b.Pixels()
	row := make([]byte, b.Width*bytesPerPixel)
	for y := 0; y < b.Height; y++ {
		for x, c := range pix[y*b.Width : (y+1)*b.Width] {
			row[x*3] = c.B
			row[x*3+1] = c.G
			row[x*3+2] = c.R
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile creates path and encodes b into it.
func WriteFile(path string, b *raster.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tga: create %s: %w", path, err)
	}
	if err := Encode(f, b); err != nil {
		f.Close()
		return fmt.Errorf("tga: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("tga: close %s: %w", path, err)
	}
	return nil
}

// Decode reads any TGA image the decoder understands into a new buffer.
// The decoded picture is top-down, so its rows are flipped back into
// bottom-up storage order. Alpha is dropped.
func Decode(r io.Reader) (*raster.Buffer, error) {
	img, err := ftga.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("tga: decode: %w", err)
	}
	return fromImage(img), nil
}

// ReadFile decodes the TGA file at path.
func ReadFile(path string) (*raster.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tga: open %s: %w", path, err)
	}
	defer f.Close()

	b, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return b, nil
}

func fromImage(img image.Image) *raster.Buffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	b := raster.NewBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			_ = b.SetPixel(x, h-1-y, raster.RGB(c.R, c.G, c.B))
		}
	}
	return b
}
