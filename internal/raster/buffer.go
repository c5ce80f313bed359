package raster

import (
	"errors"
	"fmt"
	"io"
	"log"
)

// ErrOutOfBounds is returned for pixel coordinates outside the buffer.
var ErrOutOfBounds = errors.New("raster: pixel out of bounds")

// Buffer is the rendering target: Width*Height colors in one flat slice,
// index = x + y*Width. Row 0 is the bottom row of the written image.
type Buffer struct {
	Width  int
	Height int

	pix     []Color
	dropped int
	logger  *log.Logger
}

// NewBuffer allocates a black buffer. Zero (or negative) sizes give an
// empty buffer that rejects every write.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer{
		Width:  width,
		Height: height,
		pix:    make([]Color, width*height),
		logger: log.New(io.Discard, "", 0),
	}
}

// SetLogger routes out-of-bounds diagnostics to l. A nil logger discards.
func (b *Buffer) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	b.logger = l
}

// Len returns the number of pixels.
func (b *Buffer) Len() int {
	return len(b.pix)
}

// Dropped returns how many writes were rejected as out of bounds.
func (b *Buffer) Dropped() int {
	return b.dropped
}

func (b *Buffer) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 0, false
	}
	i := x + y*b.Width
	if i >= len(b.pix) {
		return 0, false
	}
	return i, true
}

// SetPixel stores c at (x, y). A write outside the buffer is logged,
// counted and dropped; the buffer is left unchanged.
func (b *Buffer) SetPixel(x, y int, c Color) error {
	i, ok := b.index(x, y)
	if !ok {
		b.dropped++
		b.logger.Printf("raster: dropped write at (%d, %d) on %dx%d buffer", x, y, b.Width, b.Height)
		return fmt.Errorf("%w: (%d, %d) on %dx%d", ErrOutOfBounds, x, y, b.Width, b.Height)
	}
	b.pix[i] = c
	return nil
}

// Pixel returns the color stored at (x, y).
func (b *Buffer) Pixel(x, y int) (Color, error) {
	i, ok := b.index(x, y)
	if !ok {
		return Color{}, fmt.Errorf("%w: (%d, %d) on %dx%d", ErrOutOfBounds, x, y, b.Width, b.Height)
	}
	return b.pix[i], nil
}

// Pixels returns a copy of the pixel sequence in storage order.
func (b *Buffer) Pixels() []Color {
	out := make([]Color, len(b.pix))
	copy(out, b.pix)
	return out
}

// Clear sets every pixel to c.
func (b *Buffer) Clear(c Color) {
	for i := range b.pix {
		b.pix[i] = c
	}
}

// set is the unchecked write used by routines that already clipped.
func (b *Buffer) set(x, y int, c Color) {
	b.pix[x+y*b.Width] = c
}
