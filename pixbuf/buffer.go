// buffer.go implements Buffer, the RGBA frame every filter consumes and produces.

// Package pixbuf provides the pixel buffer: a tightly packed RGBA grid
// that represents exactly one video frame.
package pixbuf

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/clone"
)

// BytesPerPixel is the number of samples per pixel (R, G, B, A).
const BytesPerPixel = 4

var ErrInvalidBuffer = errors.New("invalid pixel buffer")

// Buffer is a rectangular grid of 8-bit RGBA samples, row-major,
// with no padding between rows.
//
// Filters treat a Buffer as read-only input and always allocate a new one
// for their output.
type Buffer struct {
	Width   uint32
	Height  uint32
	Samples []byte
}

// New returns a zero-initialized (transparent black) buffer.
func New(width, height uint32) *Buffer {
	return &Buffer{
		Width:   width,
		Height:  height,
		Samples: make([]byte, int(width)*int(height)*BytesPerPixel),
	}
}

// FromImage converts any image into a Buffer. The samples follow the
// semantics of image.RGBA.
func FromImage(img image.Image) *Buffer {
	rgba := clone.AsRGBA(img)
	bounds := rgba.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	rowLen := width * BytesPerPixel
	if rgba.Stride == rowLen && len(rgba.Pix) == rowLen*height {
		return &Buffer{
			Width:   uint32(width),
			Height:  uint32(height),
			Samples: rgba.Pix,
		}
	}

	buf := New(uint32(width), uint32(height))
	for y := 0; y < height; y++ {
		srcOffset := rgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		copy(buf.Samples[y*rowLen:(y+1)*rowLen], rgba.Pix[srcOffset:srcOffset+rowLen])
	}
	return buf
}

// ToImage returns a copy of the buffer as an *image.RGBA anchored at (0,0).
func (buf *Buffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(buf.Width), int(buf.Height)))
	copy(img.Pix, buf.Samples)
	return img
}

// Validate checks the length invariant len(Samples) == Width*Height*4.
func (buf *Buffer) Validate() error {
	if buf == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidBuffer)
	}
	expected := int(buf.Width) * int(buf.Height) * BytesPerPixel
	if len(buf.Samples) != expected {
		return fmt.Errorf(
			"%w: %dx%d requires %d samples, got %d",
			ErrInvalidBuffer, buf.Width, buf.Height, expected, len(buf.Samples),
		)
	}
	return nil
}

// Clone returns a deep copy.
func (buf *Buffer) Clone() *Buffer {
	samples := make([]byte, len(buf.Samples))
	copy(samples, buf.Samples)
	return &Buffer{
		Width:   buf.Width,
		Height:  buf.Height,
		Samples: samples,
	}
}

// Equal reports whether both buffers have the same dimensions and samples.
func (buf *Buffer) Equal(other *Buffer) bool {
	if buf == nil || other == nil {
		return buf == other
	}
	return buf.Width == other.Width &&
		buf.Height == other.Height &&
		bytes.Equal(buf.Samples, other.Samples)
}

// Offset returns the index of the R sample of pixel (x, y).
func (buf *Buffer) Offset(x, y int) int {
	return (y*int(buf.Width) + x) * BytesPerPixel
}

// Pixel returns the samples of pixel (x, y).
func (buf *Buffer) Pixel(x, y int) (r, g, b, a uint8) {
	idx := buf.Offset(x, y)
	return buf.Samples[idx], buf.Samples[idx+1], buf.Samples[idx+2], buf.Samples[idx+3]
}

// SetPixel overwrites the samples of pixel (x, y).
func (buf *Buffer) SetPixel(x, y int, r, g, b, a uint8) {
	idx := buf.Offset(x, y)
	buf.Samples[idx] = r
	buf.Samples[idx+1] = g
	buf.Samples[idx+2] = b
	buf.Samples[idx+3] = a
}

// Size returns the amount of sample bytes.
func (buf *Buffer) Size() int {
	return len(buf.Samples)
}

func (buf *Buffer) String() string {
	if buf == nil {
		return "Buffer(nil)"
	}
	return fmt.Sprintf("Buffer(%dx%d)", buf.Width, buf.Height)
}
