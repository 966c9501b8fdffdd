// compose.go implements SideBySide, the comparison view of two frames.

package pixbuf

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	dividerWidth = 3
	labelX       = 20
	labelY       = 30
	labelPadding = 6
)

var (
	dividerColor     = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	labelBackground  = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	labelTextColors  = [2]color.RGBA{{R: 255, G: 255, B: 255, A: 255}, {R: 0, G: 255, B: 0, A: 255}}
	labelFrameColors = [2]color.RGBA{{R: 102, G: 102, B: 102, A: 255}, {R: 0, G: 255, B: 0, A: 255}}
)

// SideBySide returns a frame of the size of left showing left squeezed
// into the left half and right into the right half, split by a vertical
// line. labels (at most two) are drawn into the top-left corner of the
// respective halves. Both frames must have the same dimensions.
//
// A frame of odd width loses its last column; a frame one pixel wide
// becomes two pixels wide.
func SideBySide(left, right *Buffer, labels ...string) (*Buffer, error) {
	if err := left.Validate(); err != nil {
		return nil, fmt.Errorf("the left frame: %w", err)
	}
	if err := right.Validate(); err != nil {
		return nil, fmt.Errorf("the right frame: %w", err)
	}
	if left.Width != right.Width || left.Height != right.Height {
		return nil, fmt.Errorf("%w: %s and %s differ in size", ErrInvalidBuffer, left, right)
	}
	if len(labels) > 2 {
		return nil, fmt.Errorf("expected at most 2 labels, got %d", len(labels))
	}

	if left.Width == 0 || left.Height == 0 {
		return left.Clone(), nil
	}

	halfWidth := max(int(left.Width)/2, 1)
	height := int(left.Height)
	out := image.NewRGBA(image.Rect(0, 0, 2*halfWidth, height))
	for idx, half := range []*Buffer{left, right} {
		squeezed := transform.Resize(half.ToImage(), halfWidth, height, transform.Linear)
		at := image.Rect(idx*halfWidth, 0, (idx+1)*halfWidth, height)
		draw.Draw(out, at, squeezed, image.Point{}, draw.Src)
	}

	divider := image.Rect(halfWidth-dividerWidth/2, 0, halfWidth+dividerWidth-dividerWidth/2, height)
	draw.Draw(out, divider, image.NewUniform(dividerColor), image.Point{}, draw.Src)

	for idx, label := range labels {
		if label == "" {
			continue
		}
		drawLabel(out, label, idx*halfWidth+labelX, labelY, labelTextColors[idx], labelFrameColors[idx])
	}
	return FromImage(out), nil
}

// drawLabel draws text with its baseline at (x, y) on a framed box;
// whatever does not fit into dst is clipped.
func drawLabel(
	dst draw.Image,
	text string,
	x, y int,
	textColor, frameColor color.Color,
) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(textColor),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	metrics := face.Metrics()
	box := image.Rect(
		x-labelPadding,
		y-metrics.Ascent.Ceil()-labelPadding,
		x+d.MeasureString(text).Ceil()+labelPadding,
		y+metrics.Descent.Ceil()+labelPadding,
	)
	draw.Draw(dst, box, image.NewUniform(frameColor), image.Point{}, draw.Src)
	draw.Draw(dst, box.Inset(1), image.NewUniform(labelBackground), image.Point{}, draw.Src)
	d.DrawString(text)
}
