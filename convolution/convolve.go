// convolve.go implements the generic 2D correlation over a pixel buffer.

// Package convolution applies an arbitrary filter kernel to a pixel buffer.
package convolution

import (
	"context"
	"fmt"
	"math"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/xaionaro-go/pixfilter/filterkernel"
	"github.com/xaionaro-go/pixfilter/logger"
	"github.com/xaionaro-go/pixfilter/pixbuf"
)

// Convolve correlates the R, G and B channels of src with k and returns
// a new buffer of the same size. Alpha is copied unmodified.
//
// Samples outside the image are replaced by the nearest edge sample,
// and every weighted sum is saturated to [0,255].
func Convolve(
	ctx context.Context,
	src *pixbuf.Buffer,
	k *filterkernel.Kernel,
) (_ret *pixbuf.Buffer, _err error) {
	logger.Tracef(ctx, "Convolve(%s, %s)", src, k)
	defer func() { logger.Tracef(ctx, "/Convolve(%s, %s): %v", src, k, _err) }()

	if err := src.Validate(); err != nil {
		return nil, err
	}
	if k == nil {
		return nil, fmt.Errorf("%w: nil kernel", filterkernel.ErrInvalidParameter)
	}
	if err := k.Validate(); err != nil {
		return nil, err
	}

	dst := pixbuf.New(src.Width, src.Height)
	if len(src.Samples) == 0 {
		return dst, nil
	}

	width := int(src.Width)
	height := int(src.Height)
	parallel.Line(height, func(start, end int) {
		convolveRows(src, dst, k, width, height, start, end)
	})
	return dst, nil
}

func convolveRows(
	src, dst *pixbuf.Buffer,
	k *filterkernel.Kernel,
	width, height int,
	startY, endY int,
) {
	size := k.Size
	half := k.Radius()
	in := src.Samples
	out := dst.Samples

	// the horizontal clamping does not depend on the row
	columns := make([]int, width*size)
	for x := 0; x < width; x++ {
		for kx := 0; kx < size; kx++ {
			columns[x*size+kx] = clampInt(x+kx-half, 0, width-1)
		}
	}

	for y := startY; y < endY; y++ {
		for x := 0; x < width; x++ {
			var r, g, b float64
			for ky := 0; ky < size; ky++ {
				rowOffset := clampInt(y+ky-half, 0, height-1) * width
				weights := k.Weights[ky*size : (ky+1)*size]
				cols := columns[x*size : (x+1)*size]
				for kx, w := range weights {
					idx := (rowOffset + cols[kx]) * pixbuf.BytesPerPixel
					r += float64(in[idx]) * w
					g += float64(in[idx+1]) * w
					b += float64(in[idx+2]) * w
				}
			}

			outIdx := (y*width + x) * pixbuf.BytesPerPixel
			out[outIdx] = ClampUint8(r)
			out[outIdx+1] = ClampUint8(g)
			out[outIdx+2] = ClampUint8(b)
			out[outIdx+3] = in[outIdx+3]
		}
	}
}

func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// ClampUint8 saturates v to [0,255] and rounds it to the nearest integer,
// ties to even.
func ClampUint8(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.RoundToEven(v))
}
