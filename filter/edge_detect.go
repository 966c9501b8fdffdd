// edge_detect.go implements the Sobel edge detector.

package filter

import (
	"context"
	"math"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/xaionaro-go/pixfilter/convolution"
	"github.com/xaionaro-go/pixfilter/filterkernel"
	"github.com/xaionaro-go/pixfilter/internal"
	"github.com/xaionaro-go/pixfilter/logger"
	"github.com/xaionaro-go/pixfilter/pixbuf"
	"github.com/xaionaro-go/pixfilter/pool"
)

// 1280×720 luminance planes fit comfortably; bigger ones are not retained.
var lumaPool = pool.NewSlicePool[uint8](4096 * 2160)

// detectEdges computes the Sobel gradient magnitude of the luminance.
//
// Only interior pixels are computed: the outermost ring of the output
// stays transparent black (0,0,0,0).
func detectEdges(
	ctx context.Context,
	src *pixbuf.Buffer,
) (*pixbuf.Buffer, error) {
	logger.Tracef(ctx, "detectEdges(%s)", src)
	defer logger.Tracef(ctx, "/detectEdges(%s)", src)

	width, height := int(src.Width), int(src.Height)
	dst := pixbuf.New(src.Width, src.Height)
	if width < 3 || height < 3 {
		return dst, nil
	}

	gray := lumaPool.Get(width * height)
	defer lumaPool.Put(gray)
	parallel.Line(height, func(start, end int) {
		for i := start * width; i < end*width; i++ {
			idx := i * pixbuf.BytesPerPixel
			gray[i] = luminance(src.Samples[idx], src.Samples[idx+1], src.Samples[idx+2])
		}
	})

	sobelX := filterkernel.SobelX()
	sobelY := filterkernel.SobelY()
	internal.Assert(ctx, sobelX.Size == 3 && sobelY.Size == 3, sobelX, sobelY)

	parallel.Line(height-2, func(start, end int) {
		for y := start + 1; y < end+1; y++ {
			for x := 1; x < width-1; x++ {
				var gx, gy float64
				for ky := 0; ky < 3; ky++ {
					row := (y + ky - 1) * width
					for kx := 0; kx < 3; kx++ {
						v := float64(gray[row+x+kx-1])
						gx += v * sobelX.At(kx, ky)
						gy += v * sobelY.At(kx, ky)
					}
				}

				magnitude := convolution.ClampUint8(math.Sqrt(gx*gx + gy*gy))
				dst.SetPixel(x, y, magnitude, magnitude, magnitude, 255)
			}
		}
	})
	return dst, nil
}
