// grayscale.go implements the luminance-averaging filter.

package filter

import (
	"context"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/xaionaro-go/pixfilter/logger"
	"github.com/xaionaro-go/pixfilter/pixbuf"
)

// luminance returns round((r+g+b)/3).
func luminance(r, g, b uint8) uint8 {
	return uint8((uint(r) + uint(g) + uint(b) + 1) / 3)
}

func grayscale(
	ctx context.Context,
	src *pixbuf.Buffer,
) (*pixbuf.Buffer, error) {
	logger.Tracef(ctx, "grayscale(%s)", src)
	defer logger.Tracef(ctx, "/grayscale(%s)", src)

	dst := pixbuf.New(src.Width, src.Height)
	rowLen := int(src.Width) * pixbuf.BytesPerPixel
	parallel.Line(int(src.Height), func(start, end int) {
		in := src.Samples[start*rowLen : end*rowLen]
		out := dst.Samples[start*rowLen : end*rowLen]
		for i := 0; i < len(in); i += pixbuf.BytesPerPixel {
			avg := luminance(in[i], in[i+1], in[i+2])
			out[i] = avg
			out[i+1] = avg
			out[i+2] = avg
			out[i+3] = in[i+3]
		}
	})
	return dst, nil
}
