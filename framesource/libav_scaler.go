// libav_scaler.go implements the conversion of decoded frames into RGBA.

package framesource

import (
	"context"
	"fmt"
	"image"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/pixfilter/internal"
	"github.com/xaionaro-go/pixfilter/logger"
	"github.com/xaionaro-go/pixfilter/pixbuf"
)

// rgbaScaler converts frames of one geometry and pixel format into RGBA
// frames of the same geometry.
type rgbaScaler struct {
	*astiav.SoftwareScaleContext
	dst *astiav.Frame
	img *image.RGBA
}

func newRGBAScaler(
	ctx context.Context,
	width, height int,
	srcPixFmt astiav.PixelFormat,
) (*rgbaScaler, error) {
	swsCtx, err := astiav.CreateSoftwareScaleContext(
		width, height, srcPixFmt,
		width, height, astiav.PixelFormatRgba,
		astiav.NewSoftwareScaleContextFlags(astiav.SoftwareScaleContextFlagBilinear),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create a software scale context: %w", err)
	}
	internal.SetFinalizerFree(ctx, swsCtx)

	dst := astiav.AllocFrame()
	internal.SetFinalizerFree(ctx, dst)
	dst.SetWidth(width)
	dst.SetHeight(height)
	dst.SetPixelFormat(astiav.PixelFormatRgba)
	if err := dst.AllocBuffer(0); err != nil {
		return nil, fmt.Errorf("unable to allocate the RGBA frame buffer: %w", err)
	}

	return &rgbaScaler{
		SoftwareScaleContext: swsCtx,
		dst:                  dst,
		img:                  image.NewRGBA(image.Rect(0, 0, width, height)),
	}, nil
}

func (s *rgbaScaler) String() string {
	return fmt.Sprintf(
		"rgbaScaler(%dx%d:%s)",
		s.SoftwareScaleContext.SourceWidth(),
		s.SoftwareScaleContext.SourceHeight(),
		s.SoftwareScaleContext.SourcePixelFormat(),
	)
}

// Fits reports whether the scaler was built for frames like f.
func (s *rgbaScaler) Fits(f *astiav.Frame) bool {
	return s.SoftwareScaleContext.SourceWidth() == f.Width() &&
		s.SoftwareScaleContext.SourceHeight() == f.Height() &&
		s.SoftwareScaleContext.SourcePixelFormat() == f.PixelFormat()
}

func (s *rgbaScaler) Convert(
	ctx context.Context,
	src *astiav.Frame,
) (_ret *pixbuf.Buffer, _err error) {
	logger.Tracef(ctx, "Convert")
	defer func() { logger.Tracef(ctx, "/Convert: %v", _err) }()

	if err := s.SoftwareScaleContext.ScaleFrame(src, s.dst); err != nil {
		return nil, fmt.Errorf("unable to scale a frame: %w", err)
	}
	if err := s.dst.Data().ToImage(s.img); err != nil {
		return nil, fmt.Errorf("unable to export the RGBA frame: %w", err)
	}
	return pixbuf.FromImage(s.img), nil
}
