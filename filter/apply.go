// apply.go implements the dispatcher routing a frame to the selected filter.

package filter

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/pixfilter/filterkernel"
	"github.com/xaionaro-go/pixfilter/logger"
	"github.com/xaionaro-go/pixfilter/pixbuf"
)

// Apply filters src according to spec and returns a new buffer of the
// same dimensions; src is never modified.
//
// Identity, a nil spec and anything unrecognized return a byte-identical
// copy of src.
func Apply(
	ctx context.Context,
	src *pixbuf.Buffer,
	spec Spec,
) (_ret *pixbuf.Buffer, _err error) {
	logger.Tracef(ctx, "Apply(%s, %v)", src, spec)
	defer func() { logger.Tracef(ctx, "/Apply(%s, %v): %v", src, spec, _err) }()

	if err := src.Validate(); err != nil {
		return nil, err
	}

	switch spec := spec.(type) {
	case Gaussian:
		return gaussianBlur(ctx, src, spec)
	case Box:
		return boxBlur(ctx, src)
	case Sharpen:
		return sharpen(ctx, src)
	case EdgeDetect:
		return detectEdges(ctx, src)
	case Grayscale:
		return grayscale(ctx, src)
	case Identity, nil:
		return src.Clone(), nil
	default:
		logger.Debugf(ctx, "unknown filter spec %T, passing the frame through", spec)
		return src.Clone(), nil
	}
}

// Validate reports whether spec can be applied; only Gaussian carries
// parameters that may be invalid.
func Validate(spec Spec) error {
	g, ok := spec.(Gaussian)
	if !ok {
		return nil
	}
	g = g.Resolve()
	if _, err := filterkernel.NewGaussian(g.KernelSize, g.Sigma); err != nil {
		return fmt.Errorf("invalid %s: %w", g, err)
	}
	return nil
}
