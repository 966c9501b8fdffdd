// gaussian.go implements the parametric Gaussian blur.

package filter

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/pixfilter/convolution"
	"github.com/xaionaro-go/pixfilter/filterkernel"
	"github.com/xaionaro-go/pixfilter/pixbuf"
)

const (
	DefaultKernelSize = 15

	// the range exposed by the controls
	MinKernelSize = 3
	MaxKernelSize = 15
	MinSigma      = 1
	MaxSigma      = 10
)

// Resolve substitutes the defaults for zero parameters.
func (g Gaussian) Resolve() Gaussian {
	if g.KernelSize == 0 {
		g.KernelSize = DefaultKernelSize
	}
	if g.Sigma == 0 {
		g.Sigma = filterkernel.AutoSigma(g.KernelSize)
	}
	return g
}

// Clamp snaps the parameters into the range the controls expose;
// an even kernel size is rounded up to the next odd one.
func (g Gaussian) Clamp() Gaussian {
	if g.KernelSize%2 == 0 {
		g.KernelSize++
	}
	g.KernelSize = min(max(g.KernelSize, MinKernelSize), MaxKernelSize)
	g.Sigma = min(max(g.Sigma, MinSigma), MaxSigma)
	return g
}

// StepKernelSize moves the kernel size by steps odd sizes (±2 each)
// within the range of the controls.
func (g Gaussian) StepKernelSize(steps int) Gaussian {
	g = g.Resolve().Clamp()
	g.KernelSize += 2 * steps
	return g.Clamp()
}

// StepSigma moves sigma by steps units within the range of the controls.
func (g Gaussian) StepSigma(steps int) Gaussian {
	g = g.Resolve().Clamp()
	g.Sigma += float64(steps)
	return g.Clamp()
}

func gaussianBlur(
	ctx context.Context,
	src *pixbuf.Buffer,
	spec Gaussian,
) (*pixbuf.Buffer, error) {
	spec = spec.Resolve()
	k, err := filterkernel.NewGaussian(spec.KernelSize, spec.Sigma)
	if err != nil {
		return nil, fmt.Errorf("unable to generate the Gaussian kernel: %w", err)
	}
	return convolution.Convolve(ctx, src, k)
}
