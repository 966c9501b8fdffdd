// spec.go defines Spec, the closed set of filters the dispatcher understands.

// Package filter implements the per-frame filters (Gaussian blur, box blur,
// sharpen, edge detection, grayscale) and the dispatcher selecting among them.
package filter

import (
	"fmt"
)

// Spec selects a filter together with its parameters.
//
// The set of implementations is closed: only the types of this package
// satisfy Spec.
type Spec interface {
	fmt.Stringer
	isSpec()
}

// Identity passes frames through unchanged.
type Identity struct{}

// Gaussian blurs with a generated KernelSize×KernelSize Gaussian kernel.
//
// A zero KernelSize selects DefaultKernelSize, a zero Sigma derives sigma
// from the kernel size.
type Gaussian struct {
	KernelSize int
	Sigma      float64
}

// Box blurs with a uniform 5×5 kernel.
type Box struct{}

// Sharpen applies the 3×3 sharpening kernel.
type Sharpen struct{}

// EdgeDetect renders the Sobel gradient magnitude as a grayscale map.
type EdgeDetect struct{}

// Grayscale replaces R, G and B with their average.
type Grayscale struct{}

var (
	_ Spec = Identity{}
	_ Spec = Gaussian{}
	_ Spec = Box{}
	_ Spec = Sharpen{}
	_ Spec = EdgeDetect{}
	_ Spec = Grayscale{}
)

func (Identity) isSpec()   {}
func (Gaussian) isSpec()   {}
func (Box) isSpec()        {}
func (Sharpen) isSpec()    {}
func (EdgeDetect) isSpec() {}
func (Grayscale) isSpec()  {}

func (Identity) String() string   { return NameIdentity }
func (Box) String() string        { return NameBox }
func (Sharpen) String() string    { return NameSharpen }
func (EdgeDetect) String() string { return NameEdgeDetect }
func (Grayscale) String() string  { return NameGrayscale }

func (g Gaussian) String() string {
	return fmt.Sprintf("%s(k:%d, s:%v)", NameGaussian, g.KernelSize, g.Sigma)
}
