// gaussian.go implements the Gaussian kernel generator.

package filterkernel

import (
	"fmt"
	"math"
)

// NewGaussian returns a size×size Gaussian kernel with the given standard
// deviation, normalized so that its weights sum to 1.
func NewGaussian(size int, sigma float64) (*Kernel, error) {
	if size < 1 || size%2 == 0 {
		return nil, fmt.Errorf("%w: Gaussian kernel size must be odd and >= 1, got %d", ErrInvalidParameter, size)
	}
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return nil, fmt.Errorf("%w: Gaussian sigma must be a finite positive number, got %v", ErrInvalidParameter, sigma)
	}

	weights := make([]float64, size*size)
	mean := size / 2
	twoSigmaSq := 2 * sigma * sigma
	if twoSigmaSq == 0 {
		// sigma is too small to spread past the center cell
		weights[mean*size+mean] = 1
		return &Kernel{Size: size, Weights: weights}, nil
	}

	// the 1/(2πσ²) factor cancels out in the normalization
	var sum float64
	for y := 0; y < size; y++ {
		dy := float64(y - mean)
		for x := 0; x < size; x++ {
			dx := float64(x - mean)
			v := math.Exp(-(dx*dx + dy*dy) / twoSigmaSq)
			weights[y*size+x] = v
			sum += v
		}
	}
	if !(sum > 0) || math.IsInf(sum, 0) {
		return nil, fmt.Errorf("%w: Gaussian sigma %v yields a degenerate kernel", ErrInvalidParameter, sigma)
	}
	for i := range weights {
		weights[i] /= sum
	}

	return &Kernel{
		Size:    size,
		Weights: weights,
	}, nil
}

// AutoSigma derives sigma from the kernel size, the way OpenCV does
// when it is asked for a Gaussian blur with sigma 0.
func AutoSigma(size int) float64 {
	return 0.3*(float64(size-1)*0.5-1) + 0.8
}
