// kernel.go defines Kernel, a square matrix of convolution weights.

// Package filterkernel provides convolution kernels: the parametric
// Gaussian generator and the fixed kernels of the built-in filters.
package filterkernel

import (
	"errors"
	"fmt"
)

var ErrInvalidParameter = errors.New("invalid parameter")

// Kernel is a Size×Size row-major weight matrix. The weight at (kx, ky)
// applies to the sample at offset (kx-Size/2, ky-Size/2) from the
// target pixel.
//
// A Kernel is never modified after construction.
type Kernel struct {
	Size    int
	Weights []float64
}

// New wraps the given weights; the amount of weights must be size*size
// and size must be odd.
func New(size int, weights ...float64) (*Kernel, error) {
	k := &Kernel{
		Size:    size,
		Weights: weights,
	}
	if err := k.Validate(); err != nil {
		return nil, err
	}
	return k, nil
}

func mustNew(size int, weights ...float64) *Kernel {
	k, err := New(size, weights...)
	if err != nil {
		panic(err)
	}
	return k
}

func (k *Kernel) Validate() error {
	if k.Size < 1 || k.Size%2 == 0 {
		return fmt.Errorf("%w: kernel size must be odd and >= 1, got %d", ErrInvalidParameter, k.Size)
	}
	if len(k.Weights) != k.Size*k.Size {
		return fmt.Errorf("%w: a %dx%d kernel requires %d weights, got %d",
			ErrInvalidParameter, k.Size, k.Size, k.Size*k.Size, len(k.Weights))
	}
	return nil
}

// Radius is the distance from the center cell to the edge of the kernel.
func (k *Kernel) Radius() int {
	return k.Size / 2
}

// At returns the weight of cell (kx, ky).
func (k *Kernel) At(kx, ky int) float64 {
	return k.Weights[ky*k.Size+kx]
}

// Sum returns the sum of all weights; it is 1 for brightness-preserving kernels.
func (k *Kernel) Sum() float64 {
	var sum float64
	for _, w := range k.Weights {
		sum += w
	}
	return sum
}

func (k *Kernel) String() string {
	return fmt.Sprintf("Kernel(%dx%d)", k.Size, k.Size)
}
