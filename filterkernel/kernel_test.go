package filterkernel

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGaussianNormalized(t *testing.T) {
	for size := 1; size <= 21; size += 2 {
		for _, sigma := range []float64{0.1, 0.5, 1, 2.5, 5, 10, 100} {
			t.Run(fmt.Sprintf("size%d_sigma%v", size, sigma), func(t *testing.T) {
				k, err := NewGaussian(size, sigma)
				require.NoError(t, err)
				require.NoError(t, k.Validate())
				require.InDelta(t, 1.0, k.Sum(), 1e-6)
			})
		}
	}
}

func TestGaussianExtremeSigma(t *testing.T) {
	for _, sigma := range []float64{math.SmallestNonzeroFloat64, 1e-300, 1e-200, 1e-160, 1e-150} {
		k, err := NewGaussian(3, sigma)
		require.NoError(t, err, "sigma:%v", sigma)
		require.Equal(t, []float64{0, 0, 0, 0, 1, 0, 0, 0, 0}, k.Weights, "sigma:%v", sigma)
	}
	for _, sigma := range []float64{1e160, 1e200, math.MaxFloat64} {
		k, err := NewGaussian(3, sigma)
		require.NoError(t, err, "sigma:%v", sigma)
		for _, w := range k.Weights {
			require.InDelta(t, 1.0/9, w, 1e-12, "sigma:%v", sigma)
		}
	}
}

func TestGaussianFalloff(t *testing.T) {
	k, err := NewGaussian(3, 1.0)
	require.NoError(t, err)

	center := k.At(1, 1)
	corners := []float64{k.At(0, 0), k.At(2, 0), k.At(0, 2), k.At(2, 2)}
	edges := []float64{k.At(1, 0), k.At(0, 1), k.At(2, 1), k.At(1, 2)}
	for _, w := range k.Weights {
		require.LessOrEqual(t, w, center)
	}
	for _, c := range corners {
		for _, w := range k.Weights {
			require.GreaterOrEqual(t, w, c)
		}
		require.InDelta(t, corners[0], c, 1e-12)
	}
	for _, e := range edges {
		require.Greater(t, e, corners[0])
		require.Less(t, e, center)
	}
}

func TestGaussianSymmetric(t *testing.T) {
	k, err := NewGaussian(7, 2)
	require.NoError(t, err)
	for y := 0; y < k.Size; y++ {
		for x := 0; x < k.Size; x++ {
			assert.InDelta(t, k.At(x, y), k.At(k.Size-1-x, y), 1e-12)
			assert.InDelta(t, k.At(x, y), k.At(y, x), 1e-12)
		}
	}
}

func TestGaussianInvalid(t *testing.T) {
	for _, tc := range []struct {
		size  int
		sigma float64
	}{
		{0, 1},
		{-3, 1},
		{4, 1},
		{3, 0},
		{3, -1},
		{3, math.NaN()},
		{3, math.Inf(1)},
	} {
		_, err := NewGaussian(tc.size, tc.sigma)
		require.ErrorIs(t, err, ErrInvalidParameter, "size:%d sigma:%v", tc.size, tc.sigma)
	}
}

func TestAutoSigma(t *testing.T) {
	require.InDelta(t, 0.8, AutoSigma(3), 1e-12)
	require.InDelta(t, 2.6, AutoSigma(15), 1e-12)
}

func TestFixedKernels(t *testing.T) {
	box := Box5x5()
	require.Equal(t, 5, box.Size)
	require.InDelta(t, 1.0, box.Sum(), 1e-12)

	sharpen := Sharpen3x3()
	require.Equal(t, 3, sharpen.Size)
	require.InDelta(t, 1.0, sharpen.Sum(), 1e-12)
	require.Equal(t, 5.0, sharpen.At(1, 1))
	require.Equal(t, 0.0, sharpen.At(0, 0))

	require.InDelta(t, 0, SobelX().Sum(), 1e-12)
	require.InDelta(t, 0, SobelY().Sum(), 1e-12)
	require.Equal(t, 2.0, SobelX().At(2, 1))
	require.Equal(t, 2.0, SobelY().At(1, 2))
}

func TestNewValidates(t *testing.T) {
	_, err := New(3, 1, 2, 3)
	require.ErrorIs(t, err, ErrInvalidParameter)
	_, err = New(2, 1, 1, 1, 1)
	require.ErrorIs(t, err, ErrInvalidParameter)
	k, err := New(1, 1)
	require.NoError(t, err)
	require.Equal(t, 0, k.Radius())
}
