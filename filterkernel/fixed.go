package filterkernel

// Box5x5 is a uniform 5×5 averaging kernel.
func Box5x5() *Kernel {
	weights := make([]float64, 25)
	for i := range weights {
		weights[i] = 1.0 / 25
	}
	return mustNew(5, weights...)
}

// Sharpen3x3 boosts the center against its four orthogonal neighbors.
// The weights sum to 1, yet single terms push channels outside [0,255].
func Sharpen3x3() *Kernel {
	return mustNew(3,
		0, -1, 0,
		-1, 5, -1,
		0, -1, 0,
	)
}

// SobelX is the horizontal gradient operator.
func SobelX() *Kernel {
	return mustNew(3,
		-1, 0, 1,
		-2, 0, 2,
		-1, 0, 1,
	)
}

// SobelY is the vertical gradient operator.
func SobelY() *Kernel {
	return mustNew(3,
		-1, -2, -1,
		0, 0, 0,
		1, 2, 1,
	)
}
