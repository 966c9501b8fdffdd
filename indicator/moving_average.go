// moving_average.go defines the MovingAverage interface.

// Package indicator provides smoothing of noisy measurements such as
// per-frame processing times.
package indicator

import (
	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

type MovingAverage[T Number] interface {
	Update(v T) T
	InitPeriod() int64
	Valid() bool
}
