// mama.go implements the MESA Adaptive Moving Average (MAMA).

package indicator

import (
	"sync"

	indicators "github.com/lmpizarro/go_ehlers_indicators"
)

const (
	DefaultFastLimit = 0.5
	DefaultSlowLimit = 0.05
)

// MAMA smooths the last N samples; until N samples were seen it returns
// the samples as they are.
type MAMA[T Number] struct {
	FastLimit float64
	SlowLimit float64

	locker  sync.Mutex
	window  ring
	ordered []float64
	count   int
}

var _ MovingAverage[int64] = (*MAMA[int64])(nil)

func NewMAMADefault[T Number](n int) *MAMA[T] {
	return NewMAMA[T](n, DefaultFastLimit, DefaultSlowLimit)
}

func NewMAMA[T Number](
	n int,
	fastLimit float64,
	slowLimit float64,
) *MAMA[T] {
	return &MAMA[T]{
		FastLimit: fastLimit,
		SlowLimit: slowLimit,
		window:    newRing(n),
		ordered:   make([]float64, n),
	}
}

func (m *MAMA[T]) Update(v T) T {
	m.locker.Lock()
	defer m.locker.Unlock()

	m.window.Push(float64(v))
	m.count++
	if m.count < m.window.Len() {
		return v
	}

	m.window.CopyOrdered(m.ordered)
	result := indicators.MAMA(m.ordered, m.FastLimit, m.SlowLimit)
	return T(result[len(result)-1])
}

func (m *MAMA[T]) InitPeriod() int64 {
	return int64(m.window.Len())
}

func (m *MAMA[T]) Valid() bool {
	m.locker.Lock()
	defer m.locker.Unlock()
	return m.count >= m.window.Len()
}

// ring keeps the last len(values) samples.
type ring struct {
	values []float64
	next   int
}

func newRing(n int) ring {
	return ring{values: make([]float64, n)}
}

func (r *ring) Len() int {
	return len(r.values)
}

func (r *ring) Push(v float64) {
	r.values[r.next] = v
	r.next = (r.next + 1) % len(r.values)
}

// CopyOrdered copies the samples into dst, oldest first.
func (r *ring) CopyOrdered(dst []float64) {
	n := copy(dst, r.values[r.next:])
	copy(dst[n:], r.values[:r.next])
}
