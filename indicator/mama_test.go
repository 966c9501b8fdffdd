package indicator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRingOrder(t *testing.T) {
	r := newRing(4)
	for i := 1; i <= 6; i++ {
		r.Push(float64(i))
	}
	dst := make([]float64, 4)
	r.CopyOrdered(dst)
	require.Equal(t, []float64{3, 4, 5, 6}, dst)
}

func TestMAMA(t *testing.T) {
	t.Run("warm-up", func(t *testing.T) {
		m := NewMAMADefault[int64](10)
		for i := int64(0); i < 9; i++ {
			require.Equal(t, i*7, m.Update(i*7))
			require.False(t, m.Valid())
		}
		m.Update(0)
		require.True(t, m.Valid())
		require.Equal(t, int64(10), m.InitPeriod())
	})

	t.Run("flat", func(t *testing.T) {
		m := NewMAMADefault[time.Duration](30)
		for range 100 {
			require.InDelta(t, float64(5*time.Millisecond), float64(m.Update(5*time.Millisecond)), float64(time.Microsecond))
		}
	})

	t.Run("ramp", func(t *testing.T) {
		m := NewMAMA[int64](50, 0.3, 0.05)
		for i := int64(0); i <= 100; i++ {
			v := m.Update(i)
			require.True(t, i/2 <= v && v <= i, "%d: %d", i, v)
		}
	})

	t.Run("jitter", func(t *testing.T) {
		m := NewMAMA[int64](50, 0.3, 0.05)
		for i := range 100 {
			for _, sample := range []int64{0, 100} {
				v := m.Update(sample)
				if i > 50 {
					require.True(t, 40 <= v && v <= 60, "%d: %d", i, v)
				}
			}
		}
	})
}
