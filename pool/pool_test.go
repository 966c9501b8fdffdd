package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlicePoolZeroes(t *testing.T) {
	p := NewSlicePool[byte](0)
	s := p.Get(16)
	require.Len(t, s, 16)
	for i := range s {
		s[i] = 0xff
	}
	p.Put(s)

	for range 10 {
		s := p.Get(8)
		require.Len(t, s, 8)
		for _, v := range s {
			require.Zero(t, v)
		}
		p.Put(s)
	}
}

func TestSlicePoolMaxCap(t *testing.T) {
	p := NewSlicePool[float64](4)
	s := p.Get(100)
	require.Len(t, s, 100)
	p.Put(s) // dropped, must not panic

	s = p.Get(3)
	require.Len(t, s, 3)
}
