package control

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/facebookincubator/go-belt"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/pixfilter/filter"
	"github.com/xaionaro-go/pixfilter/framepump"
	"github.com/xaionaro-go/pixfilter/logger"
)

type snapshotCounter struct {
	count int
}

func (s *snapshotCounter) Request(context.Context) {
	s.count++
}

func newController(
	t *testing.T,
	initial filter.Spec,
	gaussian filter.Gaussian,
) (context.Context, *Controller, *snapshotCounter) {
	ctx, _ := logger.Setup(context.Background(), logger.LevelDebug)
	t.Cleanup(func() { belt.Flush(ctx) })
	snapshot := &snapshotCounter{}
	return ctx, New(ctx, framepump.NewSpecHolder(initial), snapshot, gaussian), snapshot
}

func TestNextFilterWithEvenKernelSize(t *testing.T) {
	ctx, c, _ := newController(t, filter.Identity{}, filter.Gaussian{KernelSize: 4, Sigma: 2})

	require.NoError(t, c.NextFilter(ctx))
	spec := c.Spec.Get(ctx)
	require.Equal(t, filter.Gaussian{KernelSize: 5, Sigma: 2}, spec)
	require.NoError(t, filter.Validate(spec))
}

func TestNextFilterCycle(t *testing.T) {
	ctx, c, _ := newController(t, filter.Identity{}, filter.Gaussian{KernelSize: 5, Sigma: 2})

	var names []string
	for range filter.Names() {
		require.NoError(t, c.NextFilter(ctx))
		names = append(names, filter.Name(c.Spec.Get(ctx)))
	}
	require.Equal(t, []string{
		filter.NameGaussian,
		filter.NameBox,
		filter.NameSharpen,
		filter.NameEdgeDetect,
		filter.NameGrayscale,
		filter.NameIdentity,
	}, names)
}

func TestInitialGaussianFromHolder(t *testing.T) {
	ctx, c, _ := newController(t, filter.Gaussian{KernelSize: 9}, filter.Gaussian{KernelSize: 4})
	require.Equal(t, filter.Gaussian{KernelSize: 9}.Resolve(), c.Gaussian(ctx))
}

func TestHandleKey(t *testing.T) {
	ctx, c, snapshot := newController(t, filter.Identity{}, filter.Gaussian{KernelSize: 5, Sigma: 2})

	for _, tc := range []struct {
		key  rune
		want filter.Spec
	}{
		{'g', filter.Gaussian{KernelSize: 5, Sigma: 2}},
		{'+', filter.Gaussian{KernelSize: 7, Sigma: 2}},
		{'=', filter.Gaussian{KernelSize: 9, Sigma: 2}},
		{']', filter.Gaussian{KernelSize: 9, Sigma: 3}},
		{'-', filter.Gaussian{KernelSize: 7, Sigma: 3}},
		{'[', filter.Gaussian{KernelSize: 7, Sigma: 2}},
		{'[', filter.Gaussian{KernelSize: 7, Sigma: 1}},
		{'[', filter.Gaussian{KernelSize: 7, Sigma: 1}},
		{'b', filter.Box{}},
		// stepping while another filter is selected keeps that filter
		{'+', filter.Box{}},
		{'g', filter.Gaussian{KernelSize: 9, Sigma: 1}},
		{'2', filter.Sharpen{}},
		{'3', filter.EdgeDetect{}},
		{'4', filter.Grayscale{}},
		{'n', filter.Identity{}},
		{'0', filter.Identity{}},
		{'1', filter.Gaussian{KernelSize: filter.DefaultKernelSize}},
		{'x', filter.Gaussian{KernelSize: filter.DefaultKernelSize}},
	} {
		require.NoError(t, c.HandleKey(ctx, tc.key), "key %q", tc.key)
		require.Equal(t, tc.want, c.Spec.Get(ctx), "key %q", tc.key)
	}

	require.Zero(t, snapshot.count)
	require.NoError(t, c.HandleKey(ctx, 's'))
	require.Equal(t, 1, snapshot.count)

	require.ErrorIs(t, c.HandleKey(ctx, 'q'), ErrQuit)
	require.ErrorIs(t, c.HandleKey(ctx, keyEscape), ErrQuit)
}

func TestKernelSizeBounds(t *testing.T) {
	ctx, c, _ := newController(t, filter.Gaussian{KernelSize: 5, Sigma: 2}, filter.Gaussian{})

	for range 10 {
		require.NoError(t, c.HandleKey(ctx, '+'))
	}
	require.Equal(t, filter.Gaussian{KernelSize: filter.MaxKernelSize, Sigma: 2}, c.Spec.Get(ctx))
	for range 10 {
		require.NoError(t, c.HandleKey(ctx, '-'))
	}
	require.Equal(t, filter.Gaussian{KernelSize: filter.MinKernelSize, Sigma: 2}, c.Spec.Get(ctx))
	for range 20 {
		require.NoError(t, c.HandleKey(ctx, ']'))
	}
	require.Equal(t, filter.Gaussian{KernelSize: filter.MinKernelSize, Sigma: filter.MaxSigma}, c.Spec.Get(ctx))
}

func TestServeKeys(t *testing.T) {
	ctx, c, snapshot := newController(t, filter.Identity{}, filter.Gaussian{KernelSize: 5, Sigma: 2})

	err := c.ServeKeys(ctx, strings.NewReader("g\n+\n+ ]\ns\nq\n3\n"))
	require.ErrorIs(t, err, ErrQuit)
	require.Equal(t, filter.Gaussian{KernelSize: 9, Sigma: 3}, c.Spec.Get(ctx))
	require.Equal(t, 1, snapshot.count)
}

func TestServeKeysUntilEOF(t *testing.T) {
	ctx, c, _ := newController(t, filter.Identity{}, filter.Gaussian{KernelSize: 5, Sigma: 2})

	require.NoError(t, c.ServeKeys(ctx, strings.NewReader("b")))
	require.Equal(t, filter.Box{}, c.Spec.Get(ctx))
}

func TestServeKeysReadError(t *testing.T) {
	ctx, c, _ := newController(t, filter.Identity{}, filter.Gaussian{KernelSize: 5, Sigma: 2})

	readErr := errors.New("terminal is gone")
	require.ErrorIs(t, c.ServeKeys(ctx, iotest.ErrReader(readErr)), readErr)
}

func TestServeKeysCancelled(t *testing.T) {
	ctx, c, _ := newController(t, filter.Identity{}, filter.Gaussian{KernelSize: 5, Sigma: 2})

	ctx, cancelFn := context.WithCancel(ctx)
	cancelFn()
	require.ErrorIs(t, c.ServeKeys(ctx, strings.NewReader("b")), context.Canceled)
	require.Equal(t, filter.Identity{}, c.Spec.Get(ctx))
}
