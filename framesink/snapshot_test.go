package framesink

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/pixfilter/filter"
	"github.com/xaionaro-go/pixfilter/pixbuf"
)

var testTime = time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local)

func TestFileName(t *testing.T) {
	tests := []struct {
		spec     filter.Spec
		expected string
	}{
		{filter.Gaussian{KernelSize: 7, Sigma: 3}, "photo_filter_gaussian_k7_s3_20240309_140507.png"},
		{filter.Gaussian{KernelSize: 5, Sigma: 1.5}, "photo_filter_gaussian_k5_s1.5_20240309_140507.png"},
		{filter.Box{}, "photo_filter_box_20240309_140507.png"},
		{filter.EdgeDetect{}, "photo_filter_edge_20240309_140507.png"},
		{filter.Identity{}, "photo_filter_none_20240309_140507.png"},
		{nil, "photo_filter_none_20240309_140507.png"},
	}
	for _, test := range tests {
		require.Equal(t, test.expected, FileName(test.spec, testTime))
	}
}

func TestSnapshotRequest(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "out")
	s, err := NewSnapshot(dir, false)
	require.NoError(t, err)
	s.Now = func() time.Time { return testTime }

	buf := pixbuf.New(3, 2)
	buf.SetPixel(1, 1, 200, 100, 50, 255)

	require.NoError(t, s.Consume(ctx, buf, filter.Sharpen{}))
	require.Empty(t, s.LastPath(ctx))
	_, err = os.Stat(dir)
	require.True(t, os.IsNotExist(err), "nothing is written without a request")

	s.Request(ctx)
	require.NoError(t, s.Consume(ctx, buf, filter.Sharpen{}))
	path := s.LastPath(ctx)
	require.Equal(t, filepath.Join(dir, "photo_filter_sharpen_20240309_140507.png"), path)

	img, err := imgio.Open(path)
	require.NoError(t, err)
	require.True(t, buf.Equal(pixbuf.FromImage(img)))

	require.NoError(t, os.Remove(path))
	require.NoError(t, s.Consume(ctx, buf, filter.Sharpen{}))
	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err), "a request saves only one frame")
}

func TestSnapshotEvery(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewSnapshot(dir, true)
	require.NoError(t, err)
	s.Now = func() time.Time { return testTime }

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Consume(ctx, pixbuf.New(2, 2), filter.Grayscale{}))
	}
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "photo_filter_grayscale_20240309_140507_000002.png", filepath.Base(s.LastPath(ctx)))
}

func TestMulti(t *testing.T) {
	ctx := context.Background()
	var calls []string
	sink := Multi{
		Func(func(context.Context, *pixbuf.Buffer, filter.Spec) error {
			calls = append(calls, "a")
			return nil
		}),
		Func(func(context.Context, *pixbuf.Buffer, filter.Spec) error {
			calls = append(calls, "b")
			return os.ErrClosed
		}),
		Func(func(context.Context, *pixbuf.Buffer, filter.Spec) error {
			calls = append(calls, "c")
			return nil
		}),
	}
	require.ErrorIs(t, sink.Consume(ctx, pixbuf.New(1, 1), filter.Box{}), os.ErrClosed)
	require.Equal(t, []string{"a", "b"}, calls)
}
