package framesource

import (
	"context"
	"image"
	"image/color"
	"io"
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/pixfilter/pixbuf"
)

func TestImagesOnce(t *testing.T) {
	ctx := context.Background()
	a, b := pixbuf.New(2, 2), pixbuf.New(3, 1)
	a.SetPixel(1, 1, 1, 2, 3, 4)

	src := NewImages(false, a, b)
	defer src.Close(ctx)

	got, err := src.Next(ctx)
	require.NoError(t, err)
	require.True(t, got.Equal(a))
	got.SetPixel(0, 0, 9, 9, 9, 9)
	require.False(t, got.Equal(a), "the source must hand out copies")

	got, err = src.Next(ctx)
	require.NoError(t, err)
	require.True(t, got.Equal(b))

	_, err = src.Next(ctx)
	require.ErrorIs(t, err, io.EOF)
}

func TestImagesLoop(t *testing.T) {
	ctx := context.Background()
	a := pixbuf.New(1, 1)
	src := NewImages(true, a)
	for i := 0; i < 5; i++ {
		got, err := src.Next(ctx)
		require.NoError(t, err)
		require.True(t, got.Equal(a))
	}

	require.NoError(t, src.Close(ctx))
	require.NoError(t, src.Close(ctx))
	_, err := src.Next(ctx)
	require.ErrorIs(t, err, ErrClosed)
}

func TestImagesEmpty(t *testing.T) {
	_, err := NewImages(true).Next(context.Background())
	require.ErrorIs(t, err, io.EOF)
}

func TestImagesFromFiles(t *testing.T) {
	ctx := context.Background()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(2, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, imgio.Save(path, img, imgio.PNGEncoder()))

	src, err := NewImagesFromFiles(ctx, false, path)
	require.NoError(t, err)
	got, err := src.Next(ctx)
	require.NoError(t, err)
	require.Equal(t, uint32(4), got.Width)
	require.Equal(t, uint32(3), got.Height)
	r, g, b, a := got.Pixel(2, 1)
	require.Equal(t, [4]uint8{10, 20, 30, 255}, [4]uint8{r, g, b, a})

	_, err = NewImagesFromFiles(ctx, false, filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
}
