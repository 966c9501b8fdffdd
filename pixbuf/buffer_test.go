package pixbuf

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	buf := New(3, 2)
	require.Len(t, buf.Samples, 3*2*4)
	require.NoError(t, buf.Validate())
	for _, s := range buf.Samples {
		require.Zero(t, s)
	}
}

func TestValidate(t *testing.T) {
	var nilBuf *Buffer
	require.ErrorIs(t, nilBuf.Validate(), ErrInvalidBuffer)

	buf := &Buffer{Width: 2, Height: 2, Samples: make([]byte, 15)}
	require.ErrorIs(t, buf.Validate(), ErrInvalidBuffer)

	buf.Samples = make([]byte, 16)
	require.NoError(t, buf.Validate())
}

func TestImageRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 10), uint8(y * 20), 200, 255})
		}
	}

	buf := FromImage(img)
	require.Equal(t, uint32(4), buf.Width)
	require.Equal(t, uint32(3), buf.Height)
	require.NoError(t, buf.Validate())

	r, g, b, a := buf.Pixel(3, 2)
	require.Equal(t, [4]uint8{30, 40, 200, 255}, [4]uint8{r, g, b, a})

	out := buf.ToImage()
	require.Equal(t, img.Pix, out.Pix)

	out.Pix[0] = 99
	require.NotEqual(t, uint8(99), buf.Samples[0], "ToImage must not share memory")
}

func TestFromSubImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.SetRGBA(5, 6, color.RGBA{1, 2, 3, 4})
	sub := img.SubImage(image.Rect(4, 4, 8, 8))

	buf := FromImage(sub)
	require.Equal(t, uint32(4), buf.Width)
	require.Equal(t, uint32(4), buf.Height)
	r, g, b, a := buf.Pixel(1, 2)
	require.Equal(t, [4]uint8{1, 2, 3, 4}, [4]uint8{r, g, b, a})
}

func TestCloneAndEqual(t *testing.T) {
	buf := New(2, 2)
	buf.SetPixel(1, 1, 10, 20, 30, 40)

	cpy := buf.Clone()
	require.True(t, buf.Equal(cpy))

	cpy.SetPixel(0, 0, 1, 1, 1, 1)
	require.False(t, buf.Equal(cpy))
	require.False(t, buf.Equal(New(2, 3)))
}
