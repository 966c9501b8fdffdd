package filter

import (
	"context"

	"github.com/xaionaro-go/pixfilter/convolution"
	"github.com/xaionaro-go/pixfilter/filterkernel"
	"github.com/xaionaro-go/pixfilter/pixbuf"
)

func boxBlur(ctx context.Context, src *pixbuf.Buffer) (*pixbuf.Buffer, error) {
	return convolution.Convolve(ctx, src, filterkernel.Box5x5())
}

func sharpen(ctx context.Context, src *pixbuf.Buffer) (*pixbuf.Buffer, error) {
	return convolution.Convolve(ctx, src, filterkernel.Sharpen3x3())
}
