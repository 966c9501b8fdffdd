//go:build !with_cv
// +build !with_cv

package main

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/pixfilter/framesource"
)

func openCamera(context.Context, int) (framesource.Source, error) {
	return nil, fmt.Errorf("built without camera support, rebuild with the with_cv tag or use --input-option f=v4l2 /dev/video0")
}
