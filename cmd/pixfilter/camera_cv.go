//go:build with_cv
// +build with_cv

package main

import (
	"context"

	"github.com/xaionaro-go/pixfilter/framesource"
)

func openCamera(ctx context.Context, deviceID int) (framesource.Source, error) {
	return framesource.NewCamera(ctx, deviceID)
}
