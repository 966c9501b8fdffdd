// assert.go provides invariant checks that panic through the context logger.

// Package internal contains helpers shared by pixfilter packages.
package internal

import (
	"context"

	"github.com/xaionaro-go/pixfilter/logger"
)

// Assert panics (via the logger found in ctx) if mustBeTrue is false.
func Assert(
	ctx context.Context,
	mustBeTrue bool,
	extraArgs ...any,
) {
	if mustBeTrue {
		return
	}

	logger.Panic(ctx, "assertion failed", extraArgs)
}
