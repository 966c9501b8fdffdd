package internal

import (
	"context"
	"runtime"

	"github.com/xaionaro-go/pixfilter/logger"
)

// SetFinalizerFree frees the libav object once the Go side stops
// referencing it.
func SetFinalizerFree[T interface{ Free() }](
	ctx context.Context,
	freer T,
) {
	runtime.SetFinalizer(freer, func(freer T) {
		logger.Debugf(ctx, "freeing %T", freer)
		freer.Free()
	})
}
